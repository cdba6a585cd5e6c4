// Package notification defines the normalized notification shape shared by
// the relay API, the real-time event client, and the session state store.
package notification

import (
	"strconv"
	"time"

	"github.com/versocommerce/storefront/internal/platform/timeutil"
)

// Kind classifies a notification for display.
type Kind string

const (
	KindOrder     Kind = "order"
	KindPromotion Kind = "promotion"
	KindSystem    Kind = "system"
)

// Item is a single notification, constructed per inbound event. It is not
// persisted by this layer; it is forwarded to the state store for display.
type Item struct {
	ID      string        `json:"id"      doc:"Notification identifier"            example:"1700000000000"`
	Type    Kind          `json:"type"    doc:"Notification kind"                  example:"promotion"`
	Title   string        `json:"title"   doc:"Short heading"                      example:"Order Update"`
	Message string        `json:"message" doc:"Body text"                          example:"Order #1 shipped"`
	Status  string        `json:"status"  doc:"Display severity"                   example:"info"`
	Read    bool          `json:"read"    doc:"Whether the user has seen it"       example:"false"`
	Date    timeutil.Time `json:"date"    doc:"Creation timestamp"`

	// Optional business fields carried through from order events.
	OrderID  string         `json:"orderId,omitempty"  doc:"Related order identifier"`
	Amount   float64        `json:"amount,omitempty"   doc:"Order total"`
	Customer string         `json:"customer,omitempty" doc:"Customer display name"`
	Email    string         `json:"email,omitempty"    doc:"Customer email"`
	Items    []OrderLine    `json:"items,omitempty"    doc:"Order line items"`
	Address  map[string]any `json:"address,omitempty"  doc:"Shipping address"`
}

// OrderLine is a single line item referenced by an order notification.
type OrderLine struct {
	Name     string  `json:"name"     doc:"Product name"`
	Quantity int     `json:"quantity" doc:"Quantity ordered"`
	Price    float64 `json:"price"    doc:"Unit price"`
}

// Defaults fills the fields the inbound payload may omit: a time-based id,
// promotion type, info status, unread, and a current timestamp.
func (n *Item) Defaults(now time.Time) {
	if n.ID == "" {
		n.ID = strconv.FormatInt(now.UnixMilli(), 10)
	}
	if n.Type == "" {
		n.Type = KindPromotion
	}
	if n.Status == "" {
		n.Status = "info"
	}
	n.Read = false
	if n.Date.IsZero() {
		n.Date = timeutil.NewTime(now)
	}
}
