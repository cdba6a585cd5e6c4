package notify

import "github.com/versocommerce/storefront/internal/notification"

// NormalizeInput for POST /notify. The body mirrors the push provider's
// webhook shape, plus the business fields order events carry.
type NormalizeInput struct {
	Body struct {
		ID       string                     `json:"id,omitempty"       doc:"Notification id, defaults to a time-based value"`
		Type     string                     `json:"type,omitempty"     doc:"Notification kind, defaults to promotion" example:"order"`
		Headings map[string]string          `json:"headings,omitempty" doc:"Localized headings keyed by language"`
		Contents map[string]string          `json:"contents,omitempty" doc:"Localized body text keyed by language"`
		OrderID  string                     `json:"orderId,omitempty"  doc:"Related order identifier"`
		Amount   float64                    `json:"amount,omitempty"   doc:"Order total"`
		Customer string                     `json:"customer,omitempty" doc:"Customer display name"`
		Email    string                     `json:"email,omitempty"    doc:"Customer email"    format:"email"`
		Items    []notification.OrderLine   `json:"items,omitempty"    doc:"Order line items"`
		Address  map[string]any             `json:"address,omitempty"  doc:"Shipping address"`
	}
}
