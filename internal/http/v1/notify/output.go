package notify

import "github.com/versocommerce/storefront/internal/notification"

// NormalizeData is the response body for POST /notify.
type NormalizeData struct {
	Success      bool              `json:"success"      doc:"Always true when the payload parsed" example:"true"`
	Notification notification.Item `json:"notification" doc:"Normalized notification item"`
	Message      string            `json:"message"      doc:"Human-readable result"               example:"Notification processed"`
}

// NormalizeOutput is the response wrapper for POST /notify.
type NormalizeOutput struct {
	Body NormalizeData
}
