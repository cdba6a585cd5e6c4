package notifications

// SendInput for POST /notifications.
type SendInput struct {
	Body struct {
		// Presence is checked in the handler so an empty body answers 400
		// rather than a schema 422.
		Message  string `json:"message,omitempty"  doc:"Alert body text"                              example:"Order #1 shipped"`
		Title    string `json:"title,omitempty"    doc:"Alert heading, defaults to \"Order Update\""  example:"Order Update"`
		Priority string `json:"priority,omitempty" doc:"ntfy priority, defaults to \"default\""       example:"high" enum:",min,low,default,high,urgent"`
		Topic    string `json:"topic,omitempty"    doc:"Override the configured topic"                example:"storefront-ops"`
	}
}
