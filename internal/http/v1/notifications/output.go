package notifications

// SendData is the response body for POST /notifications.
type SendData struct {
	Success bool   `json:"success" doc:"Whether the alert was accepted upstream" example:"true"`
	Message string `json:"message" doc:"Human-readable result"                   example:"Notification sent"`
}

// SendOutput is the response wrapper for POST /notifications.
type SendOutput struct {
	Body SendData
}
