package orders

// UpdateStatusData is the response body for POST /orders/update-status.
type UpdateStatusData struct {
	Success     bool   `json:"success"               doc:"Whether the status change was persisted"        example:"true"`
	Message     string `json:"message"               doc:"Human-readable result"                          example:"Order status updated"`
	SocketError string `json:"socketError,omitempty" doc:"Bridge failure detail when delivery was partial"`
}

// UpdateStatusOutput is the response wrapper for POST /orders/update-status.
type UpdateStatusOutput struct {
	Body UpdateStatusData
}
