package orders

// UpdateStatusInput for POST /orders/update-status.
type UpdateStatusInput struct {
	Body struct {
		OrderID string `json:"orderId" minLength:"1" maxLength:"100" required:"true" doc:"Order identifier" example:"ORD-1042"`
		Status  string `json:"status"  minLength:"1" maxLength:"50"  required:"true" doc:"New order status" example:"shipped"`
	}
}
