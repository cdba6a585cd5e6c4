// Package orders exposes the order-status bridge endpoint.
package orders

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/versocommerce/storefront/internal/platform/logging"
	orderssvc "github.com/versocommerce/storefront/internal/service/orders"
)

// Register wires the order-status route into the provided API router.
func Register(api huma.API, svc *orderssvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "update-order-status",
		Method:      http.MethodPost,
		Path:        "/orders/update-status",
		Summary:     "Record an order-status change",
		Description: "Persists the status change and relays an order:update event to the socket bridge. A bridge failure degrades to a partial success reported in socketError; the persistence result decides the status code.",
		Tags:        []string{"Orders"},
	}, func(ctx context.Context, input *UpdateStatusInput) (*UpdateStatusOutput, error) {
		result, err := svc.UpdateStatus(ctx, input.Body.OrderID, input.Body.Status)
		if err != nil {
			if errors.Is(err, orderssvc.ErrInvalidOrder) {
				return nil, huma.Error400BadRequest("orderId and status are required")
			}
			applog.LogError(ctx, "order status persistence failed", err,
				zap.String("orderId", input.Body.OrderID))
			return nil, huma.Error500InternalServerError("failed to update order status")
		}

		message := "Order status updated"
		if result.SocketError != "" {
			if result.BridgeRejected {
				message += ", but the socket bridge rejected the event"
			} else {
				message += ", but the socket bridge was unreachable"
			}
			applog.LogWarn(ctx, "order update not relayed",
				zap.String("orderId", input.Body.OrderID),
				zap.String("socketError", result.SocketError),
			)
		}

		return &UpdateStatusOutput{Body: UpdateStatusData{
			Success:     true,
			Message:     message,
			SocketError: result.SocketError,
		}}, nil
	})
}
