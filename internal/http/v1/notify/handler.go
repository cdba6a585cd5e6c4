// Package notify exposes the webhook-normalization endpoint: it accepts a
// push-provider-shaped payload and returns the normalized notification item
// for client-side state insertion. It does not itself push to devices.
package notify

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/versocommerce/storefront/internal/notification"
	applog "github.com/versocommerce/storefront/internal/platform/logging"
)

// Register wires the webhook-normalization route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "normalize-notification",
		Method:      http.MethodPost,
		Path:        "/notify",
		Summary:     "Normalize a provider webhook payload",
		Description: "Converts a push-provider-shaped payload into the storefront notification shape. Missing fields receive defaults.",
		Tags:        []string{"Notifications"},
	}, func(ctx context.Context, input *NormalizeInput) (*NormalizeOutput, error) {
		item := notification.Item{
			ID:       input.Body.ID,
			Title:    firstValue(input.Body.Headings),
			Message:  firstValue(input.Body.Contents),
			Type:     notification.Kind(input.Body.Type),
			OrderID:  input.Body.OrderID,
			Amount:   input.Body.Amount,
			Customer: input.Body.Customer,
			Email:    input.Body.Email,
			Items:    input.Body.Items,
			Address:  input.Body.Address,
		}
		item.Defaults(time.Now().UTC())

		applog.LogInfo(ctx, "notification normalized",
			zap.String("id", item.ID),
			zap.String("type", string(item.Type)),
		)
		return &NormalizeOutput{Body: NormalizeData{
			Success:      true,
			Notification: item,
			Message:      "Notification processed",
		}}, nil
	})
}

// firstValue picks the "en" localization when present, otherwise any value.
func firstValue(m map[string]string) string {
	if v, ok := m["en"]; ok {
		return v
	}
	for _, v := range m {
		return v
	}
	return ""
}
