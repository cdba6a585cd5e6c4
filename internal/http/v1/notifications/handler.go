// Package notifications exposes the alert-relay endpoint that forwards
// operational messages to the ntfy webhook service.
package notifications

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/versocommerce/storefront/internal/platform/logging"
	"github.com/versocommerce/storefront/internal/service/ntfy"
)

// Register wires the alert-relay route into the provided API router.
func Register(api huma.API, publisher ntfy.Publisher) {
	huma.Register(api, huma.Operation{
		OperationID: "send-notification",
		Method:      http.MethodPost,
		Path:        "/notifications",
		Summary:     "Forward an alert to the notification webhook",
		Description: "Relays a plain-text alert to the configured ntfy topic. Title and priority fall back to defaults.",
		Tags:        []string{"Notifications"},
	}, func(ctx context.Context, input *SendInput) (*SendOutput, error) {
		// Message presence is validated here rather than in the schema so
		// the endpoint answers 400, matching its existing callers.
		if input.Body.Message == "" {
			return nil, huma.Error400BadRequest("message is required")
		}

		err := publisher.Publish(ctx, ntfy.PublishParams{
			Message:  input.Body.Message,
			Title:    input.Body.Title,
			Priority: input.Body.Priority,
			Topic:    input.Body.Topic,
		})
		if err != nil {
			return nil, mapPublishError(ctx, err)
		}

		applog.LogInfo(ctx, "alert relayed", zap.String("topic", input.Body.Topic))
		return &SendOutput{Body: SendData{
			Success: true,
			Message: "Notification sent",
		}}, nil
	})
}

func mapPublishError(ctx context.Context, err error) error {
	var upstreamErr *ntfy.UpstreamError
	switch {
	case errors.Is(err, ntfy.ErrMissingTopic):
		applog.LogError(ctx, "alert relay misconfigured", err)
		return huma.Error500InternalServerError("notification topic not configured")
	case errors.As(err, &upstreamErr):
		applog.LogError(ctx, "alert webhook rejected message", err, zap.Int("status", upstreamErr.Status))
		return huma.Error502BadGateway("notification service error")
	default:
		applog.LogError(ctx, "alert webhook unreachable", err)
		return huma.Error502BadGateway("notification service unavailable")
	}
}
