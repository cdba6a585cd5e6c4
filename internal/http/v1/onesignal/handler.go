// Package onesignal exposes thin proxy endpoints over the push provider's
// REST API for the storefront admin views.
package onesignal

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/versocommerce/storefront/internal/platform/logging"
	onesignalsvc "github.com/versocommerce/storefront/internal/service/onesignal"
)

// Register wires the OneSignal proxy routes into the provided API router.
func Register(api huma.API, svc onesignalsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "onesignal-check-user-exists",
		Method:      http.MethodPost,
		Path:        "/onesignal/check-user-exists",
		Summary:     "Check whether an external id is known to the push provider",
		Description: "Looks up a user by external id. An unknown id is reported as exists=false, not as an error.",
		Tags:        []string{"OneSignal"},
	}, func(ctx context.Context, input *ExternalIDInput) (*CheckUserOutput, error) {
		status, err := svc.CheckUser(ctx, input.Body.ExternalID)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &CheckUserOutput{Body: CheckUserData{
			Success: true,
			Exists:  status.Exists,
			Data:    status.Data,
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "onesignal-view-player",
		Method:      http.MethodPost,
		Path:        "/onesignal/view-player",
		Summary:     "Check the push-subscription status of an external id",
		Description: "Reports whether any device associated with the external id holds an enabled push subscription.",
		Tags:        []string{"OneSignal"},
	}, func(ctx context.Context, input *ExternalIDInput) (*ViewPlayerOutput, error) {
		status, err := svc.ViewPlayer(ctx, input.Body.ExternalID)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &ViewPlayerOutput{Body: ViewPlayerData{
			Subscribed: status.Subscribed,
			Data:       status.Data,
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "onesignal-list-messages",
		Method:      http.MethodGet,
		Path:        "/onesignal/messages",
		Summary:     "List push messages",
		Description: "Passes the provider's message history through unchanged.",
		Tags:        []string{"OneSignal"},
	}, func(ctx context.Context, input *MessagesInput) (*PassthroughOutput, error) {
		data, err := svc.ListMessages(ctx, onesignalsvc.MessagesParams{
			ID:     input.ID,
			Limit:  input.Limit,
			Offset: input.Offset,
		})
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &PassthroughOutput{Body: data}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "onesignal-send-test",
		Method:      http.MethodPost,
		Path:        "/onesignal/send-test",
		Summary:     "Send the fixed test push notification",
		Description: "Pushes a hard-coded smoke-test notification to all subscribed users and passes the provider response through.",
		Tags:        []string{"OneSignal"},
	}, func(ctx context.Context, _ *struct{}) (*PassthroughOutput, error) {
		data, err := svc.SendTest(ctx)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &PassthroughOutput{Body: data}, nil
	})
}

func mapServiceError(ctx context.Context, err error) error {
	var upstreamErr *onesignalsvc.UpstreamError

	switch {
	case errors.Is(err, onesignalsvc.ErrMissingCredentials):
		applog.LogError(ctx, "onesignal proxy misconfigured", err)
		return huma.Error500InternalServerError("push provider credentials not configured")
	case errors.As(err, &upstreamErr):
		if upstreamErr.Kind == onesignalsvc.UpstreamErrorKindUnauthorized {
			applog.LogError(ctx, "onesignal rejected credentials", err)
			return huma.Error500InternalServerError("push provider rejected credentials")
		}
		return huma.Error502BadGateway("push provider error")
	default:
		applog.LogError(ctx, "onesignal request failed", err)
		return huma.Error502BadGateway("push provider unavailable")
	}
}
