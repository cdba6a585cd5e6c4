package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/versocommerce/storefront/internal/http/v1/notifications"
	"github.com/versocommerce/storefront/internal/http/v1/notify"
	onesignalhandler "github.com/versocommerce/storefront/internal/http/v1/onesignal"
	ordershandler "github.com/versocommerce/storefront/internal/http/v1/orders"
	profilehandler "github.com/versocommerce/storefront/internal/http/v1/profile"
	"github.com/versocommerce/storefront/internal/platform/auth"
	"github.com/versocommerce/storefront/internal/service/ntfy"
	onesignalsvc "github.com/versocommerce/storefront/internal/service/onesignal"
	orderssvc "github.com/versocommerce/storefront/internal/service/orders"
	profilesvc "github.com/versocommerce/storefront/internal/service/profile"
)

// Services bundles the collaborators the route tree needs.
type Services struct {
	Verifier  auth.Verifier
	Profile   profilesvc.Service
	OneSignal onesignalsvc.Service
	Ntfy      ntfy.Publisher
	Orders    *orderssvc.Service
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, svcs Services) {
	// Auth middleware applies only to operations declaring Security.
	api.UseMiddleware(auth.NewAuthMiddleware(api, svcs.Verifier))

	notifications.Register(api, svcs.Ntfy)
	notify.Register(api)
	onesignalhandler.Register(api, svcs.OneSignal)
	ordershandler.Register(api, svcs.Orders)
	profilehandler.Register(api, svcs.Profile)
}
