package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/versocommerce/storefront/internal/http/health"
	"github.com/versocommerce/storefront/internal/http/v1/routes"
	"github.com/versocommerce/storefront/internal/platform/auth"
	"github.com/versocommerce/storefront/internal/platform/config"
	"github.com/versocommerce/storefront/internal/platform/firebase"
	applog "github.com/versocommerce/storefront/internal/platform/logging"
	appmiddleware "github.com/versocommerce/storefront/internal/platform/middleware"
	"github.com/versocommerce/storefront/internal/platform/respond"
	"github.com/versocommerce/storefront/internal/service/bridge"
	"github.com/versocommerce/storefront/internal/service/ntfy"
	"github.com/versocommerce/storefront/internal/service/onesignal"
	"github.com/versocommerce/storefront/internal/service/orders"
	"github.com/versocommerce/storefront/internal/service/profile"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg := config.Load()
	ctx := context.Background()

	svcs, cleanup := buildServices(ctx, cfg)
	defer cleanup()

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/healthz", health.Handler)

	humaCfg := huma.DefaultConfig("Storefront Gateway API", Version)
	humaCfg.DocsPath = "/api-docs"
	humaCfg.Servers = []*huma.Server{{URL: "/api"}}

	router.Route("/api", func(r chi.Router) {
		api := humachi.New(r, humaCfg)
		routes.Register(api, svcs)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// buildServices assembles the service layer from configuration. Without a
// Firebase project the profile store and verifier fall back to in-memory
// mocks so local development works credential-free.
func buildServices(ctx context.Context, cfg config.Config) (routes.Services, func()) {
	httpClient := &http.Client{Timeout: 15 * time.Second}
	cleanup := func() {}

	svcs := routes.Services{
		OneSignal: onesignal.NewClient(httpClient,
			onesignal.WithCredentials(cfg.OneSignalAppID, cfg.OneSignalRESTKey)),
		Ntfy: ntfy.NewClient(httpClient,
			ntfy.WithBaseURL(cfg.NtfyBaseURL),
			ntfy.WithDefaultTopic(cfg.NtfyTopic)),
		Orders: orders.NewService(orders.NewMemoryStore(),
			bridge.NewClient(httpClient, cfg.SocketBridgeURL)),
	}

	if cfg.FirebaseProjectID == "" {
		applog.LogWarn(ctx, "firebase not configured, using in-memory auth and profile store")
		svcs.Verifier = &auth.MockVerifier{User: auth.TestUser()}
		svcs.Profile = profile.NewMockProfileService()
		return svcs, cleanup
	}

	clients, err := firebase.InitializeClients(ctx, firebase.Config{
		ProjectID:                    cfg.FirebaseProjectID,
		GoogleApplicationCredentials: cfg.GoogleApplicationCredentials,
	})
	if err != nil {
		applog.LogError(ctx, "firebase initialization failed", err)
		os.Exit(1)
	}

	svcs.Verifier = auth.NewFirebaseVerifier(clients.Auth)
	svcs.Profile = profile.NewFirestoreStore(clients.Firestore)
	cleanup = func() {
		if err := clients.Close(); err != nil {
			applog.LogError(ctx, "firebase close error", err)
		}
	}
	return svcs, cleanup
}
