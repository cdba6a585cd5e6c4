package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/versocommerce/storefront/internal/notification"
	applog "github.com/versocommerce/storefront/internal/platform/logging"
	appmiddleware "github.com/versocommerce/storefront/internal/platform/middleware"
	"github.com/versocommerce/storefront/internal/platform/respond"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("NotifyTest", "test"))
	Register(api)
	return router
}

func postNotify(t *testing.T, router chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/notify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestNormalizeOrderPayload(t *testing.T) {
	router := newTestRouter()

	resp := postNotify(t, router, `{
		"id": "evt-1",
		"type": "order",
		"headings": {"en": "New Order", "fi": "Uusi tilaus"},
		"contents": {"en": "Order #ORD-1 received"},
		"orderId": "ORD-1",
		"amount": 59.9,
		"customer": "John Doe",
		"email": "john@example.com",
		"items": [{"name": "Mug", "quantity": 2, "price": 9.9}]
	}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var data NormalizeData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if !data.Success {
		t.Error("expected success=true")
	}

	item := data.Notification
	if item.ID != "evt-1" {
		t.Errorf("expected provided id preserved, got %s", item.ID)
	}
	if item.Type != notification.KindOrder {
		t.Errorf("expected order kind, got %s", item.Type)
	}
	if item.Title != "New Order" {
		t.Errorf("expected en heading preferred, got %q", item.Title)
	}
	if item.Message != "Order #ORD-1 received" {
		t.Errorf("expected en content, got %q", item.Message)
	}
	if item.OrderID != "ORD-1" {
		t.Errorf("expected orderId carried through, got %q", item.OrderID)
	}
	if item.Amount != 59.9 {
		t.Errorf("expected amount 59.9, got %v", item.Amount)
	}
	if len(item.Items) != 1 || item.Items[0].Name != "Mug" {
		t.Errorf("expected line items carried through, got %v", item.Items)
	}
	if item.Read {
		t.Error("expected unread item")
	}
}

func TestNormalizeEmptyPayloadGetsDefaults(t *testing.T) {
	router := newTestRouter()

	resp := postNotify(t, router, `{}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var data NormalizeData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}

	item := data.Notification
	if item.ID == "" {
		t.Error("expected time-based id default")
	}
	if item.Type != notification.KindPromotion {
		t.Errorf("expected promotion default, got %s", item.Type)
	}
	if item.Status != "info" {
		t.Errorf("expected info status default, got %s", item.Status)
	}
	if item.Date.IsZero() {
		t.Error("expected date default")
	}
}

func TestNormalizeFallsBackToAnyLanguage(t *testing.T) {
	router := newTestRouter()

	resp := postNotify(t, router, `{"headings": {"fi": "Tarjous"}, "contents": {"fi": "Alennus"}}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var data NormalizeData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Notification.Title != "Tarjous" {
		t.Errorf("expected fallback heading, got %q", data.Notification.Title)
	}
	if data.Notification.Message != "Alennus" {
		t.Errorf("expected fallback content, got %q", data.Notification.Message)
	}
}
