package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vladislavdragonenkov/ors/internal/domain"
	"github.com/vladislavdragonenkov/ors/internal/storage/memory"
)

type staticChecker struct {
	check Check
}

func (c staticChecker) Check() Check { return c.check }

func TestHandlerHealthy(t *testing.T) {
	handler := NewHandler("test-version",
		staticChecker{Check{Name: "a", Status: StatusHealthy}},
		staticChecker{Check{Name: "b", Status: StatusHealthy}},
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != StatusHealthy {
		t.Errorf("status = %q, want %q", resp.Status, StatusHealthy)
	}
	if resp.Version != "test-version" {
		t.Errorf("version = %q, want %q", resp.Version, "test-version")
	}
	if len(resp.Checks) != 2 {
		t.Errorf("checks = %d, want 2", len(resp.Checks))
	}
}

func TestHandlerUnhealthy(t *testing.T) {
	handler := NewHandler("test",
		staticChecker{Check{Name: "ok", Status: StatusHealthy}},
		staticChecker{Check{Name: "broken", Status: StatusUnhealthy, Message: "boom"}},
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status code = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != StatusUnhealthy {
		t.Errorf("status = %q, want %q", resp.Status, StatusUnhealthy)
	}
}

func TestHandlerNoCheckers(t *testing.T) {
	handler := NewHandler("test")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestDatasetChecker(t *testing.T) {
	orders := memory.NewOrderRepository()
	checker := DatasetChecker{Orders: orders}

	if got := checker.Check(); got.Status != StatusUnhealthy {
		t.Errorf("empty repository: status = %q, want %q", got.Status, StatusUnhealthy)
	}

	customer := domain.NewCustomer()
	if err := customer.SetID(1); err != nil {
		t.Fatalf("set customer id: %v", err)
	}
	if err := customer.SetName("Eric Meyer"); err != nil {
		t.Fatalf("set customer name: %v", err)
	}
	article, err := domain.NewArticleWith("Teller", 649)
	if err != nil {
		t.Fatalf("create article: %v", err)
	}
	if err := article.SetID("SKU-1"); err != nil {
		t.Fatalf("set article id: %v", err)
	}
	order, err := domain.NewOrder(customer)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := order.SetID("O-1"); err != nil {
		t.Fatalf("set order id: %v", err)
	}
	if err := order.AddItem(article, 1); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := orders.Save(order); err != nil {
		t.Fatalf("save order: %v", err)
	}

	got := checker.Check()
	if got.Status != StatusHealthy {
		t.Errorf("loaded repository: status = %q, want %q", got.Status, StatusHealthy)
	}
	if got.Message != "1 orders loaded" {
		t.Errorf("message = %q, want %q", got.Message, "1 orders loaded")
	}
}
