package inventory_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/ors/internal/domain"
	"github.com/vladislavdragonenkov/ors/internal/service/inventory"
)

func TestMockServiceDefaults(t *testing.T) {
	mock := inventory.NewMockService()

	order, err := domain.NewOrder(domain.NewCustomer())
	if err != nil {
		t.Fatalf("order: %v", err)
	}

	if !mock.IsFillable(order) {
		t.Error("default mock must accept any order")
	}
	if err := mock.Fill(order); err != nil {
		t.Errorf("default mock must fill without error, got %v", err)
	}
	if mock.IsFillableCalls != 1 || mock.FillCalls != 1 {
		t.Errorf("calls must be counted, got %d/%d", mock.IsFillableCalls, mock.FillCalls)
	}
}

func TestMockServiceConfigured(t *testing.T) {
	fillErr := errors.New("out of stock")
	mock := &inventory.MockService{Fillable: false, FillErr: fillErr}

	order, err := domain.NewOrder(domain.NewCustomer())
	if err != nil {
		t.Fatalf("order: %v", err)
	}

	if mock.IsFillable(order) {
		t.Error("configured mock must reject the order")
	}
	if err := mock.Fill(order); !errors.Is(err, fillErr) {
		t.Errorf("configured error must be returned, got %v", err)
	}
}

func TestMockServiceNilOrder(t *testing.T) {
	mock := inventory.NewMockService()
	if mock.IsFillable(nil) {
		t.Error("nil order is never fillable")
	}
}
