package inventory

import "github.com/vladislavdragonenkov/ors/internal/domain"

// MockService — конфигурируемая заглушка domain.Inventory: реальной системы
// складских остатков у отчётного контура нет, приёмка заказов работает
// через эту реализацию.
type MockService struct {
	// Fillable управляет ответом IsFillable; по умолчанию склад
	// покрывает любой заказ.
	Fillable bool
	// FillErr — заранее настроенная ошибка списания.
	FillErr error

	IsFillableCalls int
	FillCalls       int
}

// NewMockService возвращает mock с успешным сценарием по умолчанию.
func NewMockService() *MockService {
	return &MockService{Fillable: true}
}

// IsFillable возвращает заранее настроенный ответ и считает вызовы.
func (m *MockService) IsFillable(order *domain.Order) bool {
	m.IsFillableCalls++
	if order == nil {
		return false
	}
	return m.Fillable
}

// Fill возвращает заранее настроенную ошибку и считает вызовы.
func (m *MockService) Fill(order *domain.Order) error {
	m.FillCalls++
	return m.FillErr
}

var _ domain.Inventory = (*MockService)(nil)
