package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/ors/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]*domain.Order
	order []string
}

// NewOrderRepository возвращает in-memory хранилище заказов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[string]*domain.Order),
	}
}

// Save сохраняет заказ с присвоенным идентификатором; занятый id — ошибка.
func (r *orderRepositoryInMemory) Save(order *domain.Order) error {
	if order == nil || order.ID() == "" {
		return domain.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[order.ID()]; exists {
		return domain.ErrDuplicateEntity
	}
	r.items[order.ID()] = order
	r.order = append(r.order, order.ID())
	return nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// List возвращает заказы в порядке сохранения.
func (r *orderRepositoryInMemory) List() []*domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Order, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.items[id])
	}
	return result
}

// Count возвращает число сохранённых заказов.
func (r *orderRepositoryInMemory) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
