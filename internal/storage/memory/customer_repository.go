package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/ors/internal/domain"
)

// customerRepositoryInMemory — простая in-memory реализация CustomerRepository.
type customerRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[int64]*domain.Customer
	order []int64
}

// NewCustomerRepository возвращает in-memory хранилище клиентов.
func NewCustomerRepository() domain.CustomerRepository {
	return &customerRepositoryInMemory{
		items: make(map[int64]*domain.Customer),
	}
}

// Save сохраняет клиента с присвоенным идентификатором; занятый id — ошибка.
func (r *customerRepositoryInMemory) Save(customer *domain.Customer) error {
	if customer == nil {
		return domain.ErrInvalidID
	}
	id, ok := customer.ID()
	if !ok {
		return domain.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; exists {
		return domain.ErrDuplicateEntity
	}
	r.items[id] = customer
	r.order = append(r.order, id)
	return nil
}

// Get возвращает клиента или ErrCustomerNotFound, если его нет.
func (r *customerRepositoryInMemory) Get(id int64) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.items[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

// List возвращает клиентов в порядке сохранения.
func (r *customerRepositoryInMemory) List() []*domain.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Customer, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.items[id])
	}
	return result
}

// Count возвращает число сохранённых клиентов.
func (r *customerRepositoryInMemory) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

var _ domain.CustomerRepository = (*customerRepositoryInMemory)(nil)
