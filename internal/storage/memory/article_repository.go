package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/ors/internal/domain"
)

// articleRepositoryInMemory — простая in-memory реализация ArticleRepository.
// Порядок сохранения фиксируется отдельным срезом, чтобы листинги каталога
// были детерминированными.
type articleRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]*domain.Article
	order []string
}

// NewArticleRepository возвращает in-memory каталог статей.
func NewArticleRepository() domain.ArticleRepository {
	return &articleRepositoryInMemory{
		items: make(map[string]*domain.Article),
	}
}

// Save сохраняет статью с присвоенным идентификатором; занятый id — ошибка.
func (r *articleRepositoryInMemory) Save(article *domain.Article) error {
	if article == nil || article.ID() == "" {
		return domain.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[article.ID()]; exists {
		return domain.ErrDuplicateEntity
	}
	r.items[article.ID()] = article
	r.order = append(r.order, article.ID())
	return nil
}

// Get возвращает статью или ErrArticleNotFound, если её нет.
func (r *articleRepositoryInMemory) Get(id string) (*domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	article, ok := r.items[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	return article, nil
}

// List возвращает статьи в порядке сохранения.
func (r *articleRepositoryInMemory) List() []*domain.Article {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Article, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.items[id])
	}
	return result
}

// Count возвращает число сохранённых статей.
func (r *articleRepositoryInMemory) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

var _ domain.ArticleRepository = (*articleRepositoryInMemory)(nil)
