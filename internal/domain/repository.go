package domain

// ArticleRepository описывает требования к хранилищу статей каталога.
// List возвращает статьи в порядке сохранения — отчёты детерминированы.
type ArticleRepository interface {
	// Save сохраняет статью с присвоенным id; занятый id — ErrDuplicateEntity.
	Save(article *Article) error
	// Get возвращает статью по идентификатору или ErrArticleNotFound.
	Get(id string) (*Article, error)
	List() []*Article
	Count() int
}

// CustomerRepository описывает требования к хранилищу клиентов.
type CustomerRepository interface {
	Save(customer *Customer) error
	// Get возвращает клиента по идентификатору или ErrCustomerNotFound.
	Get(id int64) (*Customer, error)
	List() []*Customer
	Count() int
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	Save(order *Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound.
	Get(id string) (*Order, error)
	List() []*Order
	Count() int
}
