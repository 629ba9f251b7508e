package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ors/internal/domain"
)

// Dataset — внешний JSON-формат набора данных отчёта.
type Dataset struct {
	Customers []CustomerRecord `json:"customers"`
	Articles  []ArticleRecord  `json:"articles"`
	Orders    []OrderRecord    `json:"orders"`
}

// CustomerRecord — запись клиента в наборе данных.
type CustomerRecord struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Contacts []string `json:"contacts,omitempty"`
}

// ArticleRecord — запись статьи каталога в наборе данных.
type ArticleRecord struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	UnitPrice   int64  `json:"unit_price"`
	Tax         string `json:"tax,omitempty"`
}

// OrderRecord — запись заказа в наборе данных.
type OrderRecord struct {
	ID         string       `json:"id,omitempty"`
	CustomerID int64        `json:"customer_id"`
	CreatedAt  string       `json:"created_at,omitempty"`
	Items      []ItemRecord `json:"items"`
}

// ItemRecord — позиция заказа в наборе данных.
type ItemRecord struct {
	ArticleID string `json:"article_id"`
	Units     int    `json:"units"`
}

// Summary — результат импорта набора данных.
type Summary struct {
	Customers int
	Articles  int
	Orders    int
	// Skipped — записи, отброшенные валидацией или приёмкой.
	Skipped int
}

// Builder строит доменные сущности из JSON-набора и принимает заказы через
// проверку складских остатков. Невалидные записи пропускаются с записью в
// лог; валидный остаток импортируется. Заказы попадают в репозиторий только
// через Accept.
type Builder struct {
	articles  domain.ArticleRepository
	customers domain.CustomerRepository
	orders    domain.OrderRepository
	inventory domain.Inventory
	logger    *log.Entry
}

// NewBuilder создаёт импортёр поверх репозиториев и приёмки склада.
func NewBuilder(
	articles domain.ArticleRepository,
	customers domain.CustomerRepository,
	orders domain.OrderRepository,
	inventory domain.Inventory,
	logger *log.Entry,
) *Builder {
	if logger == nil {
		logger = log.WithField("component", "importer")
	}
	return &Builder{
		articles:  articles,
		customers: customers,
		orders:    orders,
		inventory: inventory,
		logger:    logger,
	}
}

// LoadFile импортирует набор данных из JSON-файла.
func (b *Builder) LoadFile(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return b.Load(f)
}

// Load импортирует набор данных из произвольного reader.
func (b *Builder) Load(r io.Reader) (Summary, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return Summary{}, fmt.Errorf("decode dataset: %w", err)
	}

	var sum Summary
	for _, rec := range ds.Customers {
		if err := b.importCustomer(rec); err != nil {
			b.logger.WithError(err).WithField("customer_id", rec.ID).Warn("skipping customer record")
			sum.Skipped++
			continue
		}
		sum.Customers++
	}
	for _, rec := range ds.Articles {
		if err := b.importArticle(rec); err != nil {
			b.logger.WithError(err).WithField("article_id", rec.ID).Warn("skipping article record")
			sum.Skipped++
			continue
		}
		sum.Articles++
	}
	for _, rec := range ds.Orders {
		order, err := b.buildOrder(rec)
		if err != nil {
			b.logger.WithError(err).WithField("order_id", rec.ID).Warn("skipping order record")
			sum.Skipped++
			continue
		}
		if !b.Accept(order) {
			sum.Skipped++
			continue
		}
		sum.Orders++
	}
	return sum, nil
}

// Accept принимает заказ, только если склад может закрыть все его позиции;
// принятый заказ списывается со склада и сохраняется в репозиторий.
func (b *Builder) Accept(order *domain.Order) bool {
	if order == nil {
		return false
	}
	if !b.inventory.IsFillable(order) {
		b.logger.WithField("order_id", order.ID()).Warn("order not fillable, rejected")
		return false
	}
	if err := b.inventory.Fill(order); err != nil {
		b.logger.WithError(err).WithField("order_id", order.ID()).Warn("inventory fill failed, order rejected")
		return false
	}
	if err := b.orders.Save(order); err != nil {
		b.logger.WithError(err).WithField("order_id", order.ID()).Warn("saving accepted order failed")
		return false
	}
	return true
}

func (b *Builder) importCustomer(rec CustomerRecord) error {
	c, err := domain.NewCustomerWithName(rec.Name)
	if err != nil {
		return err
	}
	if err := c.SetID(rec.ID); err != nil {
		return err
	}
	for _, contact := range rec.Contacts {
		if err := c.AddContact(contact); err != nil {
			return err
		}
	}
	return b.customers.Save(c)
}

func (b *Builder) importArticle(rec ArticleRecord) error {
	a, err := domain.NewArticleWith(rec.Description, rec.UnitPrice)
	if err != nil {
		return err
	}
	if err := a.SetID(rec.ID); err != nil {
		return err
	}
	if rec.Tax != "" {
		if err := a.SetTax(domain.TaxCategory(rec.Tax)); err != nil {
			return err
		}
	}
	return b.articles.Save(a)
}

func (b *Builder) buildOrder(rec OrderRecord) (*domain.Order, error) {
	customer, err := b.customers.Get(rec.CustomerID)
	if err != nil {
		return nil, err
	}
	order, err := domain.NewOrder(customer)
	if err != nil {
		return nil, err
	}

	id := rec.ID
	if id == "" {
		// Набор данных может не нести идентификаторы заказов.
		id = uuid.NewString()
	}
	if err := order.SetID(id); err != nil {
		return nil, err
	}

	if rec.CreatedAt != "" {
		created, err := time.Parse(time.RFC3339, rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		if err := order.SetCreatedAt(created); err != nil {
			return nil, err
		}
	}

	if len(rec.Items) == 0 {
		return nil, fmt.Errorf("order without items")
	}
	for _, item := range rec.Items {
		article, err := b.articles.Get(item.ArticleID)
		if err != nil {
			return nil, err
		}
		if err := order.AddItem(article, item.Units); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// LoadDemo импортирует встроенный демонстрационный набор данных.
func (b *Builder) LoadDemo() (Summary, error) {
	return b.Load(strings.NewReader(demoDataset))
}
