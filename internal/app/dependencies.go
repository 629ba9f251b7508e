package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ors/internal/domain"
	"github.com/vladislavdragonenkov/ors/internal/importer"
	"github.com/vladislavdragonenkov/ors/internal/metrics"
	"github.com/vladislavdragonenkov/ors/internal/service/format"
	"github.com/vladislavdragonenkov/ors/internal/service/inventory"
	"github.com/vladislavdragonenkov/ors/internal/service/report"
	"github.com/vladislavdragonenkov/ors/internal/service/tax"
	"github.com/vladislavdragonenkov/ors/internal/storage/memory"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Articles  domain.ArticleRepository
	Customers domain.CustomerRepository
	Orders    domain.OrderRepository
	Inventory domain.Inventory
	Printer   *report.Printer
	Importer  *importer.Builder
	Metrics   *metrics.ReportMetrics
	Logger    *log.Entry
}

// NewDependencies создаёт и инициализирует все зависимости приложения.
// NOTE: В production окружении inventory-сервис должен быть заменён на
// реального клиента складского сервиса.
func NewDependencies(logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	articles := memory.NewArticleRepository()
	customers := memory.NewCustomerRepository()
	orders := memory.NewOrderRepository()
	inventorySvc := inventory.NewMockService()

	return &Dependencies{
		Articles:  articles,
		Customers: customers,
		Orders:    orders,
		Inventory: inventorySvc,
		Printer:   report.NewPrinter(tax.NewCalculator(), format.NewFormatter()),
		Importer:  importer.NewBuilder(articles, customers, orders, inventorySvc, logger.WithField("component", "importer")),
		Metrics:   metrics.NewReportMetrics(),
		Logger:    logger,
	}
}
