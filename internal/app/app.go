package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	healthcheck "github.com/vladislavdragonenkov/ors/internal/health"
	"github.com/vladislavdragonenkov/ors/internal/importer"
	"github.com/vladislavdragonenkov/ors/internal/service/report"
	"github.com/vladislavdragonenkov/ors/internal/version"
)

// Config описывает минимальные настройки запуска приложения.
type Config struct {
	// DataFile — путь к JSON-набору данных. Пустое значение означает
	// встроенный демонстрационный набор.
	DataFile string
	// ServeAddr — адрес HTTP-сервера отчётов. Пустое значение переключает
	// приложение в одноразовый режим: отчёт печатается в Output.
	ServeAddr string
	// Output — приёмник одноразового отчёта. nil означает os.Stdout.
	Output io.Writer
}

// DefaultConfig возвращает базовые настройки: HTTP-сервер отчётов на :8080.
func DefaultConfig() Config {
	return Config{
		ServeAddr: ":8080",
	}
}

func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")
	deps := NewDependencies(logger)

	summary, err := loadDataset(deps, cfg.DataFile)
	if err != nil {
		return err
	}
	deps.Metrics.RecordOrdersImported(summary.Orders)
	deps.Metrics.RecordRecordsSkipped(summary.Skipped)
	logger.WithFields(log.Fields{
		"customers": summary.Customers,
		"articles":  summary.Articles,
		"orders":    summary.Orders,
		"skipped":   summary.Skipped,
	}).Info("набор данных загружен")

	if cfg.ServeAddr == "" {
		out := cfg.Output
		if out == nil {
			out = os.Stdout
		}
		if _, err := io.WriteString(out, renderReport(deps)); err != nil {
			return err
		}
		return nil
	}

	return serveReports(ctx, cfg.ServeAddr, deps, logger)
}

// loadDataset импортирует набор данных из файла либо встроенный демо-набор.
func loadDataset(deps *Dependencies, path string) (importer.Summary, error) {
	if path == "" {
		return deps.Importer.LoadDemo()
	}
	return deps.Importer.LoadFile(path)
}

// renderReport собирает полный текстовый отчёт: списки клиентов, статей и
// заказов, затем сводную таблицу заказов с общим итогом.
func renderReport(deps *Dependencies) string {
	start := time.Now()

	var buf strings.Builder
	customers := deps.Customers.List()
	articles := deps.Articles.List()
	orders := deps.Orders.List()

	buf.WriteString("Customers:\n")
	deps.Printer.PrintCustomers(&buf, customers)
	deps.Metrics.RecordReportRendered("customers")

	buf.WriteString("\nArticles:\n")
	deps.Printer.PrintArticles(&buf, articles)
	deps.Metrics.RecordReportRendered("articles")

	buf.WriteString("\nOrders:\n")
	deps.Printer.PrintOrders(&buf, orders)
	deps.Metrics.RecordReportRendered("orders")

	buf.WriteString("\n")
	table := report.NewOrderTable(&buf)
	deps.Printer.OrdersTable(table, orders)
	deps.Metrics.RecordReportRendered("orders_table")

	deps.Metrics.RecordRenderDuration(time.Since(start))
	return buf.String()
}

// serveReports поднимает HTTP-сервер с отчётом, health check и метриками и
// работает до отмены контекста.
func serveReports(ctx context.Context, addr string, deps *Dependencies, logger *log.Entry) error {
	healthHandler := healthcheck.NewHandler(version.GetVersion(),
		healthcheck.DatasetChecker{Orders: deps.Orders},
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/report", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, renderReport(deps))
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("сервер отчётов слушает %s", addr)
		logger.Infof("endpoints: %s/report, %s/healthz, %s/metrics", addr, addr, addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем сервер отчётов")
		shutdownHTTP(srv, logger)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("shutdown с ошибкой")
	}
}
