package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ReportMetrics содержит метрики импорта данных и генерации отчётов.
type ReportMetrics struct {
	// Счётчики импорта
	ordersImported  prometheus.Counter
	recordsSkipped  prometheus.Counter
	reportsRendered *prometheus.CounterVec

	// Гистограмма времени генерации отчёта
	renderDuration prometheus.Histogram
}

// NewReportMetrics создаёт метрики в глобальном registerer.
func NewReportMetrics() *ReportMetrics {
	return NewReportMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewReportMetricsWithRegisterer создаёт метрики в переданном registerer;
// тесты используют изолированный registry.
func NewReportMetricsWithRegisterer(registerer prometheus.Registerer) *ReportMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &ReportMetrics{
		ordersImported: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ors_orders_imported_total",
			Help: "Total number of orders accepted during dataset import",
		}),
		recordsSkipped: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ors_records_skipped_total",
			Help: "Total number of dataset records rejected by validation or acceptance",
		}),
		reportsRendered: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "ors_reports_rendered_total",
			Help: "Total number of reports rendered, by report kind",
		}, []string{"kind"}),
		renderDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "ors_report_render_duration_seconds",
			Help:    "Duration of report rendering in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		}),
	}
}

// RecordOrdersImported учитывает принятые при импорте заказы.
func (m *ReportMetrics) RecordOrdersImported(n int) {
	m.ordersImported.Add(float64(n))
}

// RecordRecordsSkipped учитывает отброшенные записи набора данных.
func (m *ReportMetrics) RecordRecordsSkipped(n int) {
	m.recordsSkipped.Add(float64(n))
}

// RecordReportRendered учитывает сгенерированный отчёт указанного вида.
func (m *ReportMetrics) RecordReportRendered(kind string) {
	m.reportsRendered.WithLabelValues(kind).Inc()
}

// RecordRenderDuration записывает время генерации отчёта.
func (m *ReportMetrics) RecordRenderDuration(duration time.Duration) {
	m.renderDuration.Observe(duration.Seconds())
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}
