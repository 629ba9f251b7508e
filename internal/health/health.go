package health

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vladislavdragonenkov/ors/internal/domain"
)

// Status представляет статус компонента
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// Check представляет результат проверки компонента
type Check struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Response представляет ответ health check
type Response struct {
	Status        Status  `json:"status"`
	Timestamp     string  `json:"timestamp"`
	Checks        []Check `json:"checks,omitempty"`
	Version       string  `json:"version,omitempty"`
	UptimeSeconds int64   `json:"uptime_seconds"`
}

// Checker интерфейс для проверки здоровья компонента
type Checker interface {
	Check() Check
}

// Handler обрабатывает health check запросы отчётного сервиса.
// Состав checkers фиксируется при конструировании: сервис однопоточный,
// динамическая регистрация ему не нужна.
type Handler struct {
	checkers  []Checker
	version   string
	startTime time.Time
}

// NewHandler создаёт health handler с версией сборки.
func NewHandler(version string, checkers ...Checker) *Handler {
	return &Handler{
		checkers:  checkers,
		version:   version,
		startTime: time.Now(),
	}
}

// ServeHTTP выполняет все проверки и возвращает агрегированный статус.
func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	overall := StatusHealthy
	checks := make([]Check, 0, len(h.checkers))
	for _, checker := range h.checkers {
		check := checker.Check()
		checks = append(checks, check)
		if check.Status == StatusUnhealthy {
			overall = StatusUnhealthy
		}
	}

	response := Response{
		Status:        overall,
		Timestamp:     time.Now().Format(time.RFC3339),
		Checks:        checks,
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}

	statusCode := http.StatusOK
	if overall == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

// DatasetChecker проверяет, что набор данных отчёта загружен: пустой
// репозиторий заказов означает, что отдавать сервису нечего.
type DatasetChecker struct {
	Orders domain.OrderRepository
}

// Check возвращает unhealthy для пустого репозитория заказов.
func (c DatasetChecker) Check() Check {
	count := c.Orders.Count()
	if count == 0 {
		return Check{Name: "dataset", Status: StatusUnhealthy, Message: "no orders loaded"}
	}
	return Check{Name: "dataset", Status: StatusHealthy, Message: fmt.Sprintf("%d orders loaded", count)}
}
