package tax

import (
	"math"

	"github.com/vladislavdragonenkov/ors/internal/domain"
)

// rates — фиксированная таблица процентных ставок по налоговым категориям.
var rates = map[domain.TaxCategory]float64{
	domain.TaxFree:        0.0,
	domain.TaxStandardVAT: 19.0,
	domain.TaxReducedVAT:  7.0,
}

// Calculator выделяет НДС, включённый в брутто-цены, и агрегирует суммы
// заказа. Все суммы — в центах.
type Calculator struct{}

// NewCalculator возвращает калькулятор НДС.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// RateOf возвращает процентную ставку категории; неизвестная категория
// трактуется как безналоговая, это не ошибка.
func (c *Calculator) RateOf(cat domain.TaxCategory) float64 {
	return rates[cat]
}

// IncludedVAT возвращает долю налога в брутто-сумме:
// gross - gross/(1+rate/100), округлённую до ближайшего целого
// (половина — от нуля).
func (c *Calculator) IncludedVAT(gross int64, cat domain.TaxCategory) int64 {
	rate := c.RateOf(cat)
	if rate == 0 {
		return 0
	}
	net := float64(gross) / (1 + rate/100)
	return int64(math.Round(float64(gross) - net))
}

// ValueAndTax возвращает компаунд-стоимость и компаунд-налог заказа.
// Налог считается на уровне позиции и затем суммируется: сумма построчных
// округлений в общем случае не равна округлению общей суммы, и именно
// построчный вариант воспроизводит рендерер.
func (c *Calculator) ValueAndTax(order *domain.Order) (gross int64, vat int64) {
	if order == nil {
		return 0, 0
	}
	for _, item := range order.Items() {
		line := item.Article().UnitPrice() * int64(item.Units())
		gross += line
		vat += c.IncludedVAT(line, item.Article().Tax())
	}
	return gross, vat
}

var _ domain.Calculator = (*Calculator)(nil)
