package domain

import "time"

// Calculator описывает расчёт НДС, включённого в брутто-цены.
type Calculator interface {
	// RateOf возвращает процентную ставку налоговой категории;
	// неизвестная категория трактуется как безналоговая (0.0).
	RateOf(cat TaxCategory) float64
	// IncludedVAT возвращает долю налога в брутто-сумме (в центах),
	// округлённую до ближайшего целого.
	IncludedVAT(gross int64, cat TaxCategory) int64
	// ValueAndTax возвращает компаунд-стоимость и компаунд-налог заказа,
	// накопленные по позициям; nil-заказ даёт (0, 0).
	ValueAndTax(order *Order) (gross int64, vat int64)
}

// NameStyle задаёт формат вывода имени клиента.
type NameStyle int

const (
	// NameLastFirst — "Meyer, Eric".
	NameLastFirst NameStyle = iota
	// NameFirstLast — "Eric Meyer".
	NameFirstLast
)

// DateStyle задаёт формат вывода даты.
type DateStyle int

const (
	// DateISO — "2020-02-14 10:23:00".
	DateISO DateStyle = iota
	// DateDayMonthYear — "14.02.2020".
	DateDayMonthYear
)

// PriceStyle задаёт формат вывода денежной суммы.
type PriceStyle int

const (
	// PricePlain — "25.96".
	PricePlain PriceStyle = iota
	// PriceCurrency — "25.96 €".
	PriceCurrency
)

// Formatter описывает форматирование имён, дат и цен для отчётов.
// Рендереры потребляют эту способность, но не владеют её логикой.
type Formatter interface {
	FmtName(first, last string, style NameStyle) string
	// FmtDate возвращает fallback для нулевого времени.
	FmtDate(t time.Time, style DateStyle, fallback string) string
	// FmtPrice форматирует сумму в центах с двумя знаками после запятой.
	FmtPrice(minor int64, style PriceStyle) string
}

// TableWriter описывает построитель таблиц с фиксированными колонками.
// Рендерер отчётов — потребитель этой абстракции, не её реализация.
type TableWriter interface {
	// Row добавляет строку; недостающие ячейки остаются пустыми,
	// слишком длинные обрезаются по ширине колонки.
	Row(cells ...string) TableWriter
	// Line добавляет горизонтальную разделительную линию.
	Line() TableWriter
}

// Inventory описывает проверку заказа на покрытие складскими остатками.
type Inventory interface {
	// IsFillable сообщает, можно ли закрыть все позиции заказа со склада.
	IsFillable(order *Order) bool
	// Fill списывает остатки под заказ.
	Fill(order *Order) error
}
