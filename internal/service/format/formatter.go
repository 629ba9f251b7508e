package format

import (
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/ors/internal/domain"
)

// Formatter — реализация domain.Formatter для имён, дат и цен отчётов.
type Formatter struct {
	currency domain.Currency
}

// NewFormatter возвращает форматтер с символом валюты по умолчанию (EUR).
func NewFormatter() *Formatter {
	return &Formatter{currency: domain.CurrencyEUR}
}

// FmtName форматирует имя клиента в заданном стиле. Пустая часть имени
// опускается вместе со своим разделителем.
func (f *Formatter) FmtName(first, last string, style domain.NameStyle) string {
	switch {
	case first == "" && last == "":
		return ""
	case first == "":
		return last
	case last == "":
		return first
	}
	if style == domain.NameFirstLast {
		return first + " " + last
	}
	return last + ", " + first
}

// FmtDate форматирует дату; нулевое время даёт fallback.
func (f *Formatter) FmtDate(t time.Time, style domain.DateStyle, fallback string) string {
	if t.IsZero() {
		return fallback
	}
	if style == domain.DateDayMonthYear {
		return t.Format("02.01.2006")
	}
	return t.Format("2006-01-02 15:04:05")
}

// FmtPrice форматирует сумму в центах с двумя знаками после запятой.
func (f *Formatter) FmtPrice(minor int64, style domain.PriceStyle) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	s := fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
	if style == domain.PriceCurrency {
		return s + " " + f.currency.Symbol()
	}
	return s
}

var _ domain.Formatter = (*Formatter)(nil)
