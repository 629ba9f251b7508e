package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vladislavdragonenkov/ors/internal/domain"
)

// Align задаёт выравнивание содержимого колонки.
type Align int

const (
	// AlignLeft — текстовые колонки.
	AlignLeft Align = iota
	// AlignRight — числовые/денежные колонки.
	AlignRight
)

// Column — колонка таблицы с фиксированной шириной.
type Column struct {
	Title string
	Width int
	Align Align
}

// Table — построитель таблиц с рамками и фиксированными колонками,
// реализация domain.TableWriter. Текст накапливается в буфере вызывающего;
// единственный контракт по ресурсам — один писатель на буфер.
type Table struct {
	buf  *strings.Builder
	cols []Column
}

// NewTable создаёт построитель над буфером; nil-буфер заменяется собственным.
func NewTable(buf *strings.Builder, cols ...Column) *Table {
	if buf == nil {
		buf = &strings.Builder{}
	}
	return &Table{buf: buf, cols: cols}
}

// Header печатает строку заголовков колонок, обрамлённую линиями.
func (t *Table) Header() domain.TableWriter {
	titles := make([]string, len(t.cols))
	for i, col := range t.cols {
		titles[i] = col.Title
	}
	return t.Line().Row(titles...).Line()
}

// Row печатает одну строку содержимого. Недостающие ячейки пустые,
// избыточные отбрасываются, длинные значения обрезаются по ширине колонки.
func (t *Table) Row(cells ...string) domain.TableWriter {
	for i, col := range t.cols {
		cell := ""
		if i < len(cells) {
			cell = clip(cells[i], col.Width)
		}
		if col.Align == AlignRight {
			fmt.Fprintf(t.buf, "|%s%s", pad(col.Width-utf8.RuneCountInString(cell)), cell)
		} else {
			fmt.Fprintf(t.buf, "|%s%s", cell, pad(col.Width-utf8.RuneCountInString(cell)))
		}
	}
	t.buf.WriteString("|\n")
	return t
}

// Line печатает горизонтальную разделительную линию по всем колонкам.
func (t *Table) Line() domain.TableWriter {
	for _, col := range t.cols {
		t.buf.WriteByte('+')
		t.buf.WriteString(strings.Repeat("-", col.Width))
	}
	t.buf.WriteString("+\n")
	return t
}

// String возвращает накопленный текст таблицы.
func (t *Table) String() string {
	return t.buf.String()
}

func clip(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

var _ domain.TableWriter = (*Table)(nil)

// OrderColumns — стандартная раскладка отчёта по заказам: идентификатор и
// описание слева, денежные колонки справа. Две последние колонки несут
// компаунд-итоги заказа и заполняются только в последней строке позиции.
func OrderColumns() []Column {
	return []Column{
		{Title: "Order-ID", Width: 12, Align: AlignLeft},
		{Title: "Order items", Width: 34, Align: AlignLeft},
		{Title: "VAT", Width: 9, Align: AlignRight},
		{Title: "Price", Width: 11, Align: AlignRight},
		{Title: "VAT", Width: 9, Align: AlignRight},
		{Title: "Total", Width: 11, Align: AlignRight},
	}
}

// NewOrderTable создаёт таблицу стандартной раскладки и печатает заголовок.
func NewOrderTable(buf *strings.Builder) *Table {
	t := NewTable(buf, OrderColumns()...)
	t.Header()
	return t
}
