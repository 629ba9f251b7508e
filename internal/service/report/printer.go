package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vladislavdragonenkov/ors/internal/domain"
)

// reducedTaxMarker помечает построчный НДС позиций со льготной ставкой.
const reducedTaxMarker = "*"

// Printer строит табличные и однострочные отчёты по заказам. Значения НДС
// вычисляются калькулятором на каждой строке; принтер не перевалидирует
// сущности — инварианты закреплены на границе мутации.
type Printer struct {
	calc      domain.Calculator
	formatter domain.Formatter
}

// NewPrinter создаёт принтер поверх калькулятора и форматтера.
func NewPrinter(calc domain.Calculator, formatter domain.Formatter) *Printer {
	return &Printer{calc: calc, formatter: formatter}
}

// OrderTable печатает заказ в таблицу: строка-заголовок с id заказа и
// именем клиента, затем по строке на позицию. Компаунд-итоги заказа несёт
// только последняя строка — они визуально прижаты к последней позиции.
// nil-таблица или nil-заказ — no-op, аргумент возвращается без изменений.
func (p *Printer) OrderTable(t domain.TableWriter, order *domain.Order) domain.TableWriter {
	if t == nil || order == nil {
		return t
	}

	t.Row(order.ID(), order.Customer().FirstName()+"'s order:")

	gross, vat := p.calc.ValueAndTax(order)
	compoundVAT := p.formatter.FmtPrice(vat, domain.PricePlain)
	compoundValue := p.formatter.FmtPrice(gross, domain.PricePlain)

	items := order.Items()
	for i, item := range items {
		article := item.Article()
		line := article.UnitPrice() * int64(item.Units())
		lineVAT := p.formatter.FmtPrice(p.calc.IncludedVAT(line, article.Tax()), domain.PricePlain)
		if article.Tax() == domain.TaxReducedVAT {
			lineVAT += reducedTaxMarker
		}

		desc := fmt.Sprintf(" - %d %s, %dx %s", item.Units(), article.Description(),
			item.Units(), p.formatter.FmtPrice(article.UnitPrice(), domain.PricePlain))
		lineValue := p.formatter.FmtPrice(line, domain.PricePlain)

		if i == len(items)-1 {
			t.Row("", desc, lineVAT, lineValue, compoundVAT, compoundValue)
		} else {
			t.Row("", desc, lineVAT, lineValue, "", "")
		}
	}
	return t
}

// OrdersTable печатает коллекцию заказов по убыванию их брутто-стоимости и
// завершает отчёт строкой общего итога по всем заказам. Сравнение идёт по
// полной int64-стоимости: усечение до int в исходной системе ломало порядок
// больших сумм и здесь не воспроизводится. Итог накапливается независимым
// повторным обходом всех позиций и обязан совпадать с суммой подытогов.
func (p *Printer) OrdersTable(t domain.TableWriter, orders []*domain.Order) domain.TableWriter {
	if t == nil || orders == nil {
		return t
	}

	var totalGross, totalVAT int64
	for _, order := range orders {
		for _, item := range order.Items() {
			line := item.Article().UnitPrice() * int64(item.Units())
			totalGross += line
			totalVAT += p.calc.IncludedVAT(line, item.Article().Tax())
		}
	}

	byValueDesc := func(list []*domain.Order) []*domain.Order {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].TotalValue() > list[j].TotalValue()
		})
		return list
	}

	Process(t, orders, byValueDesc, func(order *domain.Order) {
		p.OrderTable(t, order).Line()
	})

	return t.Row("", "total:", "", "",
		p.formatter.FmtPrice(totalVAT, domain.PricePlain),
		p.formatter.FmtPrice(totalGross, domain.PricePlain)).Line()
}

// PrintCustomer печатает одну строку фиксированной ширины на клиента.
// nil-клиент — no-op.
func (p *Printer) PrintCustomer(buf *strings.Builder, c *domain.Customer) *strings.Builder {
	if c == nil {
		return buf
	}
	if buf == nil {
		buf = &strings.Builder{}
	}

	idStr := ""
	if id, ok := c.ID(); ok {
		idStr = fmt.Sprintf("%d", id)
	}
	contacts := strings.Join(c.Contacts(), ", ")
	fmt.Fprintf(buf, "| %6s | %-31s| %-44s |\n",
		idStr, p.formatter.FmtName(c.FirstName(), c.LastName(), domain.NameLastFirst), contacts)
	return buf
}

// PrintCustomers печатает клиентов в порядке обхода коллекции.
func (p *Printer) PrintCustomers(buf *strings.Builder, customers []*domain.Customer) *strings.Builder {
	if customers == nil {
		return buf
	}
	if buf == nil {
		buf = &strings.Builder{}
	}
	return Process(buf, customers, nil, func(c *domain.Customer) {
		p.PrintCustomer(buf, c)
	})
}

// PrintArticle печатает одну строку фиксированной ширины на статью каталога.
func (p *Printer) PrintArticle(buf *strings.Builder, a *domain.Article) *strings.Builder {
	if a == nil {
		return buf
	}
	if buf == nil {
		buf = &strings.Builder{}
	}

	ratePct := fmt.Sprintf("%.0f%%", p.calc.RateOf(a.Tax()))
	fmt.Fprintf(buf, "| %10s | %-27s| %8s | %4s VAT |\n",
		a.ID(), a.Description(),
		p.formatter.FmtPrice(a.UnitPrice(), domain.PriceCurrency), ratePct)
	return buf
}

// PrintArticles печатает статьи каталога в порядке обхода коллекции.
func (p *Printer) PrintArticles(buf *strings.Builder, articles []*domain.Article) *strings.Builder {
	if articles == nil {
		return buf
	}
	if buf == nil {
		buf = &strings.Builder{}
	}
	return Process(buf, articles, nil, func(a *domain.Article) {
		p.PrintArticle(buf, a)
	})
}

// PrintOrder печатает одну строку фиксированной ширины на заказ.
func (p *Printer) PrintOrder(buf *strings.Builder, order *domain.Order) *strings.Builder {
	if order == nil {
		return buf
	}
	if buf == nil {
		buf = &strings.Builder{}
	}

	c := order.Customer()
	created := p.formatter.FmtDate(order.CreatedAt(), domain.DateISO, "")
	fmt.Fprintf(buf, "| %10s | %-27s| %d items | created: %s |\n",
		order.ID(), p.formatter.FmtName(c.FirstName(), c.LastName(), domain.NameLastFirst),
		order.ItemsCount(), created)
	return buf
}

// PrintOrders печатает заказы в порядке обхода коллекции.
func (p *Printer) PrintOrders(buf *strings.Builder, orders []*domain.Order) *strings.Builder {
	if orders == nil {
		return buf
	}
	if buf == nil {
		buf = &strings.Builder{}
	}
	return Process(buf, orders, nil, func(o *domain.Order) {
		p.PrintOrder(buf, o)
	})
}
