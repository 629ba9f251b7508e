package domain

import "time"

// creationLowerBound — нижняя граница даты создания заказа: заказы старше
// 2020-01-01 в системе не существуют.
var creationLowerBound = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Order — заказ клиента: договорная связь клиента с набором заказанных
// позиций. Заказ эксклюзивно владеет своими позициями (OrderItem создаются
// только через AddItem), но лишь ссылается на клиента.
type Order struct {
	id       setOnce[string]
	customer *Customer
	created  time.Time
	items    []*OrderItem
}

// NewOrder создаёт заказ для клиента; дата создания — момент вызова.
func NewOrder(customer *Customer) (*Order, error) {
	if customer == nil {
		return nil, ErrNilCustomer
	}
	return &Order{
		customer: customer,
		created:  time.Now(),
	}, nil
}

// ID возвращает идентификатор или пустую строку, если он ещё не присвоен.
func (o *Order) ID() string {
	id, _ := o.id.get()
	return id
}

// SetID присваивает идентификатор ровно один раз. Пустой id всегда
// возвращает ошибку, повторный валидный молча игнорируется.
func (o *Order) SetID(id string) error {
	if id == "" {
		return ErrInvalidID
	}
	o.id.set(id)
	return nil
}

// Customer возвращает владельца заказа, никогда не nil.
func (o *Order) Customer() *Customer {
	return o.customer
}

// CreatedAt возвращает дату/время создания заказа.
func (o *Order) CreatedAt() time.Time {
	return o.created
}

// SetCreatedAt обновляет дату создания. Валидируется сам аргумент:
// допускаются значения 2020-01-01 <= t <= now+1d. Проверка получателя
// вместо аргумента в исходной системе делала границы фиктивными — здесь
// реализовано исправленное поведение.
func (o *Order) SetCreatedAt(t time.Time) error {
	upper := time.Now().Add(24 * time.Hour)
	if t.Before(creationLowerBound) || t.After(upper) {
		return ErrDateOutOfRange
	}
	o.created = t
	return nil
}

// ItemsCount возвращает число позиций заказа.
func (o *Order) ItemsCount() int {
	return len(o.items)
}

// Items возвращает копию списка позиций в порядке добавления.
func (o *Order) Items() []*OrderItem {
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// AddItem создаёт позицию для статьи каталога и добавляет её в заказ.
func (o *Order) AddItem(article *Article, units int) error {
	if article == nil {
		return ErrNilArticle
	}
	if units <= 0 {
		return ErrInvalidUnits
	}
	o.items = append(o.items, &OrderItem{article: article, units: units})
	return nil
}

// DeleteItem удаляет i-ю позицию; индекс вне диапазона — no-op.
func (o *Order) DeleteItem(i int) {
	if i < 0 || i >= len(o.items) {
		return
	}
	o.items = append(o.items[:i], o.items[i+1:]...)
}

// DeleteAllItems удаляет все позиции заказа.
func (o *Order) DeleteAllItems() {
	o.items = nil
}

// TotalValue возвращает брутто-стоимость заказа в центах:
// сумма цена*количество по всем позициям, без выделения налога.
func (o *Order) TotalValue() int64 {
	var total int64
	for _, item := range o.items {
		total += item.article.unitPrice * int64(item.units)
	}
	return total
}

// OrderItem — позиция заказа: неизменяемая ссылка на статью каталога и
// изменяемое положительное количество единиц. Позиции создаются только
// через Order.AddItem и вне заказа не существуют.
type OrderItem struct {
	article *Article
	units   int
}

// Article возвращает заказанную статью каталога, никогда не nil.
func (i *OrderItem) Article() *Article {
	return i.article
}

// Units возвращает количество заказанных единиц.
func (i *OrderItem) Units() int {
	return i.units
}

// SetUnits обновляет количество; принимаются только положительные значения.
func (i *OrderItem) SetUnits(units int) error {
	if units <= 0 {
		return ErrInvalidUnits
	}
	i.units = units
	return nil
}
