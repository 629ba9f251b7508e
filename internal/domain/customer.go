package domain

import "strings"

// минимальная длина контакта до и после нормализации.
const minContactLen = 6

// Customer — клиент, который создаёт заказы и владеет ими. Клиент может
// разделяться многими заказами и живёт дольше любого из них.
type Customer struct {
	id        setOnce[int64]
	firstName string
	lastName  string
	contacts  []string
}

// NewCustomer возвращает клиента без идентификатора и с пустыми именами.
func NewCustomer() *Customer {
	return &Customer{}
}

// NewCustomerWithName создаёт клиента и разбирает однострочное имя,
// например "Eric Meyer".
func NewCustomerWithName(name string) (*Customer, error) {
	c := NewCustomer()
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	return c, nil
}

// ID возвращает идентификатор и признак его присвоения; ноль — валидный id,
// поэтому признак нельзя заменить сентинелом.
func (c *Customer) ID() (int64, bool) {
	return c.id.get()
}

// SetID присваивает идентификатор ровно один раз. Отрицательный id всегда
// возвращает ошибку, повторный валидный молча игнорируется.
func (c *Customer) SetID(id int64) error {
	if id < 0 {
		return ErrInvalidID
	}
	c.id.set(id)
	return nil
}

// FirstName возвращает имя, никогда не nil-эквивалент.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName возвращает фамилию, никогда не nil-эквивалент.
func (c *Customer) LastName() string {
	return c.lastName
}

// Name возвращает полное имя в виде "имя, фамилия".
func (c *Customer) Name() string {
	return c.firstName + ", " + c.lastName
}

// SetFullName присваивает имя и фамилию напрямую, без разбора.
func (c *Customer) SetFullName(first, last string) {
	c.firstName = first
	c.lastName = last
}

// SetName разбирает однострочное имя на имя и фамилию. Разделители
// проверяются в фиксированном порядке приоритета (при нескольких
// разделителях побеждает более ранний в списке):
//
//  1. "последний;первый" — фамилия до последней ';', имя после неё,
//     один ведущий пробел имени отбрасывается;
//  2. "последний, первый" — разбиение по первой запятой с пробелами;
//  3. "первый последний" — последний токен становится фамилией;
//  4. иначе вся строка — фамилия, имя пустое.
func (c *Customer) SetName(name string) error {
	if name == "" {
		return ErrInvalidName
	}

	switch {
	case strings.Contains(name, ";"):
		i := strings.LastIndex(name, ";")
		c.lastName = name[:i]
		c.firstName = strings.TrimPrefix(name[i+1:], " ")
	case strings.Contains(name, ", "):
		i := strings.Index(name, ",")
		c.lastName = name[:i]
		c.firstName = strings.TrimLeft(name[i+1:], " ")
	case strings.Contains(name, " "):
		i := strings.LastIndex(name, " ")
		c.firstName = name[:i]
		c.lastName = name[i+1:]
	default:
		c.firstName = ""
		c.lastName = name
	}
	return nil
}

// ContactsCount возвращает число контактов клиента.
func (c *Customer) ContactsCount() int {
	return len(c.contacts)
}

// Contacts возвращает копию списка контактов в порядке добавления.
func (c *Customer) Contacts() []string {
	out := make([]string, len(c.contacts))
	copy(out, c.contacts)
	return out
}

// AddContact добавляет контакт после двухступенчатой проверки: сырое
// значение короче шести символов отклоняется сразу; затем из строки
// удаляются кавычки, запятые, точки с запятой, табуляции и переводы строки,
// края обрезаются от пробелов, и длина проверяется повторно. Дубликат
// нормализованного значения молча игнорируется.
func (c *Customer) AddContact(contact string) error {
	if len(contact) < minContactLen {
		return ErrContactTooShort
	}

	normalized := strings.TrimSpace(strings.Map(func(r rune) rune {
		switch r {
		case '"', ',', ';', '\t', '\n':
			return -1
		}
		return r
	}, contact))

	if len(normalized) < minContactLen {
		return ErrContactTooShort
	}
	for _, existing := range c.contacts {
		if existing == normalized {
			return nil
		}
	}
	c.contacts = append(c.contacts, normalized)
	return nil
}

// DeleteContact удаляет i-й контакт; индекс вне диапазона — no-op.
func (c *Customer) DeleteContact(i int) {
	if i < 0 || i >= len(c.contacts) {
		return
	}
	c.contacts = append(c.contacts[:i], c.contacts[i+1:]...)
}

// DeleteAllContacts удаляет все контакты.
func (c *Customer) DeleteAllContacts() {
	c.contacts = nil
}
