package domain

// Currency — валюта, в которой котируется цена статьи каталога.
type Currency string

const (
	// CurrencyEUR — валюта по умолчанию.
	CurrencyEUR Currency = "EUR"
)

// Symbol возвращает печатный символ валюты.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyEUR:
		return "€"
	default:
		return string(c)
	}
}

// TaxCategory — налоговая категория статьи каталога.
type TaxCategory string

const (
	// TaxFree — без НДС.
	TaxFree TaxCategory = "taxfree"
	// TaxStandardVAT — стандартная ставка НДС 19%, категория по умолчанию.
	TaxStandardVAT TaxCategory = "standard_vat"
	// TaxReducedVAT — льготная ставка НДС 7%.
	TaxReducedVAT TaxCategory = "reduced_vat"
)

// Article — статья каталога, на которую ссылаются позиции заказов.
//
// Цена хранится в минимальных денежных единицах (центах), чтобы исключить
// плавающую точку в денежной арифметике. Нулевая цена возможна только у
// сущности, созданной конструктором по умолчанию: явный SetUnitPrice
// принимает строго положительные значения.
type Article struct {
	id          setOnce[string]
	description string
	unitPrice   int64
	currency    Currency
	tax         TaxCategory
}

// NewArticle возвращает статью с валютой и налоговой категорией по умолчанию.
func NewArticle() *Article {
	return &Article{
		currency: CurrencyEUR,
		tax:      TaxStandardVAT,
	}
}

// NewArticleWith создаёт статью с описанием и ценой, валидируя оба аргумента.
func NewArticleWith(description string, unitPrice int64) (*Article, error) {
	a := NewArticle()
	if err := a.SetDescription(description); err != nil {
		return nil, err
	}
	if err := a.SetUnitPrice(unitPrice); err != nil {
		return nil, err
	}
	return a, nil
}

// ID возвращает идентификатор или пустую строку, если он ещё не присвоен.
func (a *Article) ID() string {
	id, _ := a.id.get()
	return id
}

// SetID присваивает идентификатор ровно один раз. Невалидный id (пустая
// строка) всегда возвращает ошибку, валидный после первого присваивания
// молча игнорируется.
func (a *Article) SetID(id string) error {
	if id == "" {
		return ErrInvalidID
	}
	a.id.set(id)
	return nil
}

// Description возвращает описание статьи, никогда не nil-эквивалент.
func (a *Article) Description() string {
	return a.description
}

// SetDescription обновляет описание; пустая строка отклоняется.
func (a *Article) SetDescription(description string) error {
	if description == "" {
		return ErrInvalidDescription
	}
	a.description = description
	return nil
}

// UnitPrice возвращает цену одной единицы в центах.
func (a *Article) UnitPrice() int64 {
	return a.unitPrice
}

// SetUnitPrice обновляет цену; принимаются только положительные значения,
// при отказе прежняя цена сохраняется.
func (a *Article) SetUnitPrice(unitPrice int64) error {
	if unitPrice <= 0 {
		return ErrInvalidPrice
	}
	a.unitPrice = unitPrice
	return nil
}

// Currency возвращает валюту цены.
func (a *Article) Currency() Currency {
	return a.currency
}

// SetCurrency обновляет валюту; принимаются только известные валюты.
func (a *Article) SetCurrency(currency Currency) error {
	switch currency {
	case CurrencyEUR:
		a.currency = currency
		return nil
	default:
		return ErrInvalidCurrency
	}
}

// Tax возвращает налоговую категорию статьи.
func (a *Article) Tax() TaxCategory {
	return a.tax
}

// SetTax обновляет налоговую категорию; принимаются только известные категории.
func (a *Article) SetTax(tax TaxCategory) error {
	switch tax {
	case TaxFree, TaxStandardVAT, TaxReducedVAT:
		a.tax = tax
		return nil
	default:
		return ErrInvalidTax
	}
}
