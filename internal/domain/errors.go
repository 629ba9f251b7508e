package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument — базовая ошибка валидации на границе мутации сущности.
// Конкретные ошибки ниже оборачивают её, чтобы вызывающий код мог
// классифицировать отказ через errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// Ошибка пустого или отрицательного идентификатора.
	ErrInvalidID = fmt.Errorf("%w: invalid id", ErrInvalidArgument)
	// Ошибка пустого описания статьи каталога.
	ErrInvalidDescription = fmt.Errorf("%w: description must not be empty", ErrInvalidArgument)
	// Ошибка цены, не являющейся положительной.
	ErrInvalidPrice = fmt.Errorf("%w: unit price must be greater than zero", ErrInvalidArgument)
	// Ошибка неизвестной валюты.
	ErrInvalidCurrency = fmt.Errorf("%w: unknown currency", ErrInvalidArgument)
	// Ошибка неизвестной налоговой категории.
	ErrInvalidTax = fmt.Errorf("%w: unknown tax category", ErrInvalidArgument)
	// Ошибка пустого имени клиента.
	ErrInvalidName = fmt.Errorf("%w: name must not be empty", ErrInvalidArgument)
	// Ошибка контакта короче шести символов (до или после нормализации).
	ErrContactTooShort = fmt.Errorf("%w: contact shorter than 6 characters", ErrInvalidArgument)
	// Ошибка отсутствующего клиента при создании заказа.
	ErrNilCustomer = fmt.Errorf("%w: customer is required", ErrInvalidArgument)
	// Ошибка отсутствующей статьи каталога в позиции заказа.
	ErrNilArticle = fmt.Errorf("%w: article is required", ErrInvalidArgument)
	// Ошибка количества единиц, не являющегося положительным.
	ErrInvalidUnits = fmt.Errorf("%w: units must be greater than zero", ErrInvalidArgument)
	// Ошибка даты создания заказа вне диапазона [2020-01-01, now+1d].
	ErrDateOutOfRange = fmt.Errorf("%w: creation date outside valid range", ErrInvalidArgument)
)

var (
	// ErrArticleNotFound возвращается, если статья каталога не найдена в репозитории.
	ErrArticleNotFound = errors.New("article not found")
	// ErrCustomerNotFound возвращается, если клиент не найден в репозитории.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateEntity сигнализирует о попытке сохранить сущность с занятым id.
	ErrDuplicateEntity = errors.New("entity with this id already exists")
)

// IsInvalidArgument проверяет, является ли ошибка отказом валидации аргумента.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
