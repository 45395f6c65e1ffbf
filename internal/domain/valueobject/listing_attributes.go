package valueobject

import (
	"errors"
	"strings"
)

var (
	ErrInvalidListingStatus = errors.New("invalid listing status")
	ErrInvalidCondition     = errors.New("invalid condition")
	ErrInvalidCurrency      = errors.New("invalid currency")
)

// ListingStatus は物件の取引状態です
type ListingStatus string

const (
	ListingStatusSale ListingStatus = "sale"
	ListingStatusRent ListingStatus = "rent"
	ListingStatusSold ListingStatus = "sold"
)

// NewListingStatus は文字列からListingStatusを生成します
func NewListingStatus(s string) (ListingStatus, error) {
	v := ListingStatus(s)
	switch v {
	case ListingStatusSale, ListingStatusRent, ListingStatusSold:
		return v, nil
	default:
		return "", ErrInvalidListingStatus
	}
}

// String は文字列を返します
func (s ListingStatus) String() string {
	return string(s)
}

// Condition は物件の状態です
type Condition string

const (
	ConditionNew             Condition = "new"
	ConditionRenovated       Condition = "renovated"
	ConditionNeedsRenovation Condition = "needs_renovation"
)

// NewCondition は文字列からConditionを生成します
// 空文字は未設定として扱います
func NewCondition(s string) (*Condition, error) {
	if s == "" {
		return nil, nil
	}
	v := Condition(s)
	switch v {
	case ConditionNew, ConditionRenovated, ConditionNeedsRenovation:
		return &v, nil
	default:
		return nil, ErrInvalidCondition
	}
}

// String は文字列を返します
func (c Condition) String() string {
	return string(c)
}

// Currency は3文字の通貨コードです
type Currency string

// DefaultCurrency は既定の通貨です
const DefaultCurrency Currency = "USD"

// NewCurrency は文字列からCurrencyを生成します
// 空文字の場合は既定の通貨を返します
func NewCurrency(s string) (Currency, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return DefaultCurrency, nil
	}
	if len(s) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCurrency
		}
	}
	return Currency(s), nil
}

// String は文字列を返します
func (c Currency) String() string {
	return string(c)
}
