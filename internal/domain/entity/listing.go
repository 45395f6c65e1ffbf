package entity

import (
	"strings"
	"time"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
)

// ListingAttributes は物件の編集可能な属性です
type ListingAttributes struct {
	Name          string
	DescriptionRU string
	DescriptionEN string
	Price         float64
	Currency      valueobject.Currency
	Status        valueobject.ListingStatus
	Availability  bool
	Country       string
	City          string
	District      string
	Address       string
	ComplexName   string
	Latitude      *float64
	Longitude     *float64
	Area          *float64
	LivingArea    *float64
	LandArea      *float64
	Rooms         *int
	Bedrooms      *int
	Bathrooms     *int
	Floors        *int
	TotalFloors   *int
	YearBuilt     *int
	Condition     *valueobject.Condition
	Features      map[string]any
	Photos        []string
	Videos        []string
}

// MsgAddressExists は住所重複時のメッセージです
const MsgAddressExists = "Object with this address already exists"

// Listing は物件（不動産オブジェクト）エンティティです
// BrokerID は作成後に変更できません（管理者による担当変更を除く）
type Listing struct {
	ID int64
	ListingAttributes
	BrokerID     int64
	AssignedByID *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewListing は作成者をブローカーとする新しい物件を作成します
func NewListing(brokerID int64, attrs ListingAttributes) *Listing {
	now := time.Now()
	attrs.normalize()
	return &Listing{
		ListingAttributes: attrs,
		BrokerID:          brokerID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// OwnerID は所有者IDを返します
func (l *Listing) OwnerID() int64 {
	return l.BrokerID
}

// Update は属性を置き換えます
func (l *Listing) Update(attrs ListingAttributes) {
	attrs.normalize()
	l.ListingAttributes = attrs
	l.UpdatedAt = time.Now()
}

// AssignBroker は担当ブローカーを変更し、変更者を記録します
func (l *Listing) AssignBroker(brokerID, assignedByID int64) {
	l.BrokerID = brokerID
	l.AssignedByID = &assignedByID
	l.UpdatedAt = time.Now()
}

// RequiresUniqueAddress は住所の一意性チェックが必要かを判定します
// 建物名が無い物件のみが対象です
func (l *Listing) RequiresUniqueAddress() bool {
	return l.ComplexName == ""
}

// AddressKey は住所の一意性判定に用いるキーです
func (l *Listing) AddressKey() AddressKey {
	return AddressKey{
		Country:  l.Country,
		City:     l.City,
		District: l.District,
		Address:  l.Address,
	}
}

func (a *ListingAttributes) normalize() {
	a.ComplexName = strings.TrimSpace(a.ComplexName)
	if a.Currency == "" {
		a.Currency = valueobject.DefaultCurrency
	}
	if a.Status == "" {
		a.Status = valueobject.ListingStatusSale
	}
	if a.Features == nil {
		a.Features = map[string]any{}
	}
	if a.Photos == nil {
		a.Photos = []string{}
	}
	if a.Videos == nil {
		a.Videos = []string{}
	}
}

// AddressKey は (country, city, district, address) の組です
type AddressKey struct {
	Country  string
	City     string
	District string
	Address  string
}

var _ authz.Owned = (*Listing)(nil)
