package entity

import (
	"time"

	"github.com/samber/lo"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
)

// CatalogAttributes はカタログの編集可能な属性です
type CatalogAttributes struct {
	Name               string
	Description        string
	IsPublic           bool
	Tags               []string
	SEOMetaTitle       string
	SEOMetaDescription string
	SEOKeywords        string
}

// Catalog は物件を並べたコレクションです
type Catalog struct {
	ID int64
	CatalogAttributes
	BrokerID    int64
	BrokerEmail string
	Listings    []CatalogListing
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CatalogListing はカタログ内の物件参照です
type CatalogListing struct {
	CatalogID int64
	ListingID int64
	SortOrder int
	Notes     string
	CreatedAt time.Time
}

// NewCatalog は作成者を所有者とする新しいカタログを作成します
func NewCatalog(brokerID int64, attrs CatalogAttributes) *Catalog {
	now := time.Now()
	if attrs.Tags == nil {
		attrs.Tags = []string{}
	}
	return &Catalog{
		CatalogAttributes: attrs,
		BrokerID:          brokerID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// OwnerID は所有者IDを返します
func (c *Catalog) OwnerID() int64 {
	return c.BrokerID
}

// IsPublic は公開カタログかを判定します
func (c *Catalog) IsPublic() bool {
	return c.CatalogAttributes.IsPublic
}

// Update は属性を置き換えます
func (c *Catalog) Update(attrs CatalogAttributes) {
	if attrs.Tags == nil {
		attrs.Tags = []string{}
	}
	c.CatalogAttributes = attrs
	c.UpdatedAt = time.Now()
}

// ListingIDs は並び順どおりの物件ID一覧を返します
func (c *Catalog) ListingIDs() []int64 {
	ids := make([]int64, len(c.Listings))
	for i, l := range c.Listings {
		ids[i] = l.ListingID
	}
	return ids
}

// BuildCatalogListings は物件ID列から並び順付きの参照を作成します
// 重複したIDは最初の出現のみ残します
func BuildCatalogListings(catalogID int64, listingIDs []int64, notes map[int64]string) []CatalogListing {
	now := time.Now()
	return lo.Map(lo.Uniq(listingIDs), func(id int64, i int) CatalogListing {
		return CatalogListing{
			CatalogID: catalogID,
			ListingID: id,
			SortOrder: i,
			Notes:     notes[id],
			CreatedAt: now,
		}
	})
}

var _ authz.Visible = (*Catalog)(nil)
