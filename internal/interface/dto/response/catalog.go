package response

import (
	"time"

	"github.com/samber/lo"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
)

// BrokerRef はカタログ所有者の参照です
type BrokerRef struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// CatalogResponse はカタログ情報レスポンス
type CatalogResponse struct {
	ID                 int64            `json:"id"`
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	IsPublic           bool             `json:"is_public"`
	Tags               []string         `json:"tags"`
	SEOMetaTitle       string           `json:"seo_meta_title"`
	SEOMetaDescription string           `json:"seo_meta_description"`
	SEOKeywords        string           `json:"seo_keywords"`
	CatalogObjects     []int64          `json:"catalog_objects"`
	CatalogObjectNotes map[int64]string `json:"catalog_object_notes"`
	Broker             BrokerRef        `json:"broker"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// ToCatalogResponse はエンティティをレスポンスに変換します
func ToCatalogResponse(c *entity.Catalog) *CatalogResponse {
	if c == nil {
		return nil
	}
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return &CatalogResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Description:        c.Description,
		IsPublic:           c.IsPublic(),
		Tags:               tags,
		SEOMetaTitle:       c.SEOMetaTitle,
		SEOMetaDescription: c.SEOMetaDescription,
		SEOKeywords:        c.SEOKeywords,
		CatalogObjects:     c.ListingIDs(),
		CatalogObjectNotes: listingNotes(c.Listings),
		Broker:             BrokerRef{ID: c.BrokerID, Email: c.BrokerEmail},
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func listingNotes(listings []entity.CatalogListing) map[int64]string {
	notes := make(map[int64]string)
	for _, l := range listings {
		if l.Notes != "" {
			notes[l.ListingID] = l.Notes
		}
	}
	return notes
}

// ToCatalogListResponse はカタログ一覧をレスポンスに変換します
func ToCatalogListResponse(items []*entity.Catalog) []*CatalogResponse {
	return lo.Map(items, func(c *entity.Catalog, _ int) *CatalogResponse {
		return ToCatalogResponse(c)
	})
}
