package request

import "github.com/mrewrin/LeadTransfer/internal/domain/entity"

// CatalogRequest はカタログの作成・更新リクエスト
type CatalogRequest struct {
	Name               string   `json:"name" validate:"required,max=255"`
	Description        string   `json:"description"`
	IsPublic           bool     `json:"is_public"`
	Tags               []string `json:"tags" validate:"omitempty,dive,max=50"`
	SEOMetaTitle       string   `json:"seo_meta_title" validate:"max=255"`
	SEOMetaDescription string   `json:"seo_meta_description"`
	SEOKeywords        string   `json:"seo_keywords" validate:"max=255"`
	// CatalogObjects は省略時 nil です（更新時は物件参照を変更しません）
	CatalogObjects *[]int64 `json:"catalog_objects"`
	// CatalogObjectNotes は catalog_objects に含まれる物件ごとのメモです
	CatalogObjectNotes map[int64]string `json:"catalog_object_notes" validate:"omitempty,dive,max=1000"`
}

// ToAttributes はドメインのカタログ属性に変換します
func (r *CatalogRequest) ToAttributes() entity.CatalogAttributes {
	return entity.CatalogAttributes{
		Name:               r.Name,
		Description:        r.Description,
		IsPublic:           r.IsPublic,
		Tags:               r.Tags,
		SEOMetaTitle:       r.SEOMetaTitle,
		SEOMetaDescription: r.SEOMetaDescription,
		SEOKeywords:        r.SEOKeywords,
	}
}

// ListingIDs は作成時に使用する物件ID一覧を返します
func (r *CatalogRequest) ListingIDs() []int64 {
	if r.CatalogObjects == nil {
		return nil
	}
	return *r.CatalogObjects
}
