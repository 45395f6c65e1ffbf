package handler

import (
	"github.com/mrewrin/LeadTransfer/internal/interface/dto/response"
	"github.com/mrewrin/LeadTransfer/internal/interface/middleware"
	"github.com/mrewrin/LeadTransfer/internal/interface/presenter"
)

// swagger:model を使って presenter.Response の interface{} を具体型に置き換える

// ---- Listings ----

// SwaggerListingResponse は ListingResponse のラッパー
type SwaggerListingResponse struct {
	Data response.ListingResponse `json:"data"`
	Meta interface{}              `json:"meta"`
}

// SwaggerListingListResponse は物件一覧のラッパー
type SwaggerListingListResponse struct {
	Data []response.ListingResponse `json:"data"`
	Meta presenter.ListMeta         `json:"meta"`
}

// ---- Catalogs ----

// SwaggerCatalogResponse は CatalogResponse のラッパー
type SwaggerCatalogResponse struct {
	Data response.CatalogResponse `json:"data"`
	Meta interface{}              `json:"meta"`
}

// SwaggerCatalogListResponse はカタログ一覧のラッパー
type SwaggerCatalogListResponse struct {
	Data []response.CatalogResponse `json:"data"`
	Meta presenter.ListMeta         `json:"meta"`
}

// ---- Common ----

// SwaggerErrorResponse はエラーレスポンス
type SwaggerErrorResponse = middleware.ErrorResponse
