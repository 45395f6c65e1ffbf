package response

import (
	"time"

	"github.com/samber/lo"

	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
)

// ListingResponse は物件情報レスポンス
type ListingResponse struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	DescriptionRU string         `json:"description_ru"`
	DescriptionEN string         `json:"description_en"`
	Price         float64        `json:"price"`
	Currency      string         `json:"currency"`
	Status        string         `json:"status"`
	Availability  bool           `json:"availability"`
	Country       string         `json:"country"`
	City          string         `json:"city"`
	District      string         `json:"district"`
	Address       string         `json:"address"`
	ComplexName   string         `json:"complex_name"`
	Latitude      *float64       `json:"latitude"`
	Longitude     *float64       `json:"longitude"`
	Area          *float64       `json:"area"`
	LivingArea    *float64       `json:"living_area"`
	LandArea      *float64       `json:"land_area"`
	Rooms         *int           `json:"rooms"`
	Bedrooms      *int           `json:"bedrooms"`
	Bathrooms     *int           `json:"bathrooms"`
	Floors        *int           `json:"floors"`
	TotalFloors   *int           `json:"total_floors"`
	YearBuilt     *int           `json:"year_built"`
	Condition     *string        `json:"condition"`
	Features      map[string]any `json:"features"`
	Photos        []string       `json:"photos"`
	Videos        []string       `json:"videos"`
	Broker        int64          `json:"broker"`
	AssignedBy    *int64         `json:"assigned_by"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ToListingResponse はエンティティをレスポンスに変換します
func ToListingResponse(l *entity.Listing) *ListingResponse {
	if l == nil {
		return nil
	}
	var condition *string
	if l.Condition != nil {
		s := l.Condition.String()
		condition = &s
	}
	return &ListingResponse{
		ID:            l.ID,
		Name:          l.Name,
		DescriptionRU: l.DescriptionRU,
		DescriptionEN: l.DescriptionEN,
		Price:         l.Price,
		Currency:      l.Currency.String(),
		Status:        l.Status.String(),
		Availability:  l.Availability,
		Country:       l.Country,
		City:          l.City,
		District:      l.District,
		Address:       l.Address,
		ComplexName:   l.ComplexName,
		Latitude:      l.Latitude,
		Longitude:     l.Longitude,
		Area:          l.Area,
		LivingArea:    l.LivingArea,
		LandArea:      l.LandArea,
		Rooms:         l.Rooms,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		Floors:        l.Floors,
		TotalFloors:   l.TotalFloors,
		YearBuilt:     l.YearBuilt,
		Condition:     condition,
		Features:      l.Features,
		Photos:        lo.CoalesceSliceOrEmpty(l.Photos),
		Videos:        lo.CoalesceSliceOrEmpty(l.Videos),
		Broker:        l.BrokerID,
		AssignedBy:    l.AssignedByID,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

// ToListingListResponse は物件一覧をレスポンスに変換します
func ToListingListResponse(items []*entity.Listing) []*ListingResponse {
	return lo.Map(items, func(l *entity.Listing, _ int) *ListingResponse {
		return ToListingResponse(l)
	})
}
