package request

import (
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// ListingRequest は物件の作成・更新リクエスト
type ListingRequest struct {
	Name          string         `json:"name" validate:"required,max=255"`
	DescriptionRU string         `json:"description_ru"`
	DescriptionEN string         `json:"description_en"`
	Price         *float64       `json:"price" validate:"required,gte=0"`
	Currency      string         `json:"currency" validate:"currency"`
	Status        string         `json:"status" validate:"listingstatus"`
	Availability  *bool          `json:"availability"`
	Country       string         `json:"country" validate:"required,max=100"`
	City          string         `json:"city" validate:"required,max=100"`
	District      string         `json:"district" validate:"max=100"`
	Address       string         `json:"address" validate:"required,max=255"`
	ComplexName   string         `json:"complex_name" validate:"max=255"`
	Latitude      *float64       `json:"latitude"`
	Longitude     *float64       `json:"longitude"`
	Area          *float64       `json:"area" validate:"omitempty,gte=0"`
	LivingArea    *float64       `json:"living_area" validate:"omitempty,gte=0"`
	LandArea      *float64       `json:"land_area" validate:"omitempty,gte=0"`
	Rooms         *int           `json:"rooms" validate:"omitempty,gte=0"`
	Bedrooms      *int           `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms     *int           `json:"bathrooms" validate:"omitempty,gte=0"`
	Floors        *int           `json:"floors" validate:"omitempty,gte=0"`
	TotalFloors   *int           `json:"total_floors" validate:"omitempty,gte=0"`
	YearBuilt     *int           `json:"year_built" validate:"omitempty,gte=0"`
	Condition     string         `json:"condition" validate:"condition"`
	Features      map[string]any `json:"features"`
	Photos        []string       `json:"photos" validate:"omitempty,dive,url"`
	Videos        []string       `json:"videos" validate:"omitempty,dive,url"`
	// Broker は読み取り専用です（作成時は無視し、更新時は変更を拒否します）
	Broker *int64 `json:"broker"`
}

// ToAttributes はドメインの物件属性に変換します
func (r *ListingRequest) ToAttributes() (entity.ListingAttributes, error) {
	currency, err := valueobject.NewCurrency(r.Currency)
	if err != nil {
		return entity.ListingAttributes{}, apperror.NewFieldError("currency", "Enter a valid 3-letter currency code.")
	}
	condition, err := valueobject.NewCondition(r.Condition)
	if err != nil {
		return entity.ListingAttributes{}, apperror.NewFieldError("condition", `"`+r.Condition+`" is not a valid choice.`)
	}
	var status valueobject.ListingStatus
	if r.Status != "" {
		if status, err = valueobject.NewListingStatus(r.Status); err != nil {
			return entity.ListingAttributes{}, apperror.NewFieldError("status", `"`+r.Status+`" is not a valid choice.`)
		}
	}

	availability := true
	if r.Availability != nil {
		availability = *r.Availability
	}
	var price float64
	if r.Price != nil {
		price = *r.Price
	}

	return entity.ListingAttributes{
		Name:          r.Name,
		DescriptionRU: r.DescriptionRU,
		DescriptionEN: r.DescriptionEN,
		Price:         price,
		Currency:      currency,
		Status:        status,
		Availability:  availability,
		Country:       r.Country,
		City:          r.City,
		District:      r.District,
		Address:       r.Address,
		ComplexName:   r.ComplexName,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		Area:          r.Area,
		LivingArea:    r.LivingArea,
		LandArea:      r.LandArea,
		Rooms:         r.Rooms,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		Floors:        r.Floors,
		TotalFloors:   r.TotalFloors,
		YearBuilt:     r.YearBuilt,
		Condition:     condition,
		Features:      r.Features,
		Photos:        r.Photos,
		Videos:        r.Videos,
	}, nil
}
