package models

type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceLow  SortKey = "price-low"
	SortByPriceHigh SortKey = "price-high"
	SortByRating    SortKey = "rating"
)

type SortOption struct {
	Value SortKey `json:"value"`
	Label string  `json:"label"`
}

var SortOptions = []SortOption{
	{Value: SortByName, Label: "Name (A-Z)"},
	{Value: SortByPriceLow, Label: "Price: Low to High"},
	{Value: SortByPriceHigh, Label: "Price: High to Low"},
	{Value: SortByRating, Label: "Highest Rated"},
}

// FilterCriteria drives the catalog pipeline. The price range is inclusive on
// both ends and is not required to be ordered.
type FilterCriteria struct {
	Search   string   `json:"search"`
	Category Category `json:"category"`
	MinPrice float64  `json:"min_price"`
	MaxPrice float64  `json:"max_price"`
	Sort     SortKey  `json:"sort"`
}

type PricePreset string

const (
	PricePresetUnder50 PricePreset = "under-50"
	PricePreset50To150 PricePreset = "50-150"
	PricePresetOver150 PricePreset = "over-150"
)

// PriceRange returns the inclusive bounds of the preset.
func (p PricePreset) PriceRange() (float64, float64, bool) {
	switch p {
	case PricePresetUnder50:
		return 0, 50, true
	case PricePreset50To150:
		return 50, 150, true
	case PricePresetOver150:
		return 150, 1000, true
	default:
		return 0, 0, false
	}
}

// for PATCH, nil fields are left untouched
type UpdateCriteriaRequest struct {
	Search   *string  `json:"search,omitempty"    validate:"omitempty,max=200,plaintext"`
	Category *string  `json:"category,omitempty"  validate:"omitempty,category"`
	MinPrice *float64 `json:"min_price,omitempty" validate:"omitempty,gte=0"`
	MaxPrice *float64 `json:"max_price,omitempty" validate:"omitempty,gte=0"`
	Sort     *string  `json:"sort,omitempty"      validate:"omitempty,max=50"`
}

type ApplyPresetRequest struct {
	Preset PricePreset `json:"preset" validate:"required,oneof=under-50 50-150 over-150"`
}
