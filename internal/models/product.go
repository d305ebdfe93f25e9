package models

type Category string

const (
	CategoryAll         Category = "All"
	CategoryElectronics Category = "Electronics"
	CategoryFashion     Category = "Fashion"
	CategoryHome        Category = "Home"
	CategorySports      Category = "Sports"
)

// Categories is the fixed category set, in display order.
var Categories = []Category{
	CategoryElectronics,
	CategoryFashion,
	CategoryHome,
	CategorySports,
}

type Product struct {
	ID          int64    `json:"id"          yaml:"id"          validate:"required,gt=0"`
	Name        string   `json:"name"        yaml:"name"        validate:"required,max=200"`
	Price       float64  `json:"price"       yaml:"price"       validate:"gte=0"`
	Image       string   `json:"image"       yaml:"image"       validate:"omitempty,url"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category"    yaml:"category"    validate:"oneof=Electronics Fashion Home Sports"`
	Rating      float64  `json:"rating"      yaml:"rating"      validate:"gte=0,lte=5"`
	InStock     bool     `json:"in_stock"    yaml:"in_stock"`
}

type ProductListResponse struct {
	Products []Product      `json:"products"`
	Count    int            `json:"count"`
	Criteria FilterCriteria `json:"criteria"`
}
