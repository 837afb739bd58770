package models

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Material    string  `json:"material"`
	Gemstones   string  `json:"gemstones"`
	Style       string  `json:"style"`
	Occasion    string  `json:"occasion"`
}

// ProductInput is a validated product without an id, ready for storage.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Material    string  `json:"material"`
	Gemstones   string  `json:"gemstones"`
	Style       string  `json:"style"`
	Occasion    string  `json:"occasion"`
}

// ProductPatch carries the fields of a partial update. Nil fields are
// left untouched by the store.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	Category    *string
	Material    *string
	Gemstones   *string
	Style       *string
	Occasion    *string
}

func (in ProductInput) Patch() ProductPatch {
	return ProductPatch{
		Name:        &in.Name,
		Description: &in.Description,
		Price:       &in.Price,
		ImageURL:    &in.ImageURL,
		Category:    &in.Category,
		Material:    &in.Material,
		Gemstones:   &in.Gemstones,
		Style:       &in.Style,
		Occasion:    &in.Occasion,
	}
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

type CategoryPatch struct {
	Name        *string
	ImageURL    *string
	Description *string
}

func (in CategoryInput) Patch() CategoryPatch {
	return CategoryPatch{
		Name:        &in.Name,
		ImageURL:    &in.ImageURL,
		Description: &in.Description,
	}
}

// DescriptionInput holds the jewelry attributes sent to the description
// generator.
type DescriptionInput struct {
	Name      string `json:"name"`
	Material  string `json:"material"`
	Gemstones string `json:"gemstones"`
	Style     string `json:"style"`
	Occasion  string `json:"occasion"`
}
