package validation

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"gleamgallery/internal/models"
)

// FormField is the key used for form-level errors that do not belong to
// a single input.
const FormField = "_form"

// Errors maps a field name to every rule it violated. A nil or empty map
// means the input passed.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Any() bool {
	return len(e) > 0
}

// Product checks the raw form values for a product create or update and
// returns the coerced record when every rule passes. All violated rules
// are reported, not just the first.
func Product(fields map[string]string) (models.ProductInput, Errors) {
	errs := Errors{}

	name := strings.TrimSpace(fields["name"])
	if utf8.RuneCountInString(name) < 3 {
		errs.Add("name", "Name must be at least 3 characters long.")
	}

	description := strings.TrimSpace(fields["description"])
	if utf8.RuneCountInString(description) < 10 {
		errs.Add("description", "Description must be at least 10 characters long.")
	}

	// ParseFloat accepts "NaN" and "Inf", neither of which is a price.
	price, err := strconv.ParseFloat(strings.TrimSpace(fields["price"]), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		errs.Add("price", "Price must be a number.")
	} else if price <= 0 {
		errs.Add("price", "Price must be a positive number.")
	}

	imageURL := strings.TrimSpace(fields["imageUrl"])
	if !validURL(imageURL) {
		errs.Add("imageUrl", "Image URL must be a valid URL.")
	}

	required := []struct{ field, message string }{
		{"category", "Category is required."},
		{"material", "Material is required."},
		{"gemstones", "Gemstones are required."},
		{"style", "Style is required."},
		{"occasion", "Occasion is required."},
	}
	for _, r := range required {
		if strings.TrimSpace(fields[r.field]) == "" {
			errs.Add(r.field, r.message)
		}
	}

	if errs.Any() {
		return models.ProductInput{}, errs
	}

	return models.ProductInput{
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		Category:    strings.TrimSpace(fields["category"]),
		Material:    strings.TrimSpace(fields["material"]),
		Gemstones:   strings.TrimSpace(fields["gemstones"]),
		Style:       strings.TrimSpace(fields["style"]),
		Occasion:    strings.TrimSpace(fields["occasion"]),
	}, nil
}

// Category checks the raw form values for a category create or update.
func Category(fields map[string]string) (models.CategoryInput, Errors) {
	errs := Errors{}

	name := strings.TrimSpace(fields["name"])
	if utf8.RuneCountInString(name) < 3 {
		errs.Add("name", "Name must be at least 3 characters long.")
	}

	description := strings.TrimSpace(fields["description"])
	if utf8.RuneCountInString(description) < 10 {
		errs.Add("description", "Description must be at least 10 characters long.")
	}

	imageURL := strings.TrimSpace(fields["imageUrl"])
	if !validURL(imageURL) {
		errs.Add("imageUrl", "Image URL must be a valid URL.")
	}

	if errs.Any() {
		return models.CategoryInput{}, errs
	}

	return models.CategoryInput{
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
	}, nil
}

// Credentials checks a username/password pair for registration or login.
func Credentials(username, password string) Errors {
	errs := Errors{}
	if utf8.RuneCountInString(strings.TrimSpace(username)) < 3 {
		errs.Add("username", "Username must be at least 3 characters.")
	}
	if utf8.RuneCountInString(password) < 6 {
		errs.Add("password", "Password must be at least 6 characters.")
	}
	if errs.Any() {
		return errs
	}
	return nil
}

// Description checks the attribute set sent to the description generator.
func Description(in models.DescriptionInput) Errors {
	errs := Errors{}
	required := []struct{ field, value, message string }{
		{"name", in.Name, "Name is required."},
		{"material", in.Material, "Material is required."},
		{"gemstones", in.Gemstones, "Gemstones are required."},
		{"style", in.Style, "Style is required."},
		{"occasion", in.Occasion, "Occasion is required."},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs.Add(r.field, r.message)
		}
	}
	if errs.Any() {
		return errs
	}
	return nil
}

// validURL accepts any syntactically valid absolute URL, including the
// data: URLs produced by image uploads.
func validURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != ""
}
