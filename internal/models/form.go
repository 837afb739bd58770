package models

// Every mutating form action answers with the same shape: an optional
// human message, per-field error lists ("_form" for form-level ones) and
// the submitted values for repopulation. Absence of Errors signals
// success.

type ProductFormResult struct {
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Product *Product            `json:"product,omitempty"`
}

type CategoryFormResult struct {
	Message  string              `json:"message,omitempty"`
	Errors   map[string][]string `json:"errors,omitempty"`
	Category *Category           `json:"category,omitempty"`
}

type AuthFormResult struct {
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	User    *AuthUser           `json:"user,omitempty"`
	Token   string              `json:"token,omitempty"`
}

type DescriptionFormResult struct {
	Description string              `json:"description,omitempty"`
	Message     string              `json:"message,omitempty"`
	Errors      map[string][]string `json:"errors,omitempty"`
	Input       *DescriptionInput   `json:"input,omitempty"`
}

type DeleteResult struct {
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}
