package server

import "github.com/rezonia/einvoice-generator/internal/model"

// ValidateRequest is the body for POST /api/v1/validate
type ValidateRequest struct {
	Context         model.InvoiceContext `json:"context"`
	Format          model.Format         `json:"format,omitempty"`
	ProviderCountry model.CountryCode    `json:"provider_country"`
	ClientCountry   model.CountryCode    `json:"client_country"`
}

// GenerateRequest is the body for POST /api/v1/generate
type GenerateRequest struct {
	Context         model.InvoiceContext `json:"context"`
	Format          model.Format         `json:"format,omitempty"`
	ProviderCountry model.CountryCode    `json:"provider_country"`
	ClientCountry   model.CountryCode    `json:"client_country"`
	SkipValidation  bool                 `json:"skip_validation,omitempty"`
	Persist         bool                 `json:"persist,omitempty"`
}

// CountryFormatsResponse lists the formats configured for a country
type CountryFormatsResponse struct {
	Country     model.CountryCode  `json:"country"`
	CountryName string             `json:"country_name"`
	Formats     []model.FormatInfo `json:"formats"`
}

// TransactionFormatsResponse answers a provider/client format lookup
type TransactionFormatsResponse struct {
	CanGenerate bool               `json:"can_generate"`
	Formats     []model.FormatInfo `json:"formats"`
}

// ValidationResponse is the body for a validation result
type ValidationResponse struct {
	Format   model.Format `json:"format"`
	Valid    bool         `json:"valid"`
	Errors   []string     `json:"errors,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
}

// GenerateResponse carries a generated e-invoice document
type GenerateResponse struct {
	ID         string                  `json:"id"`
	Format     model.Format            `json:"format"`
	Filename   string                  `json:"filename"`
	Path       string                  `json:"path,omitempty"`
	Data       []byte                  `json:"data"`
	Validation *model.ValidationResult `json:"validation,omitempty"`
}

// ErrorResponse is the body for error replies
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details string   `json:"details,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}
