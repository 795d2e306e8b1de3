package einvoicelib

import (
	"github.com/rezonia/einvoice-generator/internal/catalog"
	"github.com/rezonia/einvoice-generator/internal/generator"
	"github.com/rezonia/einvoice-generator/internal/validator"
)

// Options controls one generation run
type Options struct {
	// Format forces a specific e-invoice format. When empty the format
	// is derived from the client country and preferences.
	Format Format

	// SkipValidation generates the document even when validation fails.
	// The validation report is still attached to the result.
	SkipValidation bool
}

// Generator produces e-invoice documents from invoice data
type Generator struct {
	gen *generator.Generator
}

// NewGenerator creates a generator with the default renderer pair
func NewGenerator() *Generator {
	return &Generator{gen: generator.New()}
}

// Generate produces an e-invoice document for the given invoice data
func (g *Generator) Generate(ctx *InvoiceContext, providerCountry, clientCountry CountryCode, opts Options) (*EInvoiceResult, error) {
	return g.gen.Generate(ctx, providerCountry, clientCountry, generator.Options{
		Format:         opts.Format,
		SkipValidation: opts.SkipValidation,
	})
}

// GenerateToFile generates an e-invoice and writes it to outputDir,
// returning the absolute path of the written file.
func (g *Generator) GenerateToFile(ctx *InvoiceContext, providerCountry, clientCountry CountryCode, outputDir string, opts Options) (string, error) {
	result, err := g.Generate(ctx, providerCountry, clientCountry, opts)
	if err != nil {
		return "", err
	}
	return g.gen.WriteResult(result, outputDir)
}

// Validate checks invoice data against the business rules of a format
func Validate(ctx *InvoiceContext, format Format, providerCountry, clientCountry CountryCode) *ValidationResult {
	return validator.Validate(ctx, format, providerCountry, clientCountry)
}

// AvailableFormats returns the e-invoice formats configured for a country
func AvailableFormats(country CountryCode) []FormatInfo {
	return catalog.AvailableFormats(country)
}

// DefaultFormat returns the format used for a country when none is forced.
// A preferred format wins when it is valid for the country.
func DefaultFormat(country CountryCode, preferred Format) *FormatInfo {
	return catalog.DefaultFormat(country, preferred)
}

// FormatsForTransaction returns the formats valid for a provider/client pair
func FormatsForTransaction(providerCountry, clientCountry CountryCode) []FormatInfo {
	return catalog.FormatsForTransaction(providerCountry, clientCountry)
}

// CanGenerateEInvoice reports whether both countries support e-invoicing
func CanGenerateEInvoice(providerCountry, clientCountry CountryCode) bool {
	return catalog.CanGenerateEInvoice(providerCountry, clientCountry)
}

// SupportedCountries returns every country with at least one format
func SupportedCountries() []CountryCode {
	return catalog.SupportedCountries()
}
