// Package einvoicelib provides a public API for generating EN 16931 e-invoices.
//
// This package exposes the core types for mapping invoice data to business
// terms, validating it against format-specific rules, and rendering the
// structured XML document.
//
// Example usage:
//
//	gen := einvoicelib.NewGenerator()
//	result, err := gen.Generate(ctx, "DE", "DE", einvoicelib.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Filename)
package einvoicelib

import "github.com/rezonia/einvoice-generator/internal/model"

// Re-export core types for public API
type (
	InvoiceContext   = model.InvoiceContext
	Provider         = model.Provider
	Client           = model.Client
	LineItem         = model.LineItem
	Address          = model.Address
	BankDetails      = model.BankDetails
	EInvoiceSettings = model.EInvoiceSettings
	EInvoiceData     = model.EInvoiceData
	EInvoiceResult   = model.EInvoiceResult
	ValidationResult = model.ValidationResult
	Format           = model.Format
	FormatInfo       = model.FormatInfo
	CountryCode      = model.CountryCode
	BillingType      = model.BillingType
)

// Re-export format constants
const (
	FormatXRechnung   = model.FormatXRechnung
	FormatZUGFeRD     = model.FormatZUGFeRD
	FormatFacturX     = model.FormatFacturX
	FormatUBL         = model.FormatUBL
	FormatPeppolBIS   = model.FormatPeppolBIS
	FormatFatturaPA   = model.FormatFatturaPA
	FormatFacturae    = model.FormatFacturae
	FormatCIUSRO      = model.FormatCIUSRO
	FormatNLCIUS      = model.FormatNLCIUS
	FormatEHF         = model.FormatEHF
	FormatOIOUBL      = model.FormatOIOUBL
	FormatFinvoice    = model.FormatFinvoice
	FormatEbInterface = model.FormatEbInterface
	FormatISDOC       = model.FormatISDOC
	FormatKSeF        = model.FormatKSeF
)

// Re-export billing types
const (
	BillingHourly = model.BillingHourly
	BillingDaily  = model.BillingDaily
	BillingFixed  = model.BillingFixed
)

// Re-export error types
type (
	ValidationFailedError = model.ValidationFailedError
	MappingError          = model.MappingError
	ConfigError           = model.ConfigError
	RenderError           = model.RenderError
)
