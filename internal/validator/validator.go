// Package validator produces structured validation reports for e-invoice
// generation. Errors block generation, warnings do not; the full list is
// always collected in one pass so a caller can show every problem at once.
package validator

import (
	"regexp"

	"github.com/rezonia/einvoice-generator/internal/model"
)

// formatRule adds format-specific errors and warnings on top of the common
// tier. New formats plug in here without touching the shared checks.
type formatRule func(ctx *model.InvoiceContext) (errors, warnings []string)

var formatRules = map[model.Format]formatRule{
	model.FormatXRechnung: xrechnungRule,
	model.FormatZUGFeRD:   zugferdRule,
	model.FormatCIUSRO:    ciusRORule,
}

// Loose structural plausibility check for a Leitweg-ID; not a checksum
// validation. Segments of digits/letters joined by hyphens.
var leitwegRe = regexp.MustCompile(`^[0-9]{2,12}-[0-9A-Za-z]{1,30}-[0-9]{2}$`)

// Validate checks an Invoice Context against the common mandatory tier and
// the target format's extra rules. Errors accumulate, never short-circuit.
func Validate(ctx *model.InvoiceContext, format model.Format, providerCountry, clientCountry model.CountryCode) *model.ValidationResult {
	errors, warnings := commonRules(ctx)

	if rule, ok := formatRules[format]; ok {
		extraErrors, extraWarnings := rule(ctx)
		errors = append(errors, extraErrors...)
		warnings = append(warnings, extraWarnings...)
	}

	return &model.ValidationResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

// HasRequiredFields is a cheap boolean gate mirroring the common mandatory
// tier, intended for UIs deciding whether to offer e-invoice generation.
// It is not a substitute for the full report.
func HasRequiredFields(ctx *model.InvoiceContext) bool {
	return ctx.Provider.Name != "" &&
		ctx.Provider.Email != "" &&
		(ctx.Provider.VATID != "" || ctx.Provider.TaxNumber != "") &&
		ctx.Client.Name != "" &&
		ctx.InvoiceNumber != "" &&
		len(ctx.Lines) > 0
}

func commonRules(ctx *model.InvoiceContext) (errors, warnings []string) {
	if ctx.Provider.Name == "" {
		errors = append(errors, "Provider name is required")
	}
	if ctx.Provider.Address.Street == "" {
		errors = append(errors, "Provider must have a street address")
	}
	if ctx.Provider.Email == "" {
		errors = append(errors, "Provider email is required (BT-34)")
	}
	if ctx.Provider.VATID == "" && ctx.Provider.TaxNumber == "" {
		errors = append(errors, "Provider must have either VAT ID or Tax Number")
	}
	if ctx.Client.Name == "" {
		errors = append(errors, "Client name is required")
	}
	if ctx.InvoiceNumber == "" {
		errors = append(errors, "Invoice number is required (BT-1)")
	}
	if ctx.InvoiceDate == "" {
		errors = append(errors, "Invoice date is required (BT-2)")
	}
	if len(ctx.Lines) == 0 {
		errors = append(errors, "Invoice must have at least one line item")
	}

	if ctx.Client.Email == "" {
		warnings = append(warnings, "Client has no email address, buyer electronic address (BT-49) will be empty")
	}
	if ctx.Provider.Bank.IBAN == "" {
		warnings = append(warnings, "Bank details are missing an IBAN, no payment means will be included")
	}

	return errors, warnings
}

// XRechnung tightens the common rules: the German public sector requires a
// VAT ID and, for B2G routing, a Leitweg-ID or buyer reference.
func xrechnungRule(ctx *model.InvoiceContext) (errors, warnings []string) {
	if ctx.Provider.VATID == "" {
		errors = append(errors, "XRechnung requires the provider VAT ID")
	}

	leitweg := ctx.Client.EInvoice.LeitwegID
	if leitweg == "" && ctx.Client.EInvoice.BuyerReference == "" {
		warnings = append(warnings, "Neither Leitweg-ID nor buyer reference is set; B2G invoices require one")
	}
	if leitweg != "" && !leitwegRe.MatchString(leitweg) {
		warnings = append(warnings, "Leitweg-ID does not look structurally valid: "+leitweg)
	}

	return errors, warnings
}

// ZUGFeRD relaxes the XRechnung VAT requirement to a warning
func zugferdRule(ctx *model.InvoiceContext) (errors, warnings []string) {
	if ctx.Provider.VATID == "" {
		warnings = append(warnings, "Provider VAT ID is recommended for ZUGFeRD")
	}
	return errors, warnings
}

// CIUS-RO requires the fiscal registration code (CUI) even when a VAT ID
// is present
func ciusRORule(ctx *model.InvoiceContext) (errors, warnings []string) {
	if ctx.Provider.TaxNumber == "" {
		errors = append(errors, "CIUS-RO requires the provider tax number (CUI)")
	}
	if ctx.Client.EInvoice.BuyerReference == "" && ctx.Client.EInvoice.LeitwegID == "" && ctx.Client.ProjectReference == "" {
		warnings = append(warnings, "No buyer reference is set")
	}
	return errors, warnings
}
