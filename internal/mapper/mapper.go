// Package mapper converts an Invoice Context into the flat EN 16931
// semantic record consumed by the renderers.
package mapper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	edecimal "github.com/rezonia/einvoice-generator/internal/decimal"
	"github.com/rezonia/einvoice-generator/internal/model"
)

// Commercial invoice type code (UNTDID 1001)
const invoiceTypeCode = "380"

// SEPA credit transfer (UNTDID 4461)
const paymentMeansCreditTransfer = "58"

var emailAngleRe = regexp.MustCompile(`<([^<>\s]+@[^<>\s]+)>`)

// Map converts an Invoice Context plus the chosen format/country pair into
// EInvoiceData. Deterministic; the only failure mode is an unparseable
// display date, which is treated as a programming defect.
func Map(ctx *model.InvoiceContext, format model.Format, providerCountry, clientCountry model.CountryCode) (*model.EInvoiceData, error) {
	issueDate, err := FormatDateToISO(ctx.InvoiceDate, ctx.Language)
	if err != nil {
		return nil, err
	}

	data := &model.EInvoiceData{
		InvoiceNumber: ctx.InvoiceNumber,
		IssueDate:     issueDate,
		TypeCode:      invoiceTypeCode,
		CurrencyCode:  ctx.Currency,

		SellerName:              ctx.Provider.Name,
		SellerVATID:             ctx.Provider.VATID,
		SellerTaxNumber:         ctx.Provider.TaxNumber,
		SellerElectronicAddress: ctx.Provider.Email,
		SellerAddress:           ctx.Provider.Address,
		SellerCountry:           string(providerCountry),
		SellerContactPhone:      ctx.Provider.Phone,

		BuyerName:              ctx.Client.Name,
		BuyerVATID:             ctx.Client.VATID,
		BuyerElectronicAddress: ExtractEmailAddress(ctx.Client.Email),
		BuyerAddress:           ctx.Client.Address,
		BuyerCountry:           string(clientCountry),

		BuyerReference: resolveBuyerReference(&ctx.Client),
	}

	if ctx.DueDate != "" {
		dueDate, err := FormatDateToISO(ctx.DueDate, ctx.Language)
		if err != nil {
			return nil, err
		}
		data.DueDate = dueDate
	}

	if iban := NormalizeIBAN(ctx.Provider.Bank.IBAN); iban != "" {
		data.PaymentMeansCode = paymentMeansCreditTransfer
		data.PaymentAccountIBAN = iban
		data.PaymentAccountName = ctx.Provider.Bank.AccountHolder
		data.PaymentServiceBIC = ctx.Provider.Bank.BIC
		data.RemittanceInfo = ctx.InvoiceNumber
	}

	category := VATCategoryCode(ctx.TaxRate)
	ratePercent := edecimal.RatePercent(ctx.TaxRate)

	for i, item := range ctx.Lines {
		data.Lines = append(data.Lines, model.LineData{
			ID:          strconv.Itoa(i + 1),
			Quantity:    item.Quantity,
			UnitCode:    UnitCode(item.BillingType),
			LineTotal:   item.Total,
			NetPrice:    item.Rate,
			VATCategory: category,
			VATRate:     ratePercent,
			Name:        item.Description,
		})
	}

	// One breakdown entry per distinct rate. Contexts carry a single
	// overall tax rate, so this always yields exactly one entry today,
	// but the grouping keeps mixed-rate invoices correct.
	data.VatBreakdown = buildVatBreakdown(data.Lines)

	lineTotal := edecimal.Zero
	for _, line := range data.Lines {
		lineTotal = lineTotal.Add(line.LineTotal)
	}
	taxTotal := edecimal.Zero
	for _, sub := range data.VatBreakdown {
		taxTotal = taxTotal.Add(sub.TaxAmount)
	}

	data.LineTotalAmount = lineTotal
	data.TaxExclusiveAmount = lineTotal
	data.TaxTotalAmount = taxTotal
	data.TaxInclusiveAmount = lineTotal.Add(taxTotal)
	data.PayableAmount = data.TaxInclusiveAmount

	return data, nil
}

func buildVatBreakdown(lines []model.LineData) []model.VatSubtotal {
	var order []string
	groups := make(map[string]*model.VatSubtotal)

	for _, line := range lines {
		key := line.VATCategory + "/" + line.VATRate.String()
		sub, ok := groups[key]
		if !ok {
			sub = &model.VatSubtotal{
				Category: line.VATCategory,
				Rate:     line.VATRate,
			}
			groups[key] = sub
			order = append(order, key)
		}
		sub.TaxableAmount = sub.TaxableAmount.Add(line.LineTotal)
	}

	result := make([]model.VatSubtotal, 0, len(order))
	for _, key := range order {
		sub := groups[key]
		rateFraction := sub.Rate.Div(decimal.NewFromInt(100))
		sub.TaxAmount = edecimal.VATAmount(sub.TaxableAmount, rateFraction)
		result = append(result, *sub)
	}
	return result
}

// UnitCode maps a billing type to its UNECE Recommendation 20 unit code
func UnitCode(billingType model.BillingType) string {
	switch billingType {
	case model.BillingHourly:
		return "HUR"
	case model.BillingDaily:
		return "DAY"
	default:
		// fixed-price positions count as "one unit" (C62)
		return "C62"
	}
}

// VATCategoryCode derives the EN 16931 VAT category from a fractional rate:
// standard (S) above zero, exempt (E) at zero. Negative rates do not occur
// in normal operation and map to out-of-scope (O).
func VATCategoryCode(rate decimal.Decimal) string {
	switch {
	case rate.GreaterThan(decimal.Zero):
		return "S"
	case rate.IsZero():
		return "E"
	default:
		return "O"
	}
}

// ExtractEmailAddress pulls the bare address out of a stored email that may
// carry a display name ("Jane Doe <jane@example.com>").
func ExtractEmailAddress(stored string) string {
	stored = strings.TrimSpace(stored)
	if m := emailAngleRe.FindStringSubmatch(stored); m != nil {
		return m[1]
	}
	if strings.Contains(stored, "@") {
		return stored
	}
	return ""
}

// NormalizeIBAN strips all whitespace; payment-means fields require
// the unspaced form.
func NormalizeIBAN(iban string) string {
	return strings.Join(strings.Fields(iban), "")
}

func resolveBuyerReference(client *model.Client) string {
	if client.EInvoice.LeitwegID != "" {
		return client.EInvoice.LeitwegID
	}
	if client.EInvoice.BuyerReference != "" {
		return client.EInvoice.BuyerReference
	}
	return client.ProjectReference
}
