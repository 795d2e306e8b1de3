package render

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/speedata/einvoice"

	"github.com/rezonia/einvoice-generator/internal/model"
)

// LibraryRenderer renders through the external standards-compliant
// e-invoice library. It is best-effort: any failure, including a panic
// inside the library, surfaces as an error so the caller can fall back.
type LibraryRenderer struct{}

// NewLibraryRenderer creates the external-library adapter
func NewLibraryRenderer() *LibraryRenderer {
	return &LibraryRenderer{}
}

// Name identifies the renderer
func (r *LibraryRenderer) Name() string {
	return "einvoice-library"
}

// Render translates EInvoiceData into the library's invoice shape and
// writes the EN 16931 XML.
func (r *LibraryRenderer) Render(format model.Format, data *model.EInvoiceData) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = model.NewRenderError(r.Name(), fmt.Sprintf("library panicked: %v", rec), nil)
		}
	}()

	issueDate, err := time.Parse("2006-01-02", data.IssueDate)
	if err != nil {
		return nil, model.NewRenderError(r.Name(), "invalid issue date "+data.IssueDate, err)
	}

	inv := einvoice.Invoice{
		InvoiceNumber:       data.InvoiceNumber,
		InvoiceTypeCode:     380,
		GuidelineSpecifiedDocumentContextParameter: einvoice.SpecEN16931,
		InvoiceDate:         issueDate,
		InvoiceCurrencyCode: data.CurrencyCode,
		TaxCurrencyCode:     data.CurrencyCode,
		Seller: einvoice.Party{
			Name:              data.SellerName,
			VATaxRegistration: data.SellerVATID,
			PostalAddress: &einvoice.PostalAddress{
				Line1:        data.SellerAddress.Street,
				City:         data.SellerAddress.City,
				PostcodeCode: data.SellerAddress.PostalCode,
				CountryID:    data.SellerCountry,
			},
			DefinedTradeContact: []einvoice.DefinedTradeContact{{
				EMail: data.SellerElectronicAddress,
			}},
		},
		Buyer: einvoice.Party{
			Name:              data.BuyerName,
			VATaxRegistration: data.BuyerVATID,
			PostalAddress: &einvoice.PostalAddress{
				Line1:        data.BuyerAddress.Street,
				City:         data.BuyerAddress.City,
				PostcodeCode: data.BuyerAddress.PostalCode,
				CountryID:    data.BuyerCountry,
			},
		},
	}

	if data.BuyerElectronicAddress != "" {
		inv.Buyer.DefinedTradeContact = []einvoice.DefinedTradeContact{{
			EMail: data.BuyerElectronicAddress,
		}}
	}

	if data.PaymentAccountIBAN != "" {
		typeCode, convErr := strconv.Atoi(data.PaymentMeansCode)
		if convErr != nil {
			typeCode = 58
		}
		inv.PaymentMeans = []einvoice.PaymentMeans{{
			TypeCode:                               typeCode,
			PayeePartyCreditorFinancialAccountIBAN: data.PaymentAccountIBAN,
			PayeePartyCreditorFinancialAccountName: data.PaymentAccountName,
			PayeeSpecifiedCreditorFinancialInstitutionBIC: data.PaymentServiceBIC,
		}}
	}

	if data.DueDate != "" {
		dueDate, dueErr := time.Parse("2006-01-02", data.DueDate)
		if dueErr != nil {
			return nil, model.NewRenderError(r.Name(), "invalid due date "+data.DueDate, dueErr)
		}
		inv.SpecifiedTradePaymentTerms = []einvoice.SpecifiedTradePaymentTerms{{
			DueDate: dueDate,
		}}
	}

	for _, line := range data.Lines {
		inv.InvoiceLines = append(inv.InvoiceLines, einvoice.InvoiceLine{
			LineID:                   line.ID,
			ItemName:                 line.Name,
			BilledQuantity:           line.Quantity,
			BilledQuantityUnit:       line.UnitCode,
			NetPrice:                 line.NetPrice,
			Total:                    line.LineTotal,
			TaxRateApplicablePercent: line.VATRate,
			TaxTypeCode:              "VAT",
			TaxCategoryCode:          line.VATCategory,
		})
	}

	inv.UpdateApplicableTradeTax(nil)
	inv.UpdateTotals()

	var buf bytes.Buffer
	if writeErr := inv.Write(&buf); writeErr != nil {
		return nil, model.NewRenderError(r.Name(), "library write failed", writeErr)
	}

	payload := buf.Bytes()
	if len(payload) == 0 {
		return nil, model.NewRenderError(r.Name(), "library produced an empty document", nil)
	}
	return payload, nil
}
