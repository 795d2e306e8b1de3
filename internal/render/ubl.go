package render

import (
	"encoding/xml"

	"github.com/shopspring/decimal"

	"github.com/rezonia/einvoice-generator/internal/model"
)

// EN 16931 customization identifiers per target format. Formats without
// an entry fall back to the plain EN 16931 identifier.
var customizationIDs = map[model.Format]string{
	model.FormatXRechnung: "urn:cen.eu:en16931:2017#compliant#urn:xeinkauf.de:kosit:xrechnung_3.0",
	model.FormatPeppolBIS: "urn:cen.eu:en16931:2017#compliant#urn:fdc:peppol.eu:2017:poacc:billing:3.0",
	model.FormatNLCIUS:    "urn:cen.eu:en16931:2017#compliant#urn:fdc:nen.nl:nlcius:v1.0",
	model.FormatCIUSRO:    "urn:cen.eu:en16931:2017#compliant#urn:efactura.mfinante.ro:CIUS-RO:1.0.1",
	model.FormatEHF:       "urn:cen.eu:en16931:2017#compliant#urn:fdc:peppol.eu:2017:poacc:billing:3.0",
}

const defaultCustomizationID = "urn:cen.eu:en16931:2017"
const peppolProfileID = "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0"

// UBLRenderer is the built-in fallback: a deterministic UBL 2.1 invoice
// assembled directly from EInvoiceData. encoding/xml escapes every text
// value, so arbitrary names and references are safe.
type UBLRenderer struct{}

// NewUBLRenderer creates the fallback renderer
func NewUBLRenderer() *UBLRenderer {
	return &UBLRenderer{}
}

// Name identifies the renderer
func (r *UBLRenderer) Name() string {
	return "ubl-fallback"
}

// Render synthesizes the UBL document. It succeeds for any well-formed
// EInvoiceData.
func (r *UBLRenderer) Render(format model.Format, data *model.EInvoiceData) ([]byte, error) {
	doc := r.build(format, data)

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, model.NewRenderError(r.Name(), "xml marshal failed", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func (r *UBLRenderer) build(format model.Format, data *model.EInvoiceData) *ublInvoice {
	customization, ok := customizationIDs[format]
	if !ok {
		customization = defaultCustomizationID
	}

	doc := &ublInvoice{
		Xmlns:                "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2",
		Cac:                  "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2",
		Cbc:                  "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2",
		CustomizationID:      customization,
		ID:                   data.InvoiceNumber,
		IssueDate:            data.IssueDate,
		DueDate:              data.DueDate,
		InvoiceTypeCode:      data.TypeCode,
		DocumentCurrencyCode: data.CurrencyCode,
		BuyerReference:       data.BuyerReference,
		Supplier: ublSupplierParty{
			Party: r.sellerParty(data),
		},
		Customer: ublCustomerParty{
			Party: r.buyerParty(data),
		},
	}

	if format == model.FormatPeppolBIS || format == model.FormatEHF {
		doc.ProfileID = peppolProfileID
	}

	if data.PaymentAccountIBAN != "" {
		doc.PaymentMeans = &ublPaymentMeans{
			PaymentMeansCode: data.PaymentMeansCode,
			PaymentID:        data.RemittanceInfo,
			PayeeFinancialAccount: ublFinancialAccount{
				ID:   data.PaymentAccountIBAN,
				Name: data.PaymentAccountName,
			},
		}
		if data.PaymentServiceBIC != "" {
			doc.PaymentMeans.PayeeFinancialAccount.Branch = &ublBranch{ID: data.PaymentServiceBIC}
		}
	}

	doc.TaxTotal = ublTaxTotal{
		TaxAmount: r.amount(data.TaxTotalAmount, data.CurrencyCode),
	}
	for _, sub := range data.VatBreakdown {
		doc.TaxTotal.TaxSubtotals = append(doc.TaxTotal.TaxSubtotals, ublTaxSubtotal{
			TaxableAmount: r.amount(sub.TaxableAmount, data.CurrencyCode),
			TaxAmount:     r.amount(sub.TaxAmount, data.CurrencyCode),
			TaxCategory: ublTaxCategory{
				ID:        sub.Category,
				Percent:   sub.Rate.StringFixed(2),
				TaxScheme: ublTaxScheme{ID: "VAT"},
			},
		})
	}

	doc.LegalMonetaryTotal = ublMonetaryTotal{
		LineExtensionAmount: r.amount(data.LineTotalAmount, data.CurrencyCode),
		TaxExclusiveAmount:  r.amount(data.TaxExclusiveAmount, data.CurrencyCode),
		TaxInclusiveAmount:  r.amount(data.TaxInclusiveAmount, data.CurrencyCode),
		PayableAmount:       r.amount(data.PayableAmount, data.CurrencyCode),
	}

	for _, line := range data.Lines {
		doc.InvoiceLines = append(doc.InvoiceLines, ublInvoiceLine{
			ID: line.ID,
			InvoicedQuantity: ublQuantity{
				Value:    line.Quantity.String(),
				UnitCode: line.UnitCode,
			},
			LineExtensionAmount: r.amount(line.LineTotal, data.CurrencyCode),
			Item: ublItem{
				Name: line.Name,
				ClassifiedTaxCategory: ublTaxCategory{
					ID:        line.VATCategory,
					Percent:   line.VATRate.StringFixed(2),
					TaxScheme: ublTaxScheme{ID: "VAT"},
				},
			},
			Price: ublPrice{
				PriceAmount: r.amount(line.NetPrice, data.CurrencyCode),
			},
		})
	}

	return doc
}

func (r *UBLRenderer) sellerParty(data *model.EInvoiceData) ublParty {
	party := ublParty{
		PartyName: &ublPartyName{Name: data.SellerName},
		PostalAddress: ublPostalAddress{
			StreetName: data.SellerAddress.Street,
			CityName:   data.SellerAddress.City,
			PostalZone: data.SellerAddress.PostalCode,
			Country:    ublCountry{IdentificationCode: data.SellerCountry},
		},
		LegalEntity: ublLegalEntity{RegistrationName: data.SellerName},
	}
	if data.SellerVATID != "" {
		party.PartyTaxScheme = &ublPartyTaxScheme{
			CompanyID: data.SellerVATID,
			TaxScheme: ublTaxScheme{ID: "VAT"},
		}
	}
	if data.SellerElectronicAddress != "" || data.SellerContactPhone != "" {
		party.Contact = &ublContact{
			Telephone:      data.SellerContactPhone,
			ElectronicMail: data.SellerElectronicAddress,
		}
	}
	return party
}

func (r *UBLRenderer) buyerParty(data *model.EInvoiceData) ublParty {
	party := ublParty{
		PartyName: &ublPartyName{Name: data.BuyerName},
		PostalAddress: ublPostalAddress{
			StreetName: data.BuyerAddress.Street,
			CityName:   data.BuyerAddress.City,
			PostalZone: data.BuyerAddress.PostalCode,
			Country:    ublCountry{IdentificationCode: data.BuyerCountry},
		},
		LegalEntity: ublLegalEntity{RegistrationName: data.BuyerName},
	}
	if data.BuyerVATID != "" {
		party.PartyTaxScheme = &ublPartyTaxScheme{
			CompanyID: data.BuyerVATID,
			TaxScheme: ublTaxScheme{ID: "VAT"},
		}
	}
	if data.BuyerElectronicAddress != "" {
		party.Contact = &ublContact{ElectronicMail: data.BuyerElectronicAddress}
	}
	return party
}

func (r *UBLRenderer) amount(v decimal.Decimal, currency string) ublAmount {
	return ublAmount{Value: v.StringFixed(2), CurrencyID: currency}
}
