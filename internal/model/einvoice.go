package model

import (
	"github.com/shopspring/decimal"
)

// CountryCode is a two-letter ISO 3166-1 country code
type CountryCode string

// Format identifies a supported e-invoice format
type Format string

// Supported e-invoice formats
const (
	FormatXRechnung   Format = "xrechnung"
	FormatZUGFeRD     Format = "zugferd"
	FormatFacturX     Format = "facturx"
	FormatUBL         Format = "ubl"
	FormatPeppolBIS   Format = "peppol-bis"
	FormatFatturaPA   Format = "fatturapa"
	FormatFacturae    Format = "facturae"
	FormatCIUSRO      Format = "cius-ro"
	FormatNLCIUS      Format = "nlcius"
	FormatEHF         Format = "ehf"
	FormatOIOUBL      Format = "oioubl"
	FormatFinvoice    Format = "finvoice"
	FormatEbInterface Format = "ebinterface"
	FormatISDOC       Format = "isdoc"
	FormatKSeF        Format = "ksef"
)

// FormatInfo describes one supported e-invoice format
type FormatInfo struct {
	Format        Format `json:"format"`
	Description   string `json:"description"`
	FileExtension string `json:"fileExtension"`
	MimeType      string `json:"mimeType"`
}

// EInvoiceData is the flat semantic invoice record keyed by EN 16931
// Business Terms. Built fresh per generation, discarded after rendering.
type EInvoiceData struct {
	InvoiceNumber  string `json:"invoiceNumber"`            // BT-1
	IssueDate      string `json:"issueDate"`                // BT-2, ISO 8601
	TypeCode       string `json:"typeCode"`                 // BT-3, "380" commercial invoice
	CurrencyCode   string `json:"currencyCode"`             // BT-5
	DueDate        string `json:"dueDate,omitempty"`        // BT-9, ISO 8601
	BuyerReference string `json:"buyerReference,omitempty"` // BT-10

	SellerName              string  `json:"sellerName"`                   // BT-27
	SellerVATID             string  `json:"sellerVatId,omitempty"`        // BT-31
	SellerTaxNumber         string  `json:"sellerTaxNumber,omitempty"`    // BT-32
	SellerElectronicAddress string  `json:"sellerElectronicAddress"`      // BT-34
	SellerAddress           Address `json:"sellerAddress"`                // BG-5
	SellerCountry           string  `json:"sellerCountry"`                // BT-40
	SellerContactPhone      string  `json:"sellerContactPhone,omitempty"` // BT-42

	BuyerName              string  `json:"buyerName"`                       // BT-44
	BuyerVATID             string  `json:"buyerVatId,omitempty"`            // BT-48
	BuyerElectronicAddress string  `json:"buyerElectronicAddress,omitempty"` // BT-49
	BuyerAddress           Address `json:"buyerAddress"`                    // BG-8
	BuyerCountry           string  `json:"buyerCountry"`                    // BT-55

	PaymentMeansCode   string `json:"paymentMeansCode,omitempty"`   // BT-81
	RemittanceInfo     string `json:"remittanceInfo,omitempty"`     // BT-83
	PaymentAccountIBAN string `json:"paymentAccountIban,omitempty"` // BT-84
	PaymentAccountName string `json:"paymentAccountName,omitempty"` // BT-85
	PaymentServiceBIC  string `json:"paymentServiceBic,omitempty"`  // BT-86

	LineTotalAmount    decimal.Decimal `json:"lineTotalAmount"`    // BT-106
	TaxExclusiveAmount decimal.Decimal `json:"taxExclusiveAmount"` // BT-109
	TaxTotalAmount     decimal.Decimal `json:"taxTotalAmount"`     // BT-110
	TaxInclusiveAmount decimal.Decimal `json:"taxInclusiveAmount"` // BT-112
	PayableAmount      decimal.Decimal `json:"payableAmount"`      // BT-115

	Lines        []LineData    `json:"lines"`
	VatBreakdown []VatSubtotal `json:"vatBreakdown"`
}

// LineData is one invoice line of EInvoiceData (BG-25)
type LineData struct {
	ID          string          `json:"id"`          // BT-126
	Quantity    decimal.Decimal `json:"quantity"`    // BT-129
	UnitCode    string          `json:"unitCode"`    // BT-130, UNECE Rec 20
	LineTotal   decimal.Decimal `json:"lineTotal"`   // BT-131
	NetPrice    decimal.Decimal `json:"netPrice"`    // BT-146
	VATCategory string          `json:"vatCategory"` // BT-151
	VATRate     decimal.Decimal `json:"vatRate"`     // BT-152, percent
	Name        string          `json:"name"`        // BT-153
}

// VatSubtotal is one VAT breakdown entry (BG-23), grouped by distinct rate
type VatSubtotal struct {
	TaxableAmount decimal.Decimal `json:"taxableAmount"` // BT-116
	TaxAmount     decimal.Decimal `json:"taxAmount"`     // BT-117
	Category      string          `json:"category"`      // BT-118
	Rate          decimal.Decimal `json:"rate"`          // BT-119, percent
}

// ValidationResult is the structured report of one validation pass.
// Valid is true iff Errors is empty; warnings never block generation.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// EInvoiceResult is the final engine output handed to the caller.
// The validation report is always present, even on success, so
// warnings stay visible.
type EInvoiceResult struct {
	Format     FormatInfo        `json:"format"`
	Data       []byte            `json:"data"`
	Filename   string            `json:"filename"`
	Validation *ValidationResult `json:"validation"`
}
