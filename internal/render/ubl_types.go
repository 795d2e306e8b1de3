package render

import "encoding/xml"

// UBL 2.1 invoice document structure, cbc/cac prefixed
type ublInvoice struct {
	XMLName              xml.Name          `xml:"Invoice"`
	Xmlns                string            `xml:"xmlns,attr"`
	Cac                  string            `xml:"xmlns:cac,attr"`
	Cbc                  string            `xml:"xmlns:cbc,attr"`
	CustomizationID      string            `xml:"cbc:CustomizationID"`
	ProfileID            string            `xml:"cbc:ProfileID,omitempty"`
	ID                   string            `xml:"cbc:ID"`
	IssueDate            string            `xml:"cbc:IssueDate"`
	DueDate              string            `xml:"cbc:DueDate,omitempty"`
	InvoiceTypeCode      string            `xml:"cbc:InvoiceTypeCode"`
	DocumentCurrencyCode string            `xml:"cbc:DocumentCurrencyCode"`
	BuyerReference       string            `xml:"cbc:BuyerReference,omitempty"`
	Supplier             ublSupplierParty  `xml:"cac:AccountingSupplierParty"`
	Customer             ublCustomerParty  `xml:"cac:AccountingCustomerParty"`
	PaymentMeans         *ublPaymentMeans  `xml:"cac:PaymentMeans,omitempty"`
	TaxTotal             ublTaxTotal       `xml:"cac:TaxTotal"`
	LegalMonetaryTotal   ublMonetaryTotal  `xml:"cac:LegalMonetaryTotal"`
	InvoiceLines         []ublInvoiceLine  `xml:"cac:InvoiceLine"`
}

type ublSupplierParty struct {
	Party ublParty `xml:"cac:Party"`
}

type ublCustomerParty struct {
	Party ublParty `xml:"cac:Party"`
}

type ublParty struct {
	PartyName      *ublPartyName      `xml:"cac:PartyName,omitempty"`
	PostalAddress  ublPostalAddress   `xml:"cac:PostalAddress"`
	PartyTaxScheme *ublPartyTaxScheme `xml:"cac:PartyTaxScheme,omitempty"`
	LegalEntity    ublLegalEntity     `xml:"cac:PartyLegalEntity"`
	Contact        *ublContact        `xml:"cac:Contact,omitempty"`
}

type ublPartyName struct {
	Name string `xml:"cbc:Name"`
}

type ublPostalAddress struct {
	StreetName string     `xml:"cbc:StreetName,omitempty"`
	CityName   string     `xml:"cbc:CityName,omitempty"`
	PostalZone string     `xml:"cbc:PostalZone,omitempty"`
	Country    ublCountry `xml:"cac:Country"`
}

type ublCountry struct {
	IdentificationCode string `xml:"cbc:IdentificationCode"`
}

type ublPartyTaxScheme struct {
	CompanyID string       `xml:"cbc:CompanyID"`
	TaxScheme ublTaxScheme `xml:"cac:TaxScheme"`
}

type ublTaxScheme struct {
	ID string `xml:"cbc:ID"`
}

type ublLegalEntity struct {
	RegistrationName string `xml:"cbc:RegistrationName"`
}

type ublContact struct {
	Telephone      string `xml:"cbc:Telephone,omitempty"`
	ElectronicMail string `xml:"cbc:ElectronicMail,omitempty"`
}

type ublPaymentMeans struct {
	PaymentMeansCode      string              `xml:"cbc:PaymentMeansCode"`
	PaymentID             string              `xml:"cbc:PaymentID,omitempty"`
	PayeeFinancialAccount ublFinancialAccount `xml:"cac:PayeeFinancialAccount"`
}

type ublFinancialAccount struct {
	ID     string     `xml:"cbc:ID"`
	Name   string     `xml:"cbc:Name,omitempty"`
	Branch *ublBranch `xml:"cac:FinancialInstitutionBranch,omitempty"`
}

type ublBranch struct {
	ID string `xml:"cbc:ID"`
}

type ublTaxTotal struct {
	TaxAmount    ublAmount        `xml:"cbc:TaxAmount"`
	TaxSubtotals []ublTaxSubtotal `xml:"cac:TaxSubtotal"`
}

type ublTaxSubtotal struct {
	TaxableAmount ublAmount      `xml:"cbc:TaxableAmount"`
	TaxAmount     ublAmount      `xml:"cbc:TaxAmount"`
	TaxCategory   ublTaxCategory `xml:"cac:TaxCategory"`
}

type ublTaxCategory struct {
	ID        string       `xml:"cbc:ID"`
	Percent   string       `xml:"cbc:Percent"`
	TaxScheme ublTaxScheme `xml:"cac:TaxScheme"`
}

type ublMonetaryTotal struct {
	LineExtensionAmount ublAmount `xml:"cbc:LineExtensionAmount"`
	TaxExclusiveAmount  ublAmount `xml:"cbc:TaxExclusiveAmount"`
	TaxInclusiveAmount  ublAmount `xml:"cbc:TaxInclusiveAmount"`
	PayableAmount       ublAmount `xml:"cbc:PayableAmount"`
}

type ublInvoiceLine struct {
	ID                  string      `xml:"cbc:ID"`
	InvoicedQuantity    ublQuantity `xml:"cbc:InvoicedQuantity"`
	LineExtensionAmount ublAmount   `xml:"cbc:LineExtensionAmount"`
	Item                ublItem     `xml:"cac:Item"`
	Price               ublPrice    `xml:"cac:Price"`
}

type ublQuantity struct {
	Value    string `xml:",chardata"`
	UnitCode string `xml:"unitCode,attr"`
}

type ublAmount struct {
	Value      string `xml:",chardata"`
	CurrencyID string `xml:"currencyID,attr"`
}

type ublItem struct {
	Name                  string         `xml:"cbc:Name"`
	ClassifiedTaxCategory ublTaxCategory `xml:"cac:ClassifiedTaxCategory"`
}

type ublPrice struct {
	PriceAmount ublAmount `xml:"cbc:PriceAmount"`
}
