package model

import (
	"github.com/shopspring/decimal"
)

// BillingType describes how a line item is billed
type BillingType string

const (
	BillingHourly BillingType = "hourly"
	BillingDaily  BillingType = "daily"
	BillingFixed  BillingType = "fixed"
)

// Address is a postal address
type Address struct {
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// BankDetails holds payment account information
type BankDetails struct {
	AccountHolder string `json:"accountHolder,omitempty"`
	IBAN          string `json:"iban,omitempty"`
	BIC           string `json:"bic,omitempty"`
	BankName      string `json:"bankName,omitempty"`
}

// Provider is the invoicing party (seller)
type Provider struct {
	Name      string      `json:"name"`
	Address   Address     `json:"address"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone,omitempty"`
	VATID     string      `json:"vatId,omitempty"`
	TaxNumber string      `json:"taxNumber,omitempty"`
	Bank      BankDetails `json:"bank,omitempty"`
}

// EInvoiceSettings holds the client's e-invoicing preferences
type EInvoiceSettings struct {
	LeitwegID       string `json:"leitwegId,omitempty"`
	BuyerReference  string `json:"buyerReference,omitempty"`
	PreferredFormat Format `json:"preferredFormat,omitempty"`
}

// Client is the invoiced party (buyer)
type Client struct {
	Name             string           `json:"name"`
	Address          Address          `json:"address"`
	Email            string           `json:"email,omitempty"`
	VATID            string           `json:"vatId,omitempty"`
	ProjectReference string           `json:"projectReference,omitempty"`
	EInvoice         EInvoiceSettings `json:"eInvoice,omitempty"`
}

// LineItem is a fully resolved invoice line (quantity, rate and total
// are computed by the caller, never here)
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	BillingType BillingType     `json:"billingType"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceContext is the caller-owned input to the engine. It is read-only
// to this subsystem: one context per generation request, never mutated.
type InvoiceContext struct {
	Provider      Provider        `json:"provider"`
	Client        Client          `json:"client"`
	Lines         []LineItem      `json:"lines"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	TaxRate       decimal.Decimal `json:"taxRate"` // fraction, e.g. 0.19
	Currency      string          `json:"currency"`
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   string          `json:"invoiceDate"` // locale-formatted display string
	DueDate       string          `json:"dueDate,omitempty"`
	Language      string          `json:"language"` // "de" or "en"
	FilePrefix    string          `json:"filePrefix,omitempty"`
}
