// Package catalog is the static registry of e-invoice formats per country.
//
// The table is immutable and built at package init; every query is a pure
// lookup with no failure mode beyond empty/nil results for unknown input.
package catalog

import (
	"sort"

	"github.com/biter777/countries"

	"github.com/rezonia/einvoice-generator/internal/model"
)

var formatInfos = map[model.Format]model.FormatInfo{
	model.FormatXRechnung:   {Format: model.FormatXRechnung, Description: "XRechnung (German public sector standard)", FileExtension: "xml", MimeType: "application/xml"},
	model.FormatZUGFeRD:     {Format: model.FormatZUGFeRD, Description: "ZUGFeRD hybrid (PDF with embedded XML)", FileExtension: "xml", MimeType: "application/xml"},
	model.FormatFacturX:     {Format: model.FormatFacturX, Description: "Factur-X (French/German hybrid)", FileExtension: "xml", MimeType: "application/xml"},
	model.FormatUBL:         {Format: model.FormatUBL, Description: "Universal Business Language 2.1", FileExtension: "xml", MimeType: "application/xml"},
	model.FormatPeppolBIS:   {Format: model.FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MimeType: "application/xml"},
	model.FormatFatturaPA:   {Format: model.FormatFatturaPA, Description: "FatturaPA (Italian national format)", FileExtension: "xml", MimeType: "application/xml"},
	model.FormatFacturae:    {Format: model.FormatFacturae, Description: "Facturae (Spanish national format)", FileExtension: "xml", MimeType: "application/xml"},
	model.FormatCIUSRO:      {Format: model.FormatCIUSRO, Description: "CIUS-RO (Romanian e-Factura)", FileExtension: "xml", MimeType: "application/xml"},
	model.FormatNLCIUS:      {Format: model.FormatNLCIUS, Description: "NLCIUS (Dutch CIUS on EN 16931)", FileExtension: "xml", MimeType: "application/xml"},
	model.FormatEHF:         {Format: model.FormatEHF, Description: "EHF Billing 3.0 (Norway)", FileExtension: "xml", MimeType: "application/xml"},
	model.FormatOIOUBL:      {Format: model.FormatOIOUBL, Description: "OIOUBL (Denmark)", FileExtension: "xml", MimeType: "application/xml"},
	model.FormatFinvoice:    {Format: model.FormatFinvoice, Description: "Finvoice 3.0 (Finland)", FileExtension: "xml", MimeType: "application/xml"},
	model.FormatEbInterface: {Format: model.FormatEbInterface, Description: "ebInterface (Austria)", FileExtension: "xml", MimeType: "application/xml"},
	model.FormatISDOC:       {Format: model.FormatISDOC, Description: "ISDOC (Czech Republic)", FileExtension: "isdoc", MimeType: "application/xml"},
	model.FormatKSeF:        {Format: model.FormatKSeF, Description: "KSeF FA(2) (Poland)", FileExtension: "xml", MimeType: "application/xml"},
}

// countryFormats maps each supported country to its formats in preference
// order: the first entry is the most commonly required one.
var countryFormats = map[model.CountryCode][]model.Format{
	"DE": {model.FormatXRechnung, model.FormatZUGFeRD},
	"AT": {model.FormatEbInterface, model.FormatPeppolBIS},
	"FR": {model.FormatFacturX, model.FormatUBL},
	"IT": {model.FormatFatturaPA},
	"ES": {model.FormatFacturae, model.FormatPeppolBIS},
	"NL": {model.FormatNLCIUS, model.FormatPeppolBIS},
	"BE": {model.FormatPeppolBIS, model.FormatUBL},
	"LU": {model.FormatPeppolBIS},
	"RO": {model.FormatCIUSRO},
	"PL": {model.FormatKSeF, model.FormatPeppolBIS},
	"CZ": {model.FormatISDOC, model.FormatPeppolBIS},
	"SK": {model.FormatPeppolBIS, model.FormatUBL},
	"HU": {model.FormatPeppolBIS, model.FormatUBL},
	"NO": {model.FormatEHF, model.FormatPeppolBIS},
	"SE": {model.FormatPeppolBIS},
	"DK": {model.FormatOIOUBL, model.FormatPeppolBIS},
	"FI": {model.FormatFinvoice, model.FormatPeppolBIS},
	"IE": {model.FormatPeppolBIS, model.FormatUBL},
	"PT": {model.FormatPeppolBIS, model.FormatUBL},
	"GR": {model.FormatPeppolBIS, model.FormatUBL},
	"SI": {model.FormatPeppolBIS, model.FormatUBL},
	"HR": {model.FormatPeppolBIS, model.FormatUBL},
	"EE": {model.FormatPeppolBIS, model.FormatUBL},
	"LT": {model.FormatPeppolBIS, model.FormatUBL},
}

// AvailableFormats returns the ordered format list configured for a country,
// or an empty slice for unknown countries.
func AvailableFormats(country model.CountryCode) []model.FormatInfo {
	ids, ok := countryFormats[country]
	if !ok {
		return []model.FormatInfo{}
	}
	infos := make([]model.FormatInfo, 0, len(ids))
	for _, id := range ids {
		infos = append(infos, formatInfos[id])
	}
	return infos
}

// DefaultFormat resolves the format to use for a country. A preferred format
// wins if it is in the country's list; otherwise the first configured entry.
// Returns nil if the country has no formats.
func DefaultFormat(country model.CountryCode, preferred model.Format) *model.FormatInfo {
	available := AvailableFormats(country)
	if len(available) == 0 {
		return nil
	}
	if preferred != "" {
		for _, info := range available {
			if info.Format == preferred {
				return &info
			}
		}
	}
	return &available[0]
}

// FormatsForTransaction returns the client country's formats only when both
// country codes are defined and equal. Format selection is anchored to a
// single jurisdiction even though transmission could be cross-border.
func FormatsForTransaction(providerCountry, clientCountry model.CountryCode) []model.FormatInfo {
	if providerCountry == "" || clientCountry == "" || providerCountry != clientCountry {
		return []model.FormatInfo{}
	}
	return AvailableFormats(clientCountry)
}

// CanGenerateEInvoice is a looser gate than FormatsForTransaction: it only
// requires both country codes to be defined, not equal.
func CanGenerateEInvoice(providerCountry, clientCountry model.CountryCode) bool {
	return providerCountry != "" && clientCountry != ""
}

// GetFormatInfo returns the descriptor for a format id, nil if unknown
func GetFormatInfo(format model.Format) *model.FormatInfo {
	info, ok := formatInfos[format]
	if !ok {
		return nil
	}
	return &info
}

// CountryForFormat returns the first country (alphabetically) that lists
// the format, empty for unknown formats.
func CountryForFormat(format model.Format) model.CountryCode {
	cc := CountriesForFormat(format)
	if len(cc) == 0 {
		return ""
	}
	return cc[0]
}

// CountriesForFormat returns all countries that list the format, sorted
func CountriesForFormat(format model.Format) []model.CountryCode {
	var result []model.CountryCode
	for country, ids := range countryFormats {
		for _, id := range ids {
			if id == format {
				result = append(result, country)
				break
			}
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// IsFormatValidForCountry reports whether a country's list contains the format
func IsFormatValidForCountry(format model.Format, country model.CountryCode) bool {
	for _, id := range countryFormats[country] {
		if id == format {
			return true
		}
	}
	return false
}

// SupportedCountries returns all configured countries, sorted
func SupportedCountries() []model.CountryCode {
	result := make([]model.CountryCode, 0, len(countryFormats))
	for country := range countryFormats {
		result = append(result, country)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// AllFormats returns every known format id, sorted
func AllFormats() []model.Format {
	result := make([]model.Format, 0, len(formatInfos))
	for id := range formatInfos {
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// CountryName returns the English country name for a code, falling back
// to the raw code when the code is unknown.
func CountryName(country model.CountryCode) string {
	c := countries.ByName(string(country))
	if c == countries.Unknown {
		return string(country)
	}
	return c.String()
}
