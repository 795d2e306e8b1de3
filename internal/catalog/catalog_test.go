package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/einvoice-generator/internal/catalog"
	"github.com/rezonia/einvoice-generator/internal/model"
)

func TestAvailableFormats_Germany(t *testing.T) {
	formats := catalog.AvailableFormats("DE")
	require.Len(t, formats, 2)

	// Order encodes preference
	assert.Equal(t, model.FormatXRechnung, formats[0].Format)
	assert.Equal(t, model.FormatZUGFeRD, formats[1].Format)
}

func TestAvailableFormats_UnknownCountry(t *testing.T) {
	formats := catalog.AvailableFormats("XX")
	assert.Empty(t, formats)
}

func TestDefaultFormat_EveryCountryHasOne(t *testing.T) {
	for _, country := range catalog.SupportedCountries() {
		info := catalog.DefaultFormat(country, "")
		require.NotNil(t, info, "country %s should have a default format", country)

		// The default must be in the country's own list
		assert.True(t, catalog.IsFormatValidForCountry(info.Format, country),
			"default format %s not listed for %s", info.Format, country)
	}
}

func TestDefaultFormat_PreferredWins(t *testing.T) {
	info := catalog.DefaultFormat("DE", model.FormatZUGFeRD)
	require.NotNil(t, info)
	assert.Equal(t, model.FormatZUGFeRD, info.Format)
}

func TestDefaultFormat_PreferredNotInCountryList(t *testing.T) {
	// FatturaPA is not a German format, so the country default wins
	info := catalog.DefaultFormat("DE", model.FormatFatturaPA)
	require.NotNil(t, info)
	assert.Equal(t, model.FormatXRechnung, info.Format)
}

func TestDefaultFormat_UnknownCountry(t *testing.T) {
	assert.Nil(t, catalog.DefaultFormat("XX", ""))
}

func TestFormatsForTransaction(t *testing.T) {
	tests := []struct {
		name     string
		provider model.CountryCode
		client   model.CountryCode
		want     int
	}{
		{name: "same country", provider: "DE", client: "DE", want: 2},
		{name: "cross border", provider: "DE", client: "RO", want: 0},
		{name: "provider missing", provider: "", client: "DE", want: 0},
		{name: "client missing", provider: "DE", client: "", want: 0},
		{name: "both missing", provider: "", client: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.FormatsForTransaction(tt.provider, tt.client)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestCanGenerateEInvoice(t *testing.T) {
	// Looser gate than FormatsForTransaction: no equality requirement
	assert.True(t, catalog.CanGenerateEInvoice("DE", "RO"))
	assert.True(t, catalog.CanGenerateEInvoice("DE", "DE"))
	assert.False(t, catalog.CanGenerateEInvoice("DE", ""))
	assert.False(t, catalog.CanGenerateEInvoice("", "RO"))
}

func TestGetFormatInfo_CoversEveryListedFormat(t *testing.T) {
	for _, country := range catalog.SupportedCountries() {
		for _, info := range catalog.AvailableFormats(country) {
			got := catalog.GetFormatInfo(info.Format)
			require.NotNil(t, got, "format %s has no reverse-lookup entry", info.Format)
			assert.Equal(t, info.Format, got.Format)
			assert.NotEmpty(t, got.Description)
			assert.NotEmpty(t, got.FileExtension)
			assert.NotEmpty(t, got.MimeType)
		}
	}
}

func TestGetFormatInfo_Unknown(t *testing.T) {
	assert.Nil(t, catalog.GetFormatInfo("not-a-format"))
}

func TestCountriesForFormat(t *testing.T) {
	cc := catalog.CountriesForFormat(model.FormatXRechnung)
	require.Len(t, cc, 1)
	assert.Equal(t, model.CountryCode("DE"), cc[0])

	// PEPPOL BIS is valid across many jurisdictions
	peppol := catalog.CountriesForFormat(model.FormatPeppolBIS)
	assert.Greater(t, len(peppol), 10)

	assert.Empty(t, catalog.CountriesForFormat("not-a-format"))
}

func TestCountryForFormat(t *testing.T) {
	assert.Equal(t, model.CountryCode("IT"), catalog.CountryForFormat(model.FormatFatturaPA))
	assert.Equal(t, model.CountryCode(""), catalog.CountryForFormat("not-a-format"))
}

func TestIsFormatValidForCountry(t *testing.T) {
	assert.True(t, catalog.IsFormatValidForCountry(model.FormatZUGFeRD, "DE"))
	assert.False(t, catalog.IsFormatValidForCountry(model.FormatZUGFeRD, "RO"))
	assert.False(t, catalog.IsFormatValidForCountry(model.FormatZUGFeRD, "XX"))
}

func TestAllFormats(t *testing.T) {
	all := catalog.AllFormats()
	assert.Len(t, all, 15)
}

func TestCountryName(t *testing.T) {
	assert.Equal(t, "Germany", catalog.CountryName("DE"))
	assert.Equal(t, "Romania", catalog.CountryName("RO"))
	// Unknown codes fall back to the raw input
	assert.Equal(t, "ZZ", catalog.CountryName("ZZ"))
}
