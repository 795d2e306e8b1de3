package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rezonia/einvoice-generator/internal/decimal"
	"github.com/rezonia/einvoice-generator/internal/model"
	"github.com/rezonia/einvoice-generator/internal/server"
)

func newTestServer() *server.Server {
	config := &server.Config{
		Address: ":8080",
		Debug:   true,
	}
	return server.NewServer(config, zap.NewNop())
}

func testContext() model.InvoiceContext {
	return model.InvoiceContext{
		Provider: model.Provider{
			Name: "Muster Consulting",
			Address: model.Address{
				Street:     "Musterstraße 1",
				PostalCode: "10115",
				City:       "Berlin",
			},
			Email: "billing@muster-consulting.de",
			VATID: "DE123456789",
			Bank: model.BankDetails{
				AccountHolder: "Muster Consulting",
				IBAN:          "DE89 3704 0044 0532 0130 00",
				BIC:           "COBADEFFXXX",
			},
		},
		Client: model.Client{
			Name: "Beispiel GmbH",
			Address: model.Address{
				Street:     "Beispielweg 2",
				PostalCode: "80331",
				City:       "München",
			},
			Email: "Einkauf <purchasing@beispiel.de>",
			EInvoice: model.EInvoiceSettings{
				LeitwegID: "04011000-1234512345-06",
			},
		},
		Lines: []model.LineItem{
			{
				Description: "Consulting services",
				Quantity:    decimal.FromInt(10),
				Rate:        decimal.FromInt(120),
				BillingType: model.BillingHourly,
				Total:       decimal.FromInt(1200),
			},
		},
		Subtotal:      decimal.FromInt(1200),
		TaxAmount:     decimal.FromFloat(228),
		TaxRate:       decimal.FromFloat(0.19),
		Currency:      "EUR",
		InvoiceNumber: "2024-001",
		InvoiceDate:   "15.12.2024",
		DueDate:       "29.12.2024",
		Language:      "de",
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
}

func TestFormatsEndpoint_Country(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/formats?country=DE", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.CountryFormatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, model.CountryCode("DE"), response.Country)
	assert.Equal(t, "Germany", response.CountryName)
	require.Len(t, response.Formats, 2)
	assert.Equal(t, model.FormatXRechnung, response.Formats[0].Format)
}

func TestFormatsEndpoint_AllCountries(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/formats", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []server.CountryFormatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.NotEmpty(t, response)
	for _, entry := range response {
		assert.NotEmpty(t, entry.Formats, "country %s has no formats", entry.Country)
	}
}

func TestFormatsEndpoint_UnsupportedCountry(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/formats?country=US", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTransactionFormatsEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/formats/transaction?provider=DE&client=DE", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.TransactionFormatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.True(t, response.CanGenerate)
	assert.NotEmpty(t, response.Formats)
}

func TestTransactionFormatsEndpoint_CrossBorder(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/formats/transaction?provider=DE&client=FR", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.TransactionFormatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.True(t, response.CanGenerate)
	assert.Empty(t, response.Formats)
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer()

	body, err := json.Marshal(server.ValidateRequest{
		Context:         testContext(),
		ProviderCountry: "DE",
		ClientCountry:   "DE",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.ValidationResponse
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, model.FormatXRechnung, response.Format)
	assert.True(t, response.Valid)
	assert.Empty(t, response.Errors)
}

func TestValidateEndpoint_MissingFields(t *testing.T) {
	srv := newTestServer()

	ctx := testContext()
	ctx.Provider.Name = ""
	ctx.InvoiceNumber = ""

	body, err := json.Marshal(server.ValidateRequest{
		Context:         ctx,
		ProviderCountry: "DE",
		ClientCountry:   "DE",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewReader(body))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.ValidationResponse
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.False(t, response.Valid)
	assert.Contains(t, response.Errors, "Provider name is required")
	assert.Contains(t, response.Errors, "Invoice number is required (BT-1)")
}

func TestValidateEndpoint_NoFormatForCountry(t *testing.T) {
	srv := newTestServer()

	body, err := json.Marshal(server.ValidateRequest{
		Context:         testContext(),
		ProviderCountry: "DE",
		ClientCountry:   "US",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewReader(body))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer()

	body, err := json.Marshal(server.GenerateRequest{
		Context:         testContext(),
		ProviderCountry: "DE",
		ClientCountry:   "DE",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.GenerateResponse
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.NotEmpty(t, response.ID)
	assert.Equal(t, model.FormatXRechnung, response.Format)
	assert.Equal(t, "invoice_2024-001_December_2024_xrechnung.xml", response.Filename)
	assert.NotEmpty(t, response.Data)
	require.NotNil(t, response.Validation)
	assert.True(t, response.Validation.Valid)
}

func TestGenerateEndpoint_ValidationFailure(t *testing.T) {
	srv := newTestServer()

	ctx := testContext()
	ctx.Lines = nil

	body, err := json.Marshal(server.GenerateRequest{
		Context:         ctx,
		ProviderCountry: "DE",
		ClientCountry:   "DE",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewReader(body))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response server.ErrorResponse
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Contains(t, response.Errors, "Invoice must have at least one line item")
}

func TestGenerateEndpoint_InvalidBody(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func BenchmarkGenerate(b *testing.B) {
	srv := newTestServer()

	body, _ := json.Marshal(server.GenerateRequest{
		Context:         testContext(),
		ProviderCountry: "DE",
		ClientCountry:   "DE",
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewReader(body))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
	}
}

func BenchmarkHealth(b *testing.B) {
	srv := newTestServer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
	}
}
