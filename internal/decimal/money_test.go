package decimal_test

import (
	"testing"

	sdecimal "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/einvoice-generator/internal/decimal"
)

func TestFromFloat_Rounds(t *testing.T) {
	d := decimal.FromFloat(19.005)
	assert.Equal(t, "19.01", d.StringFixed(2))

	d = decimal.FromFloat(0.1)
	assert.Equal(t, "0.10", d.StringFixed(2))
}

func TestFromString(t *testing.T) {
	d, err := decimal.FromString("1234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", d.StringFixed(2))

	_, err = decimal.FromString("not a number")
	assert.Error(t, err)
}

func TestMustFromString_Panics(t *testing.T) {
	assert.Panics(t, func() {
		decimal.MustFromString("not a number")
	})
}

func TestRatePercent(t *testing.T) {
	rate := decimal.MustFromString("0.19")
	assert.Equal(t, "19.00", decimal.RatePercent(rate).StringFixed(2))

	rate = decimal.MustFromString("0.055")
	assert.Equal(t, "5.50", decimal.RatePercent(rate).StringFixed(2))
}

func TestVATAmount(t *testing.T) {
	net := decimal.FromInt(1200)
	rate := decimal.MustFromString("0.19")

	vat := decimal.VATAmount(net, rate)
	assert.Equal(t, "228.00", vat.StringFixed(2))
}

func TestVATAmount_RoundsHalfUp(t *testing.T) {
	// 33.33 * 19% = 6.3327, rounds to 6.33
	net := decimal.MustFromString("33.33")
	rate := decimal.MustFromString("0.19")

	vat := decimal.VATAmount(net, rate)
	assert.Equal(t, "6.33", vat.StringFixed(2))
}

func TestSum(t *testing.T) {
	values := []struct {
		in   []string
		want string
	}{
		{[]string{"1.10", "2.20", "3.30"}, "6.60"},
		{[]string{}, "0.00"},
		{[]string{"-5.00", "5.00"}, "0.00"},
	}

	for _, tt := range values {
		var ds []sdecimal.Decimal
		for _, s := range tt.in {
			ds = append(ds, decimal.MustFromString(s))
		}
		assert.Equal(t, tt.want, decimal.Sum(ds).StringFixed(2))
	}
}

func TestSignHelpers(t *testing.T) {
	assert.True(t, decimal.IsPositive(decimal.FromInt(1)))
	assert.False(t, decimal.IsPositive(decimal.Zero))
	assert.True(t, decimal.IsNonNegative(decimal.Zero))
	assert.False(t, decimal.IsNonNegative(decimal.FromInt(-1)))
}
