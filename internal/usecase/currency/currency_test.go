package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_SortedByCode(t *testing.T) {
	list := List()
	require.Len(t, list, 3)
	assert.Equal(t, "CNY", list[0].Code)
	assert.Equal(t, "GBP", list[1].Code)
	assert.Equal(t, "USD", list[2].Code)
}

func TestRate_SameCurrency(t *testing.T) {
	rate, err := Rate("USD", "USD")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}

func TestRate_UnknownCurrency(t *testing.T) {
	_, err := Rate("EUR", "USD")
	assert.Error(t, err)

	_, err = Rate("USD", "EUR")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	got, err := Convert(decimal.NewFromInt(100), "USD", "CNY")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("714.00")))

	got, err = Convert(decimal.RequireFromString("9.99"), "CNY", "USD")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("1.40")))
}
