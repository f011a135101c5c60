package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountInputUnmarshalJSON(t *testing.T) {
	t.Run("preserves a string value verbatim", func(t *testing.T) {
		var in struct {
			Amount AmountInput `json:"amount"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"amount":"1.234,56"}`), &in))
		assert.Equal(t, "1.234,56", in.Amount.String())
	})

	t.Run("accepts a numeric value", func(t *testing.T) {
		var in struct {
			Amount AmountInput `json:"amount"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"amount":100.5}`), &in))
		assert.Equal(t, "100.5", in.Amount.String())
	})

	t.Run("rejects other JSON types", func(t *testing.T) {
		var in struct {
			Amount AmountInput `json:"amount"`
		}
		assert.Error(t, json.Unmarshal([]byte(`{"amount":["100"]}`), &in))
	})
}

func TestParseDateRange(t *testing.T) {
	t.Run("expands the to bound to the end of the day", func(t *testing.T) {
		from, to, err := ParseDateRange("2024-03-01", "2024-03-01")
		require.NoError(t, err)
		require.NotNil(t, from)
		require.NotNil(t, to)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *from)
		assert.Equal(t, time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC), *to)
	})

	t.Run("empty strings yield nil bounds", func(t *testing.T) {
		from, to, err := ParseDateRange("", "  ")
		require.NoError(t, err)
		assert.Nil(t, from)
		assert.Nil(t, to)
	})

	t.Run("one-sided ranges work", func(t *testing.T) {
		from, to, err := ParseDateRange("2024-01-15", "")
		require.NoError(t, err)
		require.NotNil(t, from)
		assert.Nil(t, to)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		_, _, err := ParseDateRange("15.01.2024", "")
		assert.Error(t, err)

		_, _, err = ParseDateRange("", "not-a-date")
		assert.Error(t, err)
	})
}
