package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sumOf(parts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, p := range parts {
		total = total.Add(p)
	}
	return total
}

func TestSplitEqual_EvenDivision(t *testing.T) {
	parts, err := SplitEqual(dec("3000"), 3)
	require.NoError(t, err)
	require.Len(t, parts, 3)

	for _, p := range parts {
		assert.True(t, p.Equal(dec("1000")), "got %s", p)
	}
	assert.True(t, sumOf(parts).Equal(dec("3000")))
}

func TestSplitEqual_RemainderGoesToLast(t *testing.T) {
	parts, err := SplitEqual(dec("1000"), 3)
	require.NoError(t, err)
	require.Len(t, parts, 3)

	assert.True(t, parts[0].Equal(dec("333.33")))
	assert.True(t, parts[1].Equal(dec("333.33")))
	assert.True(t, parts[2].Equal(dec("333.34")), "sisa masuk cicilan terakhir, got %s", parts[2])
	assert.True(t, sumOf(parts).Equal(dec("1000")), "total harus sama persis")
}

func TestSplitEqual_SingleInstallment(t *testing.T) {
	parts, err := SplitEqual(dec("1234.56"), 1)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.True(t, parts[0].Equal(dec("1234.56")))
}

func TestSplitEqual_SumAlwaysExact(t *testing.T) {
	amounts := []string{"100", "999.99", "7501.25", "0.03"}
	for _, a := range amounts {
		for n := 1; n <= 12; n++ {
			parts, err := SplitEqual(dec(a), n)
			require.NoError(t, err)
			assert.True(t, sumOf(parts).Equal(dec(a)), "amount=%s n=%d total=%s", a, n, sumOf(parts))
		}
	}
}

func TestSplitEqual_RejectsInvalidInput(t *testing.T) {
	_, err := SplitEqual(dec("1000"), 0)
	assert.Error(t, err)

	_, err = SplitEqual(dec("-5"), 3)
	assert.Error(t, err)
}

func TestParseAndValidateCustomAmounts(t *testing.T) {
	raw := datatypes.JSON([]byte(`[500, 300, "200.00"]`))

	parts, err := ParseCustomAmounts(raw)
	require.NoError(t, err)
	require.Len(t, parts, 3)

	assert.NoError(t, ValidateCustomAmounts(dec("1000"), 3, parts))
}

func TestValidateCustomAmounts_SumMismatch(t *testing.T) {
	parts := []decimal.Decimal{dec("500"), dec("300"), dec("100")}
	err := ValidateCustomAmounts(dec("1000"), 3, parts)
	assert.Error(t, err)
}

func TestValidateCustomAmounts_CountMismatch(t *testing.T) {
	parts := []decimal.Decimal{dec("500"), dec("500")}
	err := ValidateCustomAmounts(dec("1000"), 3, parts)
	assert.Error(t, err)
}

func TestValidateCustomAmounts_NonPositivePart(t *testing.T) {
	parts := []decimal.Decimal{dec("1000"), dec("0"), dec("0")}
	err := ValidateCustomAmounts(dec("1000"), 3, parts)
	assert.Error(t, err)
}
