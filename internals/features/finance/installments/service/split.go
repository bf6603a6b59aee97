package service

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SplitEqual membagi amount menjadi n bagian 2 desimal.
// Sisa pembagian (amount mod n) ditempel ke cicilan TERAKHIR sehingga
// total seluruh bagian sama persis dengan amount.
func SplitEqual(amount decimal.Decimal, n int) ([]decimal.Decimal, error) {
	if n < 1 {
		return nil, fmt.Errorf("jumlah cicilan minimal 1, dapat %d", n)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("nominal harus > 0, dapat %s", amount)
	}

	base := amount.Div(decimal.NewFromInt(int64(n))).RoundDown(2)
	parts := make([]decimal.Decimal, n)
	for i := 0; i < n-1; i++ {
		parts[i] = base
	}
	parts[n-1] = amount.Sub(base.Mul(decimal.NewFromInt(int64(n - 1))))
	return parts, nil
}

// ParseCustomAmounts membaca array JSON nominal per cicilan dari plan custom.
func ParseCustomAmounts(raw datatypes.JSON) ([]decimal.Decimal, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("plan custom tidak punya daftar nominal")
	}
	var strs []json.Number
	if err := json.Unmarshal(raw, &strs); err != nil {
		return nil, fmt.Errorf("format nominal custom tidak valid: %w", err)
	}
	out := make([]decimal.Decimal, 0, len(strs))
	for i, s := range strs {
		d, err := decimal.NewFromString(s.String())
		if err != nil {
			return nil, fmt.Errorf("nominal cicilan ke-%d tidak valid: %w", i+1, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// ValidateCustomAmounts memastikan nominal custom: jumlah elemen = n,
// tiap elemen > 0, dan totalnya sama PERSIS dengan amount.
func ValidateCustomAmounts(amount decimal.Decimal, n int, parts []decimal.Decimal) error {
	if len(parts) != n {
		return fmt.Errorf("jumlah nominal custom (%d) tidak sama dengan jumlah cicilan (%d)", len(parts), n)
	}
	sum := decimal.Zero
	for i, p := range parts {
		if !p.IsPositive() {
			return fmt.Errorf("nominal cicilan ke-%d harus > 0", i+1)
		}
		sum = sum.Add(p)
	}
	if !sum.Equal(amount) {
		return fmt.Errorf("total nominal custom (%s) tidak sama dengan nominal fee (%s)", sum, amount)
	}
	return nil
}
