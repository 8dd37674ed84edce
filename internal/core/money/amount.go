// Package money holds the currency amount type used in backend payloads.
package money

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Amount is a currency amount in the shop's currency (IDR, no minor units in practice).
// The backend serialises decimals either as JSON numbers or as numeric strings.
type Amount float64

// UnmarshalJSON accepts 15000, 15000.5, "15000.00" and null.
func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*a = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", s, err)
		}
		*a = Amount(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("invalid amount %s: %w", b, err)
	}
	*a = Amount(f)
	return nil
}

// Negative reports whether the amount is below zero.
func (a Amount) Negative() bool {
	return a < 0
}

// Times returns the amount multiplied by a quantity.
func (a Amount) Times(qty int) Amount {
	return a * Amount(qty)
}
