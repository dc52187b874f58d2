package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice normalizes a locale-formatted price string to a numeric value.
// "R$ 45.000,00" becomes 45000.00: the currency prefix is stripped, dots are
// thousands separators and the comma is the decimal mark. Plain numeric input
// without separators passes through unchanged.
func ParsePrice(s string) (float64, error) {
	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if cleaned == "" {
		return 0, nil
	}
	if strings.ContainsAny(cleaned, ",") || strings.Count(cleaned, ".") > 1 || isThousandsOnly(cleaned) {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unparseable price %q", ErrInvalidInput, s)
	}
	return value, nil
}

// isThousandsOnly reports whether a single dot groups thousands ("25.000")
// rather than marking a decimal ("45000.5").
func isThousandsOnly(s string) bool {
	i := strings.Index(s, ".")
	if i < 0 {
		return false
	}
	return len(s)-i-1 == 3
}

// ParseMileage normalizes mileage input: "25.000" becomes 25000. All dots and
// commas are treated as grouping separators.
func ParseMileage(s string) (int, error) {
	cleaned := strings.ReplaceAll(s, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: unparseable mileage %q", ErrInvalidInput, s)
	}
	return value, nil
}

// PriceValue unmarshals from either a JSON number or a locale-formatted
// string. The string form is the compatibility path for callers that send
// "R$ 45.000,00" in JSON bodies.
type PriceValue float64

func (p *PriceValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		value, err := ParsePrice(s)
		if err != nil {
			return err
		}
		*p = PriceValue(value)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: unparseable price %s", ErrInvalidInput, data)
	}
	*p = PriceValue(f)
	return nil
}

// MileageValue unmarshals from either a JSON number or a grouped string
// ("25.000").
type MileageValue int

func (m *MileageValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		value, err := ParseMileage(s)
		if err != nil {
			return err
		}
		*m = MileageValue(value)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: unparseable mileage %s", ErrInvalidInput, data)
	}
	*m = MileageValue(n)
	return nil
}
