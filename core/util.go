package core

import (
	"math"
	"strings"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// CleanPhone drops spaces and dashes from a phone number.
func CleanPhone(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(s))
}

// CleanStringPtr is CleanString applied in place; a nil s is left alone.
func CleanStringPtr(s *string, lower ...bool) {
	if s != nil {
		*s = CleanString(*s, lower...)
	}
}

// CleanPhonePtr is CleanPhone applied in place; a nil s is left alone.
func CleanPhonePtr(s *string) {
	if s != nil {
		*s = CleanPhone(*s)
	}
}

// DropBlanks sets the blank string pointers to nil.
// validator only honours `omitempty` for nil pointers, so partial updates validate a copy passed through DropBlanks.
func DropBlanks(ptrs ...**string) {
	for _, p := range ptrs {
		if *p != nil && **p == "" {
			*p = nil
		}
	}
}

// RoundMoney rounds an amount to 2 decimals.
func RoundMoney(amount float64) float64 {
	return Round(amount, 2)
}

func Round(val float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(val*p) / p
}
