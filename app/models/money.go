package models

import "fmt"

// Money is a monetary amount in integer minor currency units (kobo).
// All engine arithmetic happens on this type; floating point is never
// used for amounts.
type Money int64

// Min returns the smaller of m and other.
func (m Money) Min(other Money) Money {
	if other < m {
		return other
	}
	return m
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// String formats the amount in major units, e.g. 5800000 -> "58000.00".
func (m Money) String() string {
	sign := ""
	v := m
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
