// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "strconv"

// Rational is an exact fraction such as a frame duration of 1001/30000.
type Rational struct {
	Num int64
	Den int64
}

// NewRational returns num/den.
func NewRational(num, den int64) Rational {
	return Rational{Num: num, Den: den}
}

// IsZero reports whether r has a zero numerator or denominator.
func (r Rational) IsZero() bool {
	return r.Num == 0 || r.Den == 0
}

// Float64 returns r as a float. A zero denominator yields 0.
func (r Rational) Float64() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// Equal reports whether r and o denote the same value.
func (r Rational) Equal(o Rational) bool {
	if r.Den == 0 || o.Den == 0 {
		return r.Den == o.Den && r.Num == o.Num
	}
	return r.Num*o.Den == o.Num*r.Den
}

// String returns "num/den".
func (r Rational) String() string {
	return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10)
}
