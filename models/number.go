package models

import "strconv"

// Number is either an integer currency amount or a floating-point area.
// Integers are kept as int64 so large deposits keep full precision.
type Number struct {
	i       int64
	f       float64
	isFloat bool
}

func IntNumber(v int64) Number     { return Number{i: v} }
func FloatNumber(v float64) Number { return Number{f: v, isFloat: true} }

func (n Number) IsFloat() bool { return n.isFloat }

// Float returns the value as float64 (lossy for very large integers).
func (n Number) Float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// Int returns the integer value; floats are truncated.
func (n Number) Int() int64 {
	if n.isFloat {
		return int64(n.f)
	}
	return n.i
}

// Less compares two numbers of the same kind.
func (n Number) Less(o Number) bool {
	if n.isFloat || o.isFloat {
		return n.Float() < o.Float()
	}
	return n.i < o.i
}

func (n Number) Equal(o Number) bool {
	return !n.Less(o) && !o.Less(n)
}

func (n Number) String() string {
	if n.isFloat {
		return FormatArea(n.f)
	}
	return strconv.FormatInt(n.i, 10)
}

// NumRange is the observed minimum and maximum of a numeric column.
type NumRange struct {
	Min Number
	Max Number
}

// Extend widens the range to include v.
func (r *NumRange) Extend(v Number) {
	if v.Less(r.Min) {
		r.Min = v
	}
	if r.Max.Less(v) {
		r.Max = v
	}
}

// Single reports whether every observed value was the same.
func (r NumRange) Single() bool { return r.Min.Equal(r.Max) }

// String renders the single value, or "<min> ~ <max>".
func (r NumRange) String() string {
	if r.Single() {
		return r.Min.String()
	}
	return r.Min.String() + " ~ " + r.Max.String()
}
