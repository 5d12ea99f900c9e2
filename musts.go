package biginteger

import "fmt"

// MustParse is like [NewFromString] but panics if s is not a valid integer.
func MustParse(s string) Int {
	x, err := NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// MustAdd is like [Int.Add] but panics if computing error.
func (x Int) MustAdd(y Int) Int {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", y, err))
	}
	return z
}

// MustInc is like [Int.Inc] but panics if computing error.
func (x Int) MustInc() Int {
	z, err := x.Inc()
	if err != nil {
		panic(fmt.Sprintf("MustInc(%v) failed: %v", x, err))
	}
	return z
}
