// Copyright 2026 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package biginteger

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sashasyedin/big-integer/int10"
)

// Int is an arbitrary-precision signed integer. Its value is:
//
//	(-1)^neg * mag
//
// The zero value is 0 and is ready to use. An Int is immutable; every
// operation returns a new Int that shares no storage with its operands.
type Int struct {
	mag int10.Int
	neg bool
}

const negativeSign = '-'

var one = New("1")

// makeInt assembles an Int, clearing the sign of a zero magnitude.
func makeInt(mag int10.Int, neg bool) Int {
	if mag.Zero() {
		neg = false
	}
	return Int{mag: mag, neg: neg}
}

// Zero returns the canonical zero: no digits, not negative.
func Zero() Int {
	return Int{}
}

// New returns the Int represented by s. If s is not a valid decimal integer,
// the result is 0. Use TryParse or NewFromString to detect the failure.
func New(s string) Int {
	x, _ := TryParse(s)
	return x
}

// NewFromInt64 returns x as an Int.
func NewFromInt64(x int64) Int {
	return makeInt(int10.NewInt64(x), x < 0)
}

// TryParse converts s, an optional '-' followed by one or more digits 0-9,
// into an Int. The second return value is false if s is empty, consists only
// of whitespace, is a lone '-', or contains any other character; the Int is 0
// in that case. Leading zeros are kept: "007" formats as "007".
func TryParse(s string) (Int, bool) {
	if strings.TrimSpace(s) == "" {
		return Int{}, false
	}
	neg := false
	if s[0] == negativeSign {
		s = s[1:]
		if s == "" {
			return Int{}, false
		}
		neg = true
	}
	mag, ok := int10.NewIntString(s)
	if !ok {
		return Int{}, false
	}
	return makeInt(mag, neg), true
}

// NewFromString is like TryParse but reports failure as an error whose cause
// is ErrParse.
func NewFromString(s string) (Int, error) {
	x, ok := TryParse(s)
	if !ok {
		return Int{}, errors.Wrapf(ErrParse, "parse %q", s)
	}
	return x, nil
}

// IsNegative reports whether x < 0.
func (x Int) IsNegative() bool {
	return x.neg
}

// IsZero reports whether x == 0, including values written with several zero
// digits such as "000".
func (x Int) IsZero() bool {
	return x.mag.Zero()
}

// Digits returns a copy of the magnitude of x, least significant digit first.
func (x Int) Digits() int10.Int {
	return x.mag.Clone()
}

func (x Int) String() string {
	if len(x.mag) == 0 {
		return "0"
	}
	s := x.mag.String()
	if x.neg {
		return string(negativeSign) + s
	}
	return s
}

// GoString implements fmt.GoStringer.
func (x Int) GoString() string {
	return fmt.Sprintf(`{Digits: %s, Negative: %t}`, x.mag, x.neg)
}

// Format implements fmt.Formatter. The verbs %v, %s and %d print x.String()
// and %q prints it quoted. The '+' flag forces a sign on non-negative values
// and a width pads with spaces, on the right if the '-' flag is set.
func (x Int) Format(state fmt.State, verb rune) {
	if verb == 'v' && state.Flag('#') {
		io.WriteString(state, x.GoString())
		return
	}
	var s string
	switch verb {
	case 'v', 's', 'd':
		s = x.String()
		if state.Flag('+') && !x.neg {
			s = "+" + s
		}
	case 'q':
		s = strconv.Quote(x.String())
	default:
		fmt.Fprintf(state, "%%!%c(biginteger.Int=%s)", verb, x.String())
		return
	}
	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	io.WriteString(state, s)
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Int) Cmp(y Int) int {
	if x.neg && !y.neg {
		return -1
	}
	if !x.neg && y.neg {
		return 1
	}
	c := x.mag.Cmp(y.mag)
	if x.neg {
		// Both negative: the larger magnitude is the smaller number.
		c = -c
	}
	return c
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// NotEqual reports whether x != y.
func (x Int) NotEqual(y Int) bool { return x.Cmp(y) != 0 }

// Less reports whether x < y.
func (x Int) Less(y Int) bool { return x.Cmp(y) < 0 }

// Greater reports whether x > y.
func (x Int) Greater(y Int) bool { return x.Cmp(y) > 0 }

// Add returns the sum x+y. If either operand is 0 the other is returned.
// Otherwise x and y must have the same sign; mixed signs would need
// subtraction and yield an error whose cause is ErrUnsupportedOperation.
// A computed sum carries no leading zeros.
func (x Int) Add(y Int) (Int, error) {
	switch xz, yz := x.IsZero(), y.IsZero(); {
	case xz && yz:
		return Int{}, nil
	case xz:
		return Int{mag: y.mag.Clone(), neg: y.neg}, nil
	case yz:
		return Int{mag: x.mag.Clone(), neg: x.neg}, nil
	}
	if x.neg != y.neg {
		return Int{}, errors.Wrapf(ErrUnsupportedOperation, "add %s and %s", x, y)
	}
	var z int10.Int
	z.Add(x.mag, y.mag)
	return makeInt(z, x.neg), nil
}

// Inc returns x+1. It fails like Add when x is negative.
func (x Int) Inc() (Int, error) {
	z, err := x.Add(one)
	if err != nil {
		return Int{}, errors.Wrap(err, "Inc")
	}
	return z, nil
}
