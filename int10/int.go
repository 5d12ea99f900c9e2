package int10

import (
	"math"
)

// Int represents an unsigned, base-10, multi-precision integer. Each index is a single base-10 digit, in reverse order as written. That is, [0] is the 1s digit, [1] 10s, [2] 100s, etc. 0 is represented by nil or an empty slice. Trailing zero elements (leading zeros in written form) are permitted.
//
// Methods never write to the backing array of an operand. Every result owns
// newly allocated storage, so an Int may be shared freely once built.
type Int []Word

// Word is a single decimal digit in [0, 9].
type Word uint8

const base = 10

// NewInt makes a new Int with value x.
func NewInt(x uint64) Int {
	if x == 0 {
		return nil
	}
	var arr [20]Word
	i := 0
	for ; x != 0; i++ {
		arr[i] = Word(x % base)
		x /= base
	}
	a := make(Int, i)
	copy(a, arr[:i])
	return a
}

// NewInt64 makes a new Int with value abs(x).
func NewInt64(x int64) Int {
	if x == 0 {
		return nil
	}
	if x >= 0 {
		return NewInt(uint64(x))
	}
	if x == math.MinInt64 {
		return NewInt(1 << 63)
	}
	return NewInt(uint64(-x))
}

// NewIntString makes a new Int with value s. s must be non-empty and contain only characters 0-9. The second return value is false otherwise. Leading zeros in s are kept.
func NewIntString(s string) (Int, bool) {
	if s == "" {
		return nil, false
	}
	x := make(Int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		x[len(x)-i-1] = Word(c - '0')
	}
	return x, true
}

// Clone returns a copy of a that shares no storage with it.
func (a Int) Clone() Int {
	if len(a) == 0 {
		return nil
	}
	return append(make(Int, 0, len(a)), a...)
}

// Trim returns a without its leading zeros. The result is nil if a is 0. The
// result may share storage with a.
func (a Int) Trim() Int {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	return a[:n]
}

// Uint64 returns a as a uint64. If a cannot be represented in a uint64, it is undefined.
func (a Int) Uint64() uint64 {
	if len(a) == 0 {
		return 0
	}
	var x uint64
	var m uint64 = 1
	for _, d := range a {
		x += uint64(d) * m
		m *= 10
	}
	return x
}

// digit returns the digit at position i, reading positions past the end of a
// as 0. This is the logical left-padding used by Cmp and Add.
func (a Int) digit(i int) Word {
	if i < len(a) {
		return a[i]
	}
	return 0
}

// Cmp compares the magnitudes of a and b and returns:
//
//	-1 if a <  b
//	 0 if a == b
//	+1 if a >  b
//
// The shorter operand is treated as padded with leading zeros.
func (a Int) Cmp(b Int) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := n - 1; i >= 0; i-- {
		x, y := a.digit(i), b.digit(i)
		if x > y {
			return 1
		}
		if x < y {
			return -1
		}
	}
	return 0
}

// Zero returns whether z is 0.
func (z Int) Zero() bool {
	for _, d := range z {
		if d != 0 {
			return false
		}
	}
	return true
}

// Equal returns whether a == b numerically. Leading zeros are ignored.
func (a Int) Equal(b Int) bool {
	return a.Cmp(b) == 0
}

func (z Int) String() string {
	if len(z) == 0 {
		return "0"
	}
	b := make([]byte, len(z))
	for i, v := range z {
		b[len(b)-i-1] = byte(v + '0')
	}
	return string(b)
}

// AddCarry sets z to x+y, with carry bit d. That is, x+y = z+d*10^n where n
// is the length of the longer operand.
func (z *Int) AddCarry(x, y Int) (d bool) {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	r := make(Int, n, n+1)
	var s Word
	for i := 0; i < n; i++ {
		s = x.digit(i) + y.digit(i)
		if d {
			s++
		}
		if s > 9 {
			r[i] = s - base
			d = true
		} else {
			r[i] = s
			d = false
		}
	}
	*z = r
	return d
}

// Add sets z to x+y with leading zeros removed. z may alias x or y; their
// backing arrays are not modified.
func (z *Int) Add(x, y Int) {
	if d := z.AddCarry(x, y); d {
		*z = append(*z, 1)
	}
	*z = z.Trim()
}
