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

import "github.com/pkg/errors"

var (
	// ErrParse is the cause of errors from NewFromString and UnmarshalText.
	ErrParse = errors.New("invalid decimal integer")
	// ErrUnsupportedOperation is the cause of errors from adding operands of
	// opposite sign.
	ErrUnsupportedOperation = errors.New("unsupported operation: operands have different signs")
)

// ErrInt performs operations on Ints and collects errors during operations.
// If an error is already set, the operation is skipped. Designed to be used
// for many operations in a row, with a single error check at the end.
type ErrInt struct {
	Err error
}

// Add performs *d = x.Add(y). d is left unchanged on error.
func (e *ErrInt) Add(d *Int, x, y Int) {
	if e.Err != nil {
		return
	}
	z, err := x.Add(y)
	if err != nil {
		e.Err = err
		return
	}
	*d = z
}

// Inc performs *d = x.Inc(). d is left unchanged on error.
func (e *ErrInt) Inc(d *Int, x Int) {
	if e.Err != nil {
		return
	}
	z, err := x.Inc()
	if err != nil {
		e.Err = err
		return
	}
	*d = z
}

// Cmp returns 0 if Err is set. Otherwise returns x.Cmp(y).
func (e *ErrInt) Cmp(x, y Int) int {
	if e.Err != nil {
		return 0
	}
	return x.Cmp(y)
}
