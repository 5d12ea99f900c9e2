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

/*
Package biginteger implements an arbitrary-precision signed decimal integer.

An Int is built from a decimal string and stores one decimal digit per
element (see package int10). It supports comparison, same-sign addition and
increment. Subtraction, and therefore addition of operands with opposite
signs, is not supported: such calls return an error whose cause is
ErrUnsupportedOperation.

# Parsing

TryParse, New and NewFromString accept an optional leading '-' followed by
one or more digits 0-9. Any other input, including the empty string, a
whitespace-only string and a lone '-', is rejected and produces 0. The three
forms differ only in how they report the failure: TryParse returns false, New
is silent and NewFromString returns an error whose cause is ErrParse.

Leading zeros are kept as written, so New("007").String() is "007". Adding
0 to x returns x as written; any other sum has no leading zeros, and a zero
sum is always the canonical 0.

# Errors

Errors are built with github.com/pkg/errors. Test for a specific failure
with errors.Cause:

	_, err := x.Add(y)
	if errors.Cause(err) == biginteger.ErrUnsupportedOperation {
		// x and y have different signs
	}

ErrInt can be used to chain several operations and check the error once.
*/
package biginteger
