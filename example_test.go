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

package biginteger_test

import (
	"fmt"

	"github.com/pkg/errors"
	biginteger "github.com/sashasyedin/big-integer"
)

func ExampleInt_Add() {
	x := biginteger.New("550")
	y := biginteger.New("550")
	z, err := x.Add(y)
	fmt.Printf("%s, err: %v\n", z, err)

	z, err = biginteger.New("-222").Add(biginteger.New("-555"))
	fmt.Printf("%s, negative: %v, err: %v\n", z, z.IsNegative(), err)

	_, err = biginteger.New("1").Add(biginteger.New("-1"))
	fmt.Println(errors.Cause(err) == biginteger.ErrUnsupportedOperation)
	// Output: 1100, err: <nil>
	// -777, negative: true, err: <nil>
	// true
}

func ExampleTryParse() {
	for _, s := range []string{"-789789", "", "-", "12x"} {
		x, ok := biginteger.TryParse(s)
		fmt.Printf("%q: %s, ok: %v\n", s, x, ok)
	}
	// Output: "-789789": -789789, ok: true
	// "": 0, ok: false
	// "-": 0, ok: false
	// "12x": 0, ok: false
}

func ExampleInt_Cmp() {
	fmt.Println(biginteger.New("12345").Cmp(biginteger.New("84")))
	fmt.Println(biginteger.New("-123").Cmp(biginteger.New("-456")))
	fmt.Println(biginteger.New("-654").Less(biginteger.New("12")))
	// Output: 1
	// 1
	// true
}

// ExampleInt_Inc counts past the range of a uint64.
func ExampleInt_Inc() {
	d := biginteger.New("18446744073709551614")
	var ed biginteger.ErrInt
	for i := 0; i < 3; i++ {
		ed.Inc(&d, d)
		fmt.Printf("%22s, err: %v\n", d, ed.Err)
	}
	// Output:   18446744073709551615, err: <nil>
	//   18446744073709551616, err: <nil>
	//   18446744073709551617, err: <nil>
}
