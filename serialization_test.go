package biginteger

import (
	"testing"

	"github.com/globalsign/mgo/bson"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

func TestInt_BSON(t *testing.T) {
	type XXX struct {
		Value *Int
		Plain Int
	}

	v := New("-123456789012345678901234567890123456789")
	var x = XXX{Value: &v, Plain: New("1234")}

	data, err := bson.Marshal(x)

	if err != nil {
		t.Error("marshal bson:", err)
		return
	}

	var y XXX
	err = bson.Unmarshal(data, &y)
	if err != nil {
		t.Error("unmarshal bson:", err)
		return
	}
	if y.Value == nil || x.Value.Cmp(*y.Value) != 0 || x.Plain.Cmp(y.Plain) != 0 {
		t.Error("bson marshal/unmarshal not equal:", x, "!=", y)
		return
	}
}

func TestInt_BSONInvalid(t *testing.T) {
	data, err := bson.Marshal(bson.M{"plain": "12x"})
	if err != nil {
		t.Fatal(err)
	}
	var y struct {
		Plain Int
	}
	if err := bson.Unmarshal(data, &y); errors.Cause(err) != ErrParse {
		t.Fatalf("got %v, expected ErrParse", err)
	}
}

func TestInt_JSON(t *testing.T) {
	type XXX struct {
		A Int  `json:"a"`
		B *Int `json:"b"`
	}
	b := New("-42")
	x := XXX{A: New("99999999999999999999999"), B: &b}
	data, err := json.Marshal(x)
	if err != nil {
		t.Fatal(err)
	}
	if s := string(data); s != `{"a":"99999999999999999999999","b":"-42"}` {
		t.Fatalf("got %s", s)
	}
	var y XXX
	if err := json.Unmarshal(data, &y); err != nil {
		t.Fatal(err)
	}
	if !y.A.Equal(x.A) || y.B == nil || !y.B.Equal(*x.B) {
		t.Fatalf("json marshal/unmarshal not equal: %v != %v", x, y)
	}

	if err := json.Unmarshal([]byte(`{"a":"-"}`), &y); err == nil {
		t.Fatal("expected error")
	}
}

func TestUnmarshalTextKeepsValue(t *testing.T) {
	x := New("7")
	if err := x.UnmarshalText([]byte(" ")); errors.Cause(err) != ErrParse {
		t.Fatalf("got %v, expected ErrParse", err)
	}
	if s := x.String(); s != "7" {
		t.Fatalf("got %s, expected 7", s)
	}
}
