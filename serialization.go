package biginteger

import (
	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
)

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. x is left unchanged if
// text is not a valid integer.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := NewFromString(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// GetBSON implements bson.Getter. x is stored as a decimal string; Decimal128
// cannot hold more than 34 digits.
func (x Int) GetBSON() (interface{}, error) {
	return x.String(), nil
}

// SetBSON implements bson.Setter for values stored by GetBSON.
func (x *Int) SetBSON(raw bson.Raw) error {
	var s string
	if err := raw.Unmarshal(&s); err != nil {
		return errors.Wrap(err, "SetBSON")
	}
	return x.UnmarshalText([]byte(s))
}
