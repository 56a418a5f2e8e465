package optional

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON implements the json.Marshaler interface.
// An empty option encodes as null, otherwise the contained value is encoded.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return []byte("null"), nil
	}

	return json.Marshal(o.value)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// A null input produces an empty option, any other input is decoded as the
// contained value. On decode failure the option is left unchanged.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()

		return nil
	}

	var value T

	err := json.Unmarshal(data, &value)
	if err != nil {
		return err
	}

	*o = Some(value)

	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
// An empty option encodes as null, otherwise the contained value is encoded.
func (o Option[T]) MarshalYAML() (interface{}, error) {
	if !o.some {
		return nil, nil
	}

	return o.value, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
// A null node produces an empty option, any other node is decoded as the
// contained value. On decode failure the option is left unchanged.
func (o *Option[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*o = None[T]()

		return nil
	}

	var v T

	err := value.Decode(&v)
	if err != nil {
		return err
	}

	*o = Some(v)

	return nil
}

// IsZero returns true if the option is empty,
// so encoders treat None fields as omittable zero values.
func (o Option[T]) IsZero() bool {
	return !o.some
}
