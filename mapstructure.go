package optional

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// anySetter is implemented by *Option[T] for every T,
// letting DecodeHook recognize option destinations without knowing T.
type anySetter interface {
	setAny(value interface{}) error
	elemType() reflect.Type
}

var anySetterType = reflect.TypeOf((*anySetter)(nil)).Elem()

// setAny implements anySetter.
func (o *Option[T]) setAny(value interface{}) error {
	if value == nil {
		*o = None[T]()

		return nil
	}

	if v, ok := value.(T); ok {
		*o = Some(v)

		return nil
	}

	rv := reflect.ValueOf(value)
	if !rv.Type().ConvertibleTo(o.elemType()) {
		return fmt.Errorf("cannot decode %T into optional %s", value, o.elemType())
	}

	*o = Some(rv.Convert(o.elemType()).Interface().(T))

	return nil
}

// elemType implements anySetter.
func (o *Option[T]) elemType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// DecodeHook returns a mapstructure decode hook for Option destination fields.
// Keys absent from the input leave the field None, explicit nil values produce
// None, anything else becomes Some of the decoded value.
//
// Hooks passed as inner run against the element type before the value is set,
// so conversions like mapstructure.StringToTimeDurationHookFunc apply to
// option elements as well.
func DecodeHook(inner ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(from reflect.Value, to reflect.Value) (interface{}, error) {
		if !reflect.PointerTo(to.Type()).Implements(anySetterType) {
			return from.Interface(), nil
		}

		option := reflect.New(to.Type())
		setter := option.Interface().(anySetter)

		value := from.Interface()

		if len(inner) > 0 && value != nil {
			elem := reflect.New(setter.elemType()).Elem()

			converted, err := mapstructure.DecodeHookExec(mapstructure.ComposeDecodeHookFunc(inner...), from, elem)
			if err != nil {
				return nil, err
			}

			value = converted
		}

		err := setter.setAny(value)
		if err != nil {
			return nil, err
		}

		return option.Elem().Interface(), nil
	}
}
