package tag

import (
	"reflect"
	"strconv"
)

// setValue parses raw into a basic-kind value. Composite kinds other than
// the struct and pointer cases handled by the walker are not supported.
func setValue(value reflect.Value, raw, path string) error {
	kind := value.Kind()

	switch kind {
	case reflect.String:
		value.SetString(raw)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return newFieldError(path, kind, raw, err)
		}
		if value.OverflowInt(n) {
			return newFieldError(path, kind, raw, ErrInvalidTagValue)
		}
		value.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return newFieldError(path, kind, raw, err)
		}
		if value.OverflowUint(n) {
			return newFieldError(path, kind, raw, ErrInvalidTagValue)
		}
		value.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return newFieldError(path, kind, raw, err)
		}
		value.SetFloat(f)

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return newFieldError(path, kind, raw, err)
		}
		value.SetBool(b)

	default:
		return newFieldError(path, kind, raw, ErrUnsupportedType)
	}

	return nil
}
