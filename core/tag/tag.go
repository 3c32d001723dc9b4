// Package tag fills zero-valued struct fields from `default:"..."` struct
// tags. It backs the option and parameter structs across this module, so the
// zero value of an options struct selects the documented defaults without
// hand-written merge code.
package tag

import "reflect"

// ApplyDefaults sets default values for struct fields based on struct tags.
// The target must be a non-nil pointer to a struct.
//
// Fields that already hold a non-zero value are left alone. Nested structs
// are walked recursively, so partially filled structs still receive defaults
// for their remaining fields. A nil pointer field is only touched when the
// field itself carries a tag; untagged nil pointers keep their meaning of
// "not supplied".
//
// Example:
//
//	type Params struct {
//	    KeyLength int `default:"16"`
//	}
//	p := &Params{}
//	err := tag.ApplyDefaults(p)
func ApplyDefaults(target any, opts ...Option) error {
	options := newOptions(opts)

	valueOf := reflect.ValueOf(target)
	if valueOf.Kind() != reflect.Pointer {
		return ErrTargetMustBePointer
	}
	if valueOf.IsNil() {
		return ErrTargetIsNil
	}

	elem := valueOf.Elem()
	if elem.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	w := &walker{options: options}
	return w.walkStruct(elem, "")
}

// walker holds the traversal state
type walker struct {
	options *Options
	depth   int
}

// walkStruct applies defaults to every settable field of a struct
func (w *walker) walkStruct(value reflect.Value, path string) error {
	if w.depth >= w.options.maxDepth {
		return ErrMaxDepthExceeded
	}
	w.depth++
	defer func() { w.depth-- }()

	typ := value.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldValue := value.Field(i)

		// Skip unexported fields
		if !fieldValue.CanSet() {
			continue
		}

		fieldPath := joinPath(path, field.Name)
		tagValue := field.Tag.Get(w.options.tagName)

		if err := w.walkField(fieldValue, tagValue, fieldPath); err != nil {
			return err
		}
	}
	return nil
}

// walkField applies a default to a single field
func (w *walker) walkField(fieldValue reflect.Value, tagValue, path string) error {
	switch fieldValue.Kind() {
	case reflect.Struct:
		return w.walkStruct(fieldValue, path)

	case reflect.Pointer:
		if fieldValue.IsNil() {
			if tagValue == "" {
				return nil
			}
			elem := reflect.New(fieldValue.Type().Elem())
			if err := setValue(elem.Elem(), tagValue, path); err != nil {
				return err
			}
			fieldValue.Set(elem)
			return nil
		}
		if fieldValue.Elem().Kind() == reflect.Struct {
			return w.walkStruct(fieldValue.Elem(), path)
		}
		return nil

	default:
		if tagValue == "" || !fieldValue.IsZero() {
			return nil
		}
		return setValue(fieldValue, tagValue, path)
	}
}

// joinPath builds a field path for error reporting
func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
