package model

import (
	"fmt"
	"reflect"
)

// assign stores val into dst, converting nested tuples into structs, decoded
// sequences into typed slices and numbers between numeric kinds.
func assign(dst reflect.Value, val any) error {
	if val == nil {
		return nil
	}

	src := reflect.ValueOf(val)

	if src.Type().AssignableTo(dst.Type()) {
		dst.Set(src)
		return nil
	}

	switch {
	case dst.Kind() == reflect.Ptr:
		elem := reflect.New(dst.Type().Elem())
		if err := assign(elem.Elem(), val); err != nil {
			return err
		}

		dst.Set(elem)

		return nil

	case dst.Kind() == reflect.Struct:
		values, ok := val.(map[string]any)
		if !ok {
			break
		}

		m, err := StructOf(dst.Type())
		if err != nil {
			return err
		}

		return m.(*structModel).fill(dst, values)

	case dst.Kind() == reflect.Slice && src.Kind() == reflect.Slice:
		out := reflect.MakeSlice(dst.Type(), src.Len(), src.Len())

		for i := range src.Len() {
			if err := assign(out.Index(i), src.Index(i).Interface()); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}

		dst.Set(out)

		return nil

	case isNumber(dst.Kind()) && isNumber(src.Kind()),
		dst.Kind() == reflect.String && src.Kind() == reflect.String,
		dst.Kind() == reflect.Bool && src.Kind() == reflect.Bool:
		dst.Set(src.Convert(dst.Type()))
		return nil
	}

	return fmt.Errorf("%w: %T to %s", ErrUnassignable, val, dst.Type())
}

func isNumber(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
}
