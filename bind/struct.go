package bind

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"martianoff/flist/flerr"
	"martianoff/flist/pattern"
)

// TagName is the struct tag read by Struct.
const TagName = "flist"

type structTarget[T, R any] struct {
	params []string
	fields map[string]int
	fn     func(T) (R, error)
}

// Struct declares a target whose parameters are the exported fields of T.
// A field is named by its `flist:"name"` tag, or by its Go name when
// untagged; `flist:"-"` excludes it. Resolved values are assigned to the
// fields before fn is called; numeric values are converted to the field's
// numeric type. Struct panics if T is not a struct type.
func Struct[T, R any](fn func(T) (R, error)) Target[R] {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		panic(fmt.Sprintf("bind.Struct: %v is not a struct", rt))
	}
	t := structTarget[T, R]{fields: make(map[string]int), fn: fn}
	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup(TagName); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		t.params = append(t.params, name)
		t.fields[name] = i
	}
	return t
}

func (t structTarget[T, R]) Params() []string {
	return slices.Clone(t.params)
}

func (t structTarget[T, R]) Invoke(b pattern.Binding) (R, error) {
	var args T
	rv := reflect.ValueOf(&args).Elem()
	for name, v := range b {
		idx, ok := t.fields[name]
		if !ok {
			var zero R
			return zero, flerr.NewArgumentMismatchError(name)
		}
		if err := assign(rv.Field(idx), name, v); err != nil {
			var zero R
			return zero, err
		}
	}
	return t.fn(args)
}

func assign(field reflect.Value, name string, v any) error {
	if v == nil {
		return nil
	}
	val := reflect.ValueOf(v)
	ft := field.Type()
	switch {
	case val.Type().AssignableTo(ft):
		field.Set(val)
	case isNumeric(val.Kind()) && isNumeric(ft.Kind()):
		if !fits(val, ft) {
			return flerr.NewArgumentMismatchErrorf(name, "%v does not fit field %q of type %v", v, name, ft)
		}
		field.Set(val.Convert(ft))
	default:
		return flerr.NewArgumentMismatchErrorf(name, "cannot assign %T to field %q of type %v", v, name, ft)
	}
	return nil
}

type numClass int

const (
	notNumeric numClass = iota
	signedInt
	unsignedInt
	floating
)

func classify(k reflect.Kind) numClass {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return unsignedInt
	case reflect.Float32, reflect.Float64:
		return floating
	}
	return notNumeric
}

func isNumeric(k reflect.Kind) bool {
	return classify(k) != notNumeric
}

// fits reports whether val converts to ft without losing its value. Floats
// may narrow to a smaller float type as long as they stay in range.
func fits(val reflect.Value, ft reflect.Type) bool {
	z := reflect.New(ft).Elem()
	switch classify(val.Kind()) {
	case signedInt:
		x := val.Int()
		switch classify(ft.Kind()) {
		case signedInt:
			return !z.OverflowInt(x)
		case unsignedInt:
			return x >= 0 && !z.OverflowUint(uint64(x))
		case floating:
			return int64(float64(x)) == x && !z.OverflowFloat(float64(x))
		}
	case unsignedInt:
		u := val.Uint()
		switch classify(ft.Kind()) {
		case signedInt:
			return u <= math.MaxInt64 && !z.OverflowInt(int64(u))
		case unsignedInt:
			return !z.OverflowUint(u)
		case floating:
			return u <= 1<<53 && !z.OverflowFloat(float64(u))
		}
	case floating:
		f := val.Float()
		if classify(ft.Kind()) == floating {
			return !z.OverflowFloat(f)
		}
		if f != math.Trunc(f) {
			return false
		}
		switch classify(ft.Kind()) {
		case signedInt:
			return f >= math.MinInt64 && f < math.MaxInt64 && !z.OverflowInt(int64(f))
		case unsignedInt:
			return f >= 0 && f < math.MaxUint64 && !z.OverflowUint(uint64(f))
		}
	}
	return false
}
