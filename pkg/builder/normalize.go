package builder

import (
	"fmt"
	"reflect"
	"strings"

	bmeerrors "github.com/goliatone/go-bmecat/pkg/errors"
)

var configType = reflect.TypeOf(Config{})

// normalize copies raw into a tree of map[string]any, []any and scalars,
// following the shape of target. Keys without a matching field are dropped,
// or rejected when strict is set. Values that cannot appear in a Config
// (funcs, channels, structs, scalars where a mapping is expected) fail with a
// *errors.ConfigurationError naming the key. The walk is bounded by the depth
// of target, so self-referencing maps cannot recurse without end.
func normalize(path string, raw reflect.Value, target reflect.Type, strict bool) (any, error) {
	for raw.IsValid() && (raw.Kind() == reflect.Interface || raw.Kind() == reflect.Pointer) {
		if raw.IsNil() {
			return nil, nil
		}
		raw = raw.Elem()
	}
	if !raw.IsValid() {
		return nil, nil
	}
	for target.Kind() == reflect.Pointer {
		target = target.Elem()
	}

	switch target.Kind() {
	case reflect.Struct:
		if raw.Kind() != reflect.Map {
			return nil, shapeError(path, "a mapping", raw)
		}
		fields := yamlFields(target)
		out := make(map[string]any, raw.Len())
		iter := raw.MapRange()
		for iter.Next() {
			key := fmt.Sprint(iter.Key().Interface())
			keyPath := joinPath(path, key)
			field, ok := fields[key]
			if !ok {
				if strict {
					return nil, bmeerrors.NewConfigurationError(keyPath, "unknown key", nil)
				}
				continue
			}
			v, err := normalize(keyPath, iter.Value(), field.Type, strict)
			if err != nil {
				return nil, err
			}
			if v != nil {
				out[key] = v
			}
		}
		return out, nil

	case reflect.Slice:
		if raw.Kind() != reflect.Slice && raw.Kind() != reflect.Array {
			return nil, shapeError(path, "a list", raw)
		}
		out := make([]any, 0, raw.Len())
		for i := 0; i < raw.Len(); i++ {
			v, err := normalize(fmt.Sprintf("%s[%d]", path, i), raw.Index(i), target.Elem(), strict)
			if err != nil {
				return nil, err
			}
			if v == nil {
				v = map[string]any{}
			}
			out = append(out, v)
		}
		return out, nil

	default:
		switch raw.Kind() {
		case reflect.String, reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return raw.Interface(), nil
		}
		return nil, shapeError(path, "a scalar", raw)
	}
}

func yamlFields(t reflect.Type) map[string]reflect.StructField {
	out := make(map[string]reflect.StructField, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			continue
		}
		out[name] = f
	}
	return out
}

func shapeError(path, want string, raw reflect.Value) error {
	return bmeerrors.NewConfigurationError(path, fmt.Sprintf("expected %s, got %s", want, raw.Kind()), nil)
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
