// Package form encodes request parameters the way the GPSWox API expects them:
// bracket-flattened query strings and multipart bodies whose structured values
// are JSON strings.
package form

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
)

// Query flattens params into url.Values.
//
// Nested maps and slices use bracket notation (ids[0]=1, filter[name]=x),
// booleans become "1" or "0" and nil values are skipped.
func Query(params map[string]any) url.Values {
	values := url.Values{}
	for _, key := range sortedKeys(params) {
		appendQuery(values, key, params[key])
	}

	return values
}

func appendQuery(values url.Values, key string, value any) {
	if value == nil {
		return
	}

	switch v := value.(type) {
	case string:
		values.Add(key, v)
	case []byte:
		values.Add(key, string(v))
	case bool:
		if v {
			values.Add(key, "1")
		} else {
			values.Add(key, "0")
		}
	case json.Number:
		values.Add(key, v.String())
	case fmt.Stringer:
		values.Add(key, v.String())
	default:
		appendReflected(values, key, reflect.ValueOf(value))
	}
}

func appendReflected(values url.Values, key string, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		byName := make(map[string]reflect.Value, rv.Len())
		for _, mk := range rv.MapKeys() {
			name := fmt.Sprint(mk.Interface())
			keys = append(keys, name)
			byName[name] = rv.MapIndex(mk)
		}
		sort.Strings(keys)

		for _, name := range keys {
			appendQuery(values, key+"["+name+"]", byName[name].Interface())
		}
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			appendQuery(values, key+"["+strconv.Itoa(i)+"]", rv.Index(i).Interface())
		}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return
		}
		appendQuery(values, key, rv.Elem().Interface())
	default:
		values.Add(key, Scalar(rv.Interface()))
	}
}

// Scalar formats a scalar value for the wire.
func Scalar(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

func sortedKeys(params map[string]any) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
