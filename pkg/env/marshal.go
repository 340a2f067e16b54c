package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const mask = "****"

// MarshalEnv reflects over a struct pointer and renders .env lines from its
// env tags. Nested structs are walked. Zero values are skipped.
func MarshalEnv(c any) (string, error) {
	return marshal(c, false)
}

// MarshalEnvMasked is MarshalEnv with fields tagged `secret:"true"` masked.
func MarshalEnvMasked(c any) (string, error) {
	return marshal(c, true)
}

func marshal(c any, masked bool) (string, error) {
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return "", fmt.Errorf("marshal env: expected struct pointer, got %T", c)
	}

	var lines []string
	collect(v.Elem(), masked, &lines)

	result := strings.Join(lines, "\n")
	if result != "" {
		result += "\n"
	}
	return result, nil
}

func collect(v reflect.Value, masked bool, lines *[]string) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		val := v.Field(i)
		tag := field.Tag.Get("env")

		// Parse tag: "KEY,required,notEmpty" or "KEY"
		key := strings.Split(tag, ",")[0]
		if key == "" {
			if val.Kind() == reflect.Struct && val.Type() != reflect.TypeOf(time.Time{}) {
				collect(val, masked, lines)
			}
			continue
		}

		if isZeroValue(val) {
			continue
		}

		strVal := formatValue(val)
		if masked && field.Tag.Get("secret") == "true" {
			strVal = mask
		}
		*lines = append(*lines, fmt.Sprintf("%s=%s", key, strVal))
	}
}

func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil() || (v.Kind() == reflect.Slice && v.Len() == 0)
	default:
		return v.IsZero()
	}
}

func formatValue(v reflect.Value) string {
	if d, ok := v.Interface().(time.Duration); ok {
		return d.String()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Slice:
		parts := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			parts = append(parts, formatValue(v.Index(i)))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
