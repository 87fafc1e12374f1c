package logx

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// ValueFormatter renders arbitrary Go values for debug/trace output,
// one line, struct fields in declaration order, map keys sorted.
type ValueFormatter struct {
	MaxDepth        int // Maximum nesting depth (0 = unlimited)
	MaxStringLength int // Truncate strings longer than this (0 = no limit)
}

// NewValueFormatter creates a formatter with sensible defaults
func NewValueFormatter() *ValueFormatter {
	return &ValueFormatter{
		MaxDepth:        5,
		MaxStringLength: 120,
	}
}

// Format formats a value for log output
func (f *ValueFormatter) Format(v any) string {
	if v == nil {
		return "<nil>"
	}
	return f.formatValue(reflect.ValueOf(v), 0)
}

func (f *ValueFormatter) formatValue(v reflect.Value, depth int) string {
	if !v.IsValid() {
		return "<nil>"
	}

	if f.MaxDepth > 0 && depth > f.MaxDepth {
		return "..."
	}

	// Errors and times get a compact rendering regardless of structure
	if v.CanInterface() {
		switch val := v.Interface().(type) {
		case error:
			if val != nil {
				return fmt.Sprintf("Error(%q)", val.Error())
			}
		case time.Time:
			return fmt.Sprintf("Time(%q)", val.Format(time.RFC3339))
		}
	}

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return "nil"
		}
		return "&" + f.formatValue(v.Elem(), depth)
	case reflect.Interface:
		if v.IsNil() {
			return "<nil>"
		}
		return f.formatValue(v.Elem(), depth)
	case reflect.String:
		s := v.String()
		if f.MaxStringLength > 0 && len(s) > f.MaxStringLength {
			s = s[:f.MaxStringLength] + "..."
		}
		return fmt.Sprintf("%q", s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%d", v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%d", v.Uint())
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%g", v.Float())
	case reflect.Bool:
		return fmt.Sprintf("%t", v.Bool())
	case reflect.Slice, reflect.Array:
		return f.formatSlice(v, depth)
	case reflect.Map:
		return f.formatMap(v, depth)
	case reflect.Struct:
		return f.formatStruct(v, depth)
	default:
		if v.CanInterface() {
			return fmt.Sprintf("%v", v.Interface())
		}
		return fmt.Sprintf("<%s>", v.Type().String())
	}
}

func (f *ValueFormatter) formatSlice(v reflect.Value, depth int) string {
	if v.Kind() == reflect.Slice && v.IsNil() {
		return "nil"
	}

	parts := make([]string, v.Len())
	for i := 0; i < v.Len(); i++ {
		parts[i] = f.formatValue(v.Index(i), depth+1)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (f *ValueFormatter) formatMap(v reflect.Value, depth int) string {
	if v.IsNil() {
		return "nil"
	}

	keys := v.MapKeys()
	rendered := make([]string, len(keys))
	for i, key := range keys {
		rendered[i] = fmt.Sprintf("%s: %s",
			f.formatValue(key, depth+1),
			f.formatValue(v.MapIndex(key), depth+1))
	}
	sort.Strings(rendered)
	return "{" + strings.Join(rendered, ", ") + "}"
}

func (f *ValueFormatter) formatStruct(v reflect.Value, depth int) string {
	t := v.Type()

	var parts []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s",
			field.Name, f.formatValue(v.Field(i), depth+1)))
	}
	return t.Name() + "{" + strings.Join(parts, ", ") + "}"
}
