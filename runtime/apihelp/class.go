package apihelp

import (
	"reflect"
)

// ClassOf returns the class identity of T
func ClassOf[T any]() reflect.Type {
	return normalize(reflect.TypeOf((*T)(nil)).Elem())
}

// ClassOfValue returns the class identity of v. v may be a reflect.Type, a
// value of the type or a pointer to one. Returns nil for nil input.
func ClassOfValue(v any) reflect.Type {
	if v == nil {
		return nil
	}
	if t, ok := v.(reflect.Type); ok {
		return normalize(t)
	}
	return normalize(reflect.TypeOf(v))
}

// ClassName returns the display name of a class
func ClassName(class reflect.Type) string {
	if class == nil {
		return ""
	}
	if class.Name() != "" {
		return class.Name()
	}
	return class.String()
}

func normalize(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// validClass reports whether t can key the registry. Unnamed composite types
// have no stable identity of their own.
func validClass(t reflect.Type) bool {
	return t != nil && t.Name() != ""
}
