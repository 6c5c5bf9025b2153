package apihelp

import (
	"reflect"
	"sort"

	casing "github.com/conduit-lang/apihelp/internal/util/strings"
)

// ClassFuncs is implemented by types that publish functions belonging to the
// type rather than to an instance, such as constructors and finders. It is
// called on a zero value. Entries that are not functions are ignored.
type ClassFuncs interface {
	HelpClassFuncs() map[string]any
}

// Param describes one parameter of a resolved callable
type Param struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type"`
}

// String renders the parameter as "name (type)", or just the type when the
// name is unknown
func (p Param) String() string {
	if p.Name == "" {
		return p.Type
	}
	return p.Name + " (" + p.Type + ")"
}

// callable is a resolved function or bound method
type callable struct {
	name string
	typ  reflect.Type
}

// members maps a member key to the callable carrying that key
type members map[string]callable

func (m members) add(name string, typ reflect.Type) {
	key := casing.MemberKey(name)
	if _, exists := m[key]; exists {
		return
	}
	m[key] = callable{name: name, typ: typ}
}

// lookup finds the callable for a registered name
func (m members) lookup(name string) (callable, bool) {
	c, ok := m[casing.MemberKey(name)]
	return c, ok
}

// names returns the member names, sorted
func (m members) names() []string {
	result := make([]string, 0, len(m))
	for _, c := range m {
		result = append(result, c.name)
	}
	sort.Strings(result)
	return result
}

// classMembers returns the class-level functions published by class
func classMembers(class reflect.Type) (result members) {
	result = make(members)
	class = normalize(class)
	if class == nil || class.Kind() == reflect.Interface {
		return result
	}

	cf, ok := reflect.New(class).Interface().(ClassFuncs)
	if !ok {
		return result
	}

	defer func() {
		if recover() != nil {
			result = make(members)
		}
	}()

	funcs := cf.HelpClassFuncs()
	keys := make([]string, 0, len(funcs))
	for name := range funcs {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	for _, name := range keys {
		fn := funcs[name]
		if fn == nil {
			continue
		}
		typ := reflect.TypeOf(fn)
		if typ.Kind() != reflect.Func {
			continue
		}
		result.add(name, typ)
	}
	return result
}

// instanceMembers returns the methods reachable from instance. A non-pointer
// instance is copied behind a pointer so pointer-receiver methods count.
func instanceMembers(instance any) members {
	result := make(members)
	if instance == nil {
		return result
	}

	v := reflect.ValueOf(instance)
	for v.Kind() == reflect.Pointer && v.Elem().Kind() == reflect.Pointer {
		if v.IsNil() {
			return result
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return result
	}
	if v.Kind() != reflect.Pointer {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		v = p
	}

	for i := 0; i < v.NumMethod(); i++ {
		result.add(v.Type().Method(i).Name, v.Method(i).Type())
	}
	return result
}

// signature describes the parameters of fn, pairing them with declared names
// when given. Extra declared names beyond the arity are ignored.
func signature(fn reflect.Type, names []string) []Param {
	params := make([]Param, 0, fn.NumIn())
	for i := 0; i < fn.NumIn(); i++ {
		typeName := fn.In(i).String()
		if fn.IsVariadic() && i == fn.NumIn()-1 {
			typeName = "..." + fn.In(i).Elem().String()
		}
		p := Param{Type: typeName}
		if i < len(names) {
			p.Name = names[i]
		}
		params = append(params, p)
	}
	return params
}
