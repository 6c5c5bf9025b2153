package apihelp

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AppendAndLookup(t *testing.T) {
	registry := NewRegistry()
	user := ClassOf[User]()

	registry.Append(MethodDescriptor{Name: "full_name", Description: "Returns display name", Owner: user})
	registry.Append(MethodDescriptor{Name: "rename", Description: "Renames", Owner: user})

	entries := registry.Lookup(user)
	require.Len(t, entries, 2)
	assert.Equal(t, "full_name", entries[0].Name)
	assert.Equal(t, "rename", entries[1].Name)
}

func TestRegistry_LookupUnknownClass(t *testing.T) {
	registry := NewRegistry()

	entries := registry.Lookup(ClassOf[Widget]())
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestRegistry_LookupDoesNotWalkAncestors(t *testing.T) {
	registry := NewRegistry()
	registry.Append(MethodDescriptor{Name: "total", Description: "Order total", Owner: ClassOf[Order]()})

	assert.Empty(t, registry.Lookup(ClassOf[RushOrder]()))
}

func TestRegistry_LookupReturnsCopy(t *testing.T) {
	registry := NewRegistry()
	user := ClassOf[User]()
	registry.Append(MethodDescriptor{Name: "full_name", Description: "Returns display name", Owner: user})

	entries := registry.Lookup(user)
	entries[0].Name = "mutated"

	assert.Equal(t, "full_name", registry.Lookup(user)[0].Name)
}

func TestRegistry_PointerAndValueCoincide(t *testing.T) {
	registry := NewRegistry()
	registry.Append(MethodDescriptor{Name: "full_name", Owner: ClassOf[User]()})

	assert.Len(t, registry.Lookup(reflect.TypeOf(&User{})), 1)
}

func TestRegistry_AppendNormalizesPointerOwner(t *testing.T) {
	registry := NewRegistry()
	registry.Append(MethodDescriptor{Name: "rename", Owner: reflect.TypeOf(&User{})})

	entries := registry.Lookup(ClassOf[User]())
	require.Len(t, entries, 1)
	assert.Equal(t, ClassOf[User](), entries[0].Owner)
	assert.Equal(t, []reflect.Type{ClassOf[User]()}, registry.Classes())
}

func TestMethodDescriptor_EqualIgnoresParams(t *testing.T) {
	order := ClassOf[Order]()
	a := MethodDescriptor{Name: "total", Description: "Order total", Owner: order}
	b := MethodDescriptor{Name: "total", Description: "Order total", Owner: order, Params: []string{"currency"}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(MethodDescriptor{Name: "total", Description: "Other", Owner: order}))
}

func TestRegistry_DuplicatesAreKept(t *testing.T) {
	registry := NewRegistry()
	d := MethodDescriptor{Name: "total", Description: "Order total", Owner: ClassOf[Order]()}

	registry.Append(d)
	registry.Append(d)

	assert.Len(t, registry.Lookup(ClassOf[Order]()), 2)
	assert.Equal(t, 2, registry.Len())
}

func TestRegistry_Classes(t *testing.T) {
	registry := NewRegistry()
	registry.Append(MethodDescriptor{Name: "total", Owner: ClassOf[Order]()})
	registry.Append(MethodDescriptor{Name: "full_name", Owner: ClassOf[User]()})

	classes := registry.Classes()
	require.Len(t, classes, 2)
	assert.Equal(t, ClassOf[Order](), classes[0])
	assert.Equal(t, ClassOf[User](), classes[1])
}

func TestRegistry_Reset(t *testing.T) {
	registry := NewRegistry()
	registry.Append(MethodDescriptor{Name: "total", Owner: ClassOf[Order]()})

	registry.Reset()

	assert.Equal(t, 0, registry.Len())
	assert.Empty(t, registry.Classes())
}

func TestRegistry_ConcurrentAppends(t *testing.T) {
	registry := NewRegistry()
	order := ClassOf[Order]()

	const writers = 20
	const perWriter = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				registry.Append(MethodDescriptor{Name: "total", Owner: order})
				_ = registry.Lookup(order)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, registry.Lookup(order), writers*perWriter)
}
