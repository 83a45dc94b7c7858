package files

import "github.com/puzpuzpuz/xsync/v4"

// Attributes is the open-ended metadata mapping attached to a node. Every
// write goes through the wrapper so the owning node can refresh its mtime.
type Attributes struct {
	m        *xsync.Map[string, any]
	onMutate func()
}

func newAttributes(init map[string]any, onMutate func()) *Attributes {
	a := &Attributes{
		m:        xsync.NewMap[string, any](),
		onMutate: onMutate,
	}
	for k, v := range init {
		a.m.Store(k, v)
	}
	return a
}

// Get returns the value stored under key.
func (a *Attributes) Get(key string) (any, bool) {
	return a.m.Load(key)
}

// Set stores value under key and notifies the owning node.
func (a *Attributes) Set(key string, value any) {
	a.m.Store(key, value)
	if a.onMutate != nil {
		a.onMutate()
	}
}

// Delete removes key and notifies the owning node, whether or not the key
// was present.
func (a *Attributes) Delete(key string) {
	a.m.Delete(key)
	if a.onMutate != nil {
		a.onMutate()
	}
}

// Keys returns the stored keys in no particular order.
func (a *Attributes) Keys() []string {
	keys := make([]string, 0, a.m.Size())
	a.m.Range(func(k string, _ any) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Len returns the number of stored attributes.
func (a *Attributes) Len() int {
	return a.m.Size()
}

// AsMap returns a detached copy of the mapping. Mutating the copy does not
// touch the node.
func (a *Attributes) AsMap() map[string]any {
	out := make(map[string]any, a.m.Size())
	a.m.Range(func(k string, v any) bool {
		out[k] = v
		return true
	})
	return out
}
