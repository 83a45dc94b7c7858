package files

import "strings"

// Permission is the bitwise set of operations allowed on a node. Values are
// the ones the DAV service reports for a resource.
type Permission uint32

const (
	PermissionNone   Permission = 0
	PermissionRead   Permission = 1
	PermissionUpdate Permission = 2
	PermissionCreate Permission = 4
	PermissionDelete Permission = 8
	PermissionShare  Permission = 16

	// PermissionAll is the union of every known permission bit. Any stored
	// permission value must be a subset of it.
	PermissionAll = PermissionRead | PermissionUpdate | PermissionCreate | PermissionDelete | PermissionShare
)

// Has reports whether every bit of perm is set in p.
func (p Permission) Has(perm Permission) bool {
	return p&perm == perm
}

// Valid reports whether p only carries known permission bits.
func (p Permission) Valid() bool {
	return p&^PermissionAll == 0
}

func (p Permission) String() string {
	if p == PermissionNone {
		return "none"
	}
	names := []struct {
		bit  Permission
		name string
	}{
		{PermissionRead, "read"},
		{PermissionUpdate, "update"},
		{PermissionCreate, "create"},
		{PermissionDelete, "delete"},
		{PermissionShare, "share"},
	}
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if p.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
