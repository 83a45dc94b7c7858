package files

import "time"

// NodeData is the raw value bag a collaborator hands over to construct a
// Node. The constructor consumes and revalidates it; after that the bag
// belongs to the node and must not be touched by the caller.
//
// Optional fields are pointers or zero values. A nil pointer (or empty
// string, or zero Permission) means "not provided".
type NodeData struct {
	// Source is the absolute http(s) URL of the resource. Mandatory. A
	// trailing slash is stripped once the node is constructed.
	Source string

	// ID is the service-side numeric id. Must be >= 0 when set.
	ID *int64

	// Mtime is the last modification time.
	Mtime *time.Time

	// Crtime is the creation time.
	Crtime *time.Time

	// Mime is the content type as "type/subtype". Mandatory for files,
	// optional for folders.
	Mime string

	// Size of the resource in bytes. Must be >= 0 when set.
	Size *int64

	// Permissions the service granted on the resource. Must be a subset of
	// PermissionAll.
	Permissions Permission

	// Owner uid. Nil when the resource has no known owner, which is only
	// legitimate for non-DAV resources.
	Owner *string

	// Root is the service-relative path prefix anchoring relative path
	// computations, e.g. "/files/emma". When empty the root is inferred
	// from the DAV service segment of Source, if any.
	Root string

	// Attributes is an open mapping of additional metadata. It is wrapped
	// at construction so mutations refresh the node's mtime.
	Attributes map[string]any

	// Status is the transient UI state, empty when unset.
	Status NodeStatus
}
