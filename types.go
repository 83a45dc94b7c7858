package files

// FileType discriminates the two node variants.
type FileType string

const (
	TypeFile   FileType = "file"
	TypeFolder FileType = "folder"
)

// NodeStatus is the transient UI state of a node. The empty string means no
// status is set.
type NodeStatus string

const (
	// StatusNew marks a node that only exists client-side so far.
	StatusNew NodeStatus = "new"
	// StatusFailed marks a node whose last operation errored.
	StatusFailed NodeStatus = "failed"
	// StatusLoading marks a node with an operation in flight.
	StatusLoading NodeStatus = "loading"
	// StatusLocked marks a node locked on the server.
	StatusLocked NodeStatus = "locked"
)

// Valid reports whether s is one of the known status values.
func (s NodeStatus) Valid() bool {
	switch s {
	case StatusNew, StatusFailed, StatusLoading, StatusLocked:
		return true
	}
	return false
}
