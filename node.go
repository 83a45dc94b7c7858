package files

import (
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"
)

// Node is a single remote filesystem entry addressed by URL. It exclusively
// owns its NodeData after construction and derives path, ownership and
// permission facts from it. Nodes are independent values; there is no tree
// linking them and identity is the source URL.
//
// Use NewFile / NewFolder to construct the two variants.
type Node struct {
	data       NodeData
	fileType   FileType
	attributes *Attributes
	davService *regexp.Regexp
}

func newNode(data NodeData, fileType FileType, service *regexp.Regexp) (*Node, error) {
	if service == nil {
		service = DefaultDavService
	}
	if err := validateData(&data, fileType, service); err != nil {
		return nil, err
	}
	data.Source = strings.TrimSuffix(data.Source, "/")
	n := &Node{
		data:       data,
		fileType:   fileType,
		davService: service,
	}
	// The wrapper owns the mapping from here on.
	n.attributes = newAttributes(data.Attributes, n.touchMtime)
	n.data.Attributes = nil
	return n, nil
}

// Type returns the node variant.
func (n *Node) Type() FileType {
	return n.fileType
}

// Source returns the absolute URL of the node, never with a trailing slash.
func (n *Node) Source() string {
	return strings.TrimSuffix(n.data.Source, "/")
}

// Basename is the last path segment of the source.
func (n *Node) Basename() string {
	return path.Base(n.Source())
}

// Extension is the file extension of the source including the dot, or ""
// when there is none.
func (n *Node) Extension() string {
	return path.Ext(n.Source())
}

// Mime returns the content type, "" when unset (folders only).
func (n *Node) Mime() string {
	return n.data.Mime
}

// Mtime returns the last modification time, nil when unknown.
func (n *Node) Mtime() *time.Time {
	return n.data.Mtime
}

// Crtime returns the creation time, nil when unknown.
func (n *Node) Crtime() *time.Time {
	return n.data.Crtime
}

// Size returns the size in bytes and whether one is known.
func (n *Node) Size() (int64, bool) {
	if n.data.Size == nil {
		return 0, false
	}
	return *n.data.Size, true
}

// IsDavResource reports whether the source is addressed through a known (or
// custom) DAV service endpoint.
func (n *Node) IsDavResource() bool {
	return n.davService.MatchString(n.data.Source)
}

// Owner returns the owner uid. Resources outside the DAV service have no
// owner, whatever the data bag carried.
func (n *Node) Owner() string {
	if !n.IsDavResource() || n.data.Owner == nil {
		return ""
	}
	return *n.data.Owner
}

// Permissions returns the granted permission bits. Resources outside the
// DAV service are read-only; a DAV resource without explicit permissions
// has none.
func (n *Node) Permissions() Permission {
	if !n.IsDavResource() {
		return PermissionRead
	}
	return n.data.Permissions
}

// Root returns the path prefix anchoring relative path computations: the
// explicit root with its trailing slash stripped, or, for DAV resources, the
// parent path following the last service token of the source. "" when
// neither applies.
func (n *Node) Root() string {
	if n.data.Root != "" {
		if len(n.data.Root) > 1 {
			return strings.TrimSuffix(n.data.Root, "/")
		}
		return n.data.Root
	}
	if n.IsDavResource() {
		return afterDavService(urlDirname(n.Source()), n.davService)
	}
	return ""
}

// relative slices the service-relative part of the source after root.
// Returns "" when the node's path is the root itself. The search runs on the
// URL path only, so root text occurring in the scheme or host cannot match.
func (n *Node) relative(root string) string {
	source := n.Source()
	if n.IsDavResource() {
		source = afterDavService(source, n.davService)
	} else if u, err := url.Parse(source); err == nil {
		source = u.Path
	}
	i := strings.Index(source, root)
	if i < 0 {
		return ""
	}
	return source[i+len(strings.TrimSuffix(root, "/")):]
}

// Dirname is the parent directory of Path.
func (n *Node) Dirname() string {
	if root := n.Root(); root != "" {
		rel := n.relative(root)
		if rel == "" {
			rel = "/"
		}
		return path.Dir(rel)
	}
	// Parse cannot fail here, construction already validated the source.
	u, _ := url.Parse(n.Source())
	return path.Dir(u.Path)
}

// Path is the source path relative to root, or a normalized
// dirname/basename join when there is no root.
func (n *Node) Path() string {
	if root := n.Root(); root != "" {
		rel := n.relative(root)
		if rel == "" {
			return "/"
		}
		return rel
	}
	return strings.ReplaceAll(n.Dirname()+"/"+n.Basename(), "//", "/")
}

// FileID returns the numeric id from the data bag, falling back to the
// "fileid" attribute.
func (n *Node) FileID() (int64, bool) {
	if n.data.ID != nil {
		return *n.data.ID, true
	}
	if v, ok := n.attributes.Get("fileid"); ok {
		switch id := v.(type) {
		case int64:
			return id, true
		case int:
			return int64(id), true
		case float64:
			return int64(id), true
		}
	}
	return 0, false
}

// Attributes returns the node's observable metadata mapping.
func (n *Node) Attributes() *Attributes {
	return n.attributes
}

// Status returns the transient UI state, "" when unset.
func (n *Node) Status() NodeStatus {
	return n.data.Status
}

// SetStatus sets the transient UI state. Only known status values or ""
// (clear) are accepted.
func (n *Node) SetStatus(status NodeStatus) error {
	if status != "" && !status.Valid() {
		return ErrInvalidStatus
	}
	n.data.Status = status
	return nil
}

// Move points the node at destination. The full data bag is revalidated
// against the new source before anything is committed; on error the node is
// left untouched. A successful move refreshes the mtime if one was present.
func (n *Node) Move(destination string) error {
	next := n.data
	next.Source = destination
	if err := validateData(&next, n.fileType, n.davService); err != nil {
		return err
	}
	n.data.Source = strings.TrimSuffix(destination, "/")
	n.touchMtime()
	return nil
}

// Rename moves the node to a new basename inside its current directory.
// Fails for an empty or slash-carrying basename, and for sources without a
// path segment, which have no directory to rename within.
func (n *Node) Rename(basename string) error {
	if basename == "" || strings.Contains(basename, "/") {
		return ErrInvalidBasename
	}
	u, err := url.Parse(n.Source())
	if err != nil || u.Path == "" || u.Path == "/" {
		return ErrInvalidBasename
	}
	return n.Move(urlDirname(n.Source()) + "/" + basename)
}

// touchMtime refreshes the modification time to now. A node without an
// mtime stays without one.
func (n *Node) touchMtime() {
	if n.data.Mtime != nil {
		now := time.Now()
		n.data.Mtime = &now
	}
}
