package files

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Validation failures raised by node construction and mutation. Checks run
// in a fixed order, so the first violated rule is the one reported.
var (
	ErrMissingSource          = errors.New("Missing mandatory source")
	ErrInvalidSourceURL       = errors.New("Invalid source format, source must be a valid URL")
	ErrInvalidSourceScheme    = errors.New("Invalid source format, only http(s) is supported")
	ErrInvalidID              = errors.New("Invalid id type of value")
	ErrInvalidMtime           = errors.New("Invalid mtime type")
	ErrInvalidCrtime          = errors.New("Invalid crtime type")
	ErrInvalidSize            = errors.New("Invalid size type")
	ErrInvalidMime            = errors.New("Missing or invalid mandatory mime")
	ErrInvalidPermissions     = errors.New("Invalid permissions")
	ErrRootLeadingSlash       = errors.New("Root must start with a leading slash")
	ErrRootNotInSource        = errors.New("Root must be part of the source")
	ErrRootNotServiceRelative = errors.New("The root must be relative to the service. e.g /files/emma")
	ErrInvalidStatus          = errors.New("Status must be a valid NodeStatus")
	ErrInvalidBasename        = errors.New("Invalid basename")
)

var mimePattern = regexp.MustCompile(`(?i)^[-\w.]+/[-+\w.]+$`)

// validateData checks a raw data bag against the node contract. It never
// mutates anything; callers commit state only after a nil return.
func validateData(data *NodeData, fileType FileType, service *regexp.Regexp) error {
	if data.Source == "" {
		return ErrMissingSource
	}
	u, err := url.Parse(data.Source)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ErrInvalidSourceURL
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return ErrInvalidSourceScheme
	}
	if data.ID != nil && *data.ID < 0 {
		return ErrInvalidID
	}
	if data.Mtime != nil && data.Mtime.IsZero() {
		return ErrInvalidMtime
	}
	if data.Crtime != nil && data.Crtime.IsZero() {
		return ErrInvalidCrtime
	}
	if data.Size != nil && *data.Size < 0 {
		return ErrInvalidSize
	}
	// Files must carry a well-formed mime; folders may omit it entirely.
	if fileType == TypeFile && !mimePattern.MatchString(data.Mime) {
		return ErrInvalidMime
	}
	if fileType == TypeFolder && data.Mime != "" && !mimePattern.MatchString(data.Mime) {
		return ErrInvalidMime
	}
	if !data.Permissions.Valid() {
		return ErrInvalidPermissions
	}
	if data.Root != "" {
		if !strings.HasPrefix(data.Root, "/") {
			return ErrRootLeadingSlash
		}
		if !strings.Contains(u.Path, data.Root) {
			return ErrRootNotInSource
		}
		// The root must begin exactly where the service-relative part of
		// the URL begins.
		if match := service.FindString(data.Source); match != "" {
			if !strings.Contains(data.Source, match+data.Root) {
				return ErrRootNotServiceRelative
			}
		}
	}
	if data.Status != "" && !data.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
