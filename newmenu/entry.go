// Package newmenu provides the process-wide "new file" menu: an ordered
// registry of creatable file and folder templates.
package newmenu

import (
	"context"

	"github.com/pkg/errors"

	"github.com/davkit/files"
)

// Validation and registration failures raised by Menu.
var (
	ErrInvalidIDOrDisplayName   = errors.New("Invalid id or displayName property")
	ErrInvalidIcon              = errors.New("Invalid icon provided")
	ErrMissingTemplateOrHandler = errors.New("At least a templateName or a handler must be provided")
	ErrInvalidHandler           = errors.New("Invalid handler property")
	ErrDuplicateEntry           = errors.New("Duplicate entry")
)

// Entry describes one item of the "new file" menu: a template to materialize
// and a handler carrying out the creation.
type Entry struct {
	// ID uniquely identifies the entry within a menu.
	ID string

	// DisplayName is the menu label.
	DisplayName string

	// TemplateName is the default filename offered to the user, e.g.
	// "New document.md".
	TemplateName string

	// IconClass is a CSS class rendering the entry icon. At least one of
	// IconClass or IconSvgInline must be set.
	IconClass string

	// IconSvgInline is the raw svg markup of the entry icon.
	IconSvgInline string

	// Order sorts entries in the menu, lower first.
	Order int

	// If decides whether the entry shows up for the given destination
	// folder. Entries without a predicate always show up.
	If func(context *files.Folder) bool

	// Handler creates the new resource inside dest. content is the current
	// folder listing, available for unique-name computation. It is an
	// asynchronous collaborator callback the menu stores opaquely.
	Handler func(ctx context.Context, dest *files.Folder, content []*files.Node) error
}

func validateEntry(entry *Entry) error {
	if entry.ID == "" || entry.DisplayName == "" {
		return ErrInvalidIDOrDisplayName
	}
	if entry.IconClass == "" && entry.IconSvgInline == "" {
		return ErrInvalidIcon
	}
	if entry.TemplateName == "" && entry.Handler == nil {
		return ErrMissingTemplateOrHandler
	}
	if entry.Handler == nil {
		return ErrInvalidHandler
	}
	return nil
}
