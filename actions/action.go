// Package actions provides the process-wide registry of file actions a file
// list UI offers on one or more nodes.
package actions

import (
	"context"

	"github.com/pkg/errors"

	"github.com/davkit/files"
)

// DefaultType controls how a file list renders an action.
type DefaultType string

const (
	// TypeDefault renders the action as the default action of a node.
	TypeDefault DefaultType = "default"
	// TypeHidden registers the action without showing it in menus.
	TypeHidden DefaultType = "hidden"
)

// Validation failures raised by NewFileAction.
var (
	ErrInvalidID            = errors.New("Invalid id")
	ErrInvalidDisplayName   = errors.New("Invalid displayName function")
	ErrInvalidIconSvgInline = errors.New("Invalid iconSvgInline function")
	ErrInvalidExec          = errors.New("Invalid exec function")
	ErrInvalidDefault       = errors.New("Invalid default")
	ErrMissingRenderInline  = errors.New("Invalid inline function or missing renderInline function")
)

// FileAction describes an operation performable on nodes from a file list.
// ID, DisplayName, IconSvgInline and Exec are mandatory, the rest are
// optional refinements. The Exec/ExecBatch/RenderInline callables are the
// asynchronous boundary: the registry stores them opaquely and the invoking
// UI awaits them.
type FileAction struct {
	// ID uniquely identifies the action within a registry.
	ID string

	// DisplayName returns the action label for the given selection.
	DisplayName func(nodes []*files.Node, view *files.View) string

	// Title optionally returns a long description.
	Title func(nodes []*files.Node, view *files.View) string

	// IconSvgInline returns the raw svg markup of the action icon.
	IconSvgInline func(nodes []*files.Node, view *files.View) string

	// Enabled optionally restricts the selections the action applies to.
	Enabled func(nodes []*files.Node, view *files.View) bool

	// Exec runs the action against a single node. dir is the path of the
	// directory the user is viewing. The boolean reports success; a nil
	// error with false means the UI should show a generic failure.
	Exec func(ctx context.Context, node *files.Node, view *files.View, dir string) (bool, error)

	// ExecBatch optionally runs the action against a whole selection at
	// once, returning one result per node.
	ExecBatch func(ctx context.Context, nodes []*files.Node, view *files.View, dir string) ([]bool, error)

	// Order sorts actions in menus, lower first.
	Order int

	// Default marks the action as a node default or hides it from menus.
	Default DefaultType

	// Inline reports whether the action renders directly in the file row.
	// Requires RenderInline.
	Inline func(node *files.Node, view *files.View) bool

	// RenderInline returns the markup for an inline action.
	RenderInline func(ctx context.Context, node *files.Node, view *files.View) (string, error)
}

// NewFileAction validates the descriptor and returns it ready for
// registration.
func NewFileAction(action FileAction) (*FileAction, error) {
	if err := action.validate(); err != nil {
		return nil, err
	}
	return &action, nil
}

func (a *FileAction) validate() error {
	if a.ID == "" {
		return ErrInvalidID
	}
	if a.DisplayName == nil {
		return ErrInvalidDisplayName
	}
	if a.IconSvgInline == nil {
		return ErrInvalidIconSvgInline
	}
	if a.Exec == nil {
		return ErrInvalidExec
	}
	if a.Default != "" && a.Default != TypeDefault && a.Default != TypeHidden {
		return ErrInvalidDefault
	}
	if a.Inline != nil && a.RenderInline == nil {
		return ErrMissingRenderInline
	}
	return nil
}
