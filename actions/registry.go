package actions

import (
	"sync"

	"github.com/davkit/files/internal/util"
)

// Registry is an ordered collection of file actions, unique by id.
// Registration order is preserved; menu ordering is the UI's concern.
type Registry struct {
	mu      sync.RWMutex
	actions []*FileAction
	logger  util.Logger
}

// NewRegistry creates an empty action registry.
func NewRegistry() *Registry {
	return &Registry{logger: util.GetLogger("actions")}
}

// Register adds action to the registry. A duplicate id is rejected and
// logged, never raised: the already registered action wins.
func (r *Registry) Register(action *FileAction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.actions {
		if existing.ID == action.ID {
			r.logger.Error().Str("id", action.ID).Msg("FileAction already registered")
			return
		}
	}
	r.actions = append(r.actions, action)
}

// GetAll returns the registered actions in registration order. The slice is
// the registry's backing store; callers must treat it as read-only.
func (r *Registry) GetAll() []*FileAction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.actions
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// RegisterFileAction registers action with the process-wide registry, which
// is initialized lazily on first use.
func RegisterFileAction(action *FileAction) {
	defaultRegistry().Register(action)
}

// GetFileActions returns the contents of the process-wide registry.
func GetFileActions() []*FileAction {
	return defaultRegistry().GetAll()
}
