package newmenu

import (
	"slices"
	"sync"

	"github.com/davkit/files"
	"github.com/davkit/files/internal/util"
)

// Menu is an ordered collection of new-file entries, unique by id. Unlike
// the action registry, registering a duplicate id is a hard error.
type Menu struct {
	mu      sync.RWMutex
	entries []*Entry
	logger  util.Logger
}

// NewMenu creates an empty menu.
func NewMenu() *Menu {
	return &Menu{logger: util.GetLogger("newmenu")}
}

// RegisterEntry validates entry and appends it to the menu. Returns
// ErrDuplicateEntry when the id is already taken.
func (m *Menu) RegisterEntry(entry *Entry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.entries {
		if existing.ID == entry.ID {
			return ErrDuplicateEntry
		}
	}
	m.entries = append(m.entries, entry)
	return nil
}

// UnregisterEntry removes the given entry by identity.
func (m *Menu) UnregisterEntry(entry *Entry) {
	m.UnregisterEntryByID(entry.ID)
}

// UnregisterEntryByID removes the entry registered under id. A missing
// entry is logged as a warning, never raised.
func (m *Menu) UnregisterEntryByID(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := slices.IndexFunc(m.entries, func(e *Entry) bool { return e.ID == id })
	if i == -1 {
		m.logger.Warn().Str("id", id).Msg("Entry not found, nothing removed")
		return
	}
	m.entries = slices.Delete(m.entries, i, i+1)
}

// GetEntries returns the entries in registration order. When a destination
// folder context is given, entries whose If predicate rejects it are
// excluded; entries without a predicate are always included.
func (m *Menu) GetEntries(context *files.Folder) []*Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if context == nil {
		return m.entries
	}
	filtered := make([]*Entry, 0, len(m.entries))
	for _, entry := range m.entries {
		if entry.If == nil || entry.If(context) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

var defaultMenu = sync.OnceValue(NewMenu)

// GetNewFileMenu returns the process-wide menu, initialized lazily on first
// use.
func GetNewFileMenu() *Menu {
	return defaultMenu()
}
