package lists

import (
	"strings"
	"sync"
)

// Manager holds the current collection and the active list selection.
type Manager struct {
	mu     sync.RWMutex
	c      Collection
	active string
}

// NewManager starts with c and the library selected.
func NewManager(c Collection) *Manager {
	return &Manager{c: c, active: LibraryID}
}

// Lists returns every list and the active id.
func (m *Manager) Lists() ([]GameList, string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.c.Lists(), m.active
}

// Find returns the list with id.
func (m *Manager) Find(id string) (GameList, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.c.Find(id)
}

// Active returns the selected list.
func (m *Manager) Active() GameList {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if l, ok := m.c.Find(m.active); ok {
		return l
	}
	return m.c.Library()
}

// Select makes id the active list.
func (m *Manager) Select(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.c.Find(id); !ok {
		return ErrListNotFound
	}
	m.active = id
	return nil
}

// Create adds a list and selects it.
func (m *Manager) Create(name string) (GameList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, created, err := CreateList(m.c, name)
	if err != nil {
		return GameList{}, err
	}
	m.c = c
	m.active = created.ID
	return created, nil
}

// Rename renames the list with id.
func (m *Manager) Rename(id, name string) (GameList, error) {
	if strings.TrimSpace(name) == "" {
		return GameList{}, ErrEmptyName
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.c.Find(id); !ok {
		return GameList{}, ErrListNotFound
	}
	m.c = RenameList(m.c, id, name)
	l, _ := m.c.Find(id)
	return l, nil
}

// Delete removes the list with id. When it was active the library becomes
// active again.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.c.Find(id); !ok {
		return ErrListNotFound
	}
	c, err := DeleteList(m.c, id)
	if err != nil {
		return err
	}
	m.c = c
	if m.active == id {
		m.active = LibraryID
	}
	return nil
}

// AddGame adds gameID to the list with id.
func (m *Manager) AddGame(id string, gameID int) (GameList, error) {
	return m.mutate(id, func(c Collection) (Collection, error) { return AddGame(c, id, gameID) })
}

// RemoveGame removes gameID from the list with id.
func (m *Manager) RemoveGame(id string, gameID int) (GameList, error) {
	return m.mutate(id, func(c Collection) (Collection, error) { return RemoveGame(c, id, gameID) })
}

func (m *Manager) mutate(id string, fn func(Collection) (Collection, error)) (GameList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, err := fn(m.c)
	if err != nil {
		return GameList{}, err
	}
	m.c = c
	l, _ := m.c.Find(id)
	return l, nil
}
