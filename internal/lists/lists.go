package lists

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const (
	// LibraryID identifies the default list holding every known game.
	LibraryID   = "library"
	LibraryName = "Mi Biblioteca"
)

var (
	ErrDefaultList  = errors.New("the library list cannot be deleted")
	ErrEmptyName    = errors.New("list name must not be empty")
	ErrListNotFound = errors.New("list not found")
)

// GameList is a named set of game ids.
type GameList struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Default bool   `json:"isDefault"`
	GameIDs []int  `json:"gameIds"`
}

func (l GameList) clone() GameList {
	l.GameIDs = append(make([]int, 0, len(l.GameIDs)), l.GameIDs...)
	return l
}

// Contains reports whether gameID is in the list.
func (l GameList) Contains(gameID int) bool {
	for _, id := range l.GameIDs {
		if id == gameID {
			return true
		}
	}
	return false
}

// Collection is an immutable set of lists. The library is held apart from
// the custom lists, so no operation can remove it.
type Collection struct {
	library GameList
	custom  []GameList
}

// newID yields fresh list ids.
var newID = func() string {
	return "list-" + uuid.NewString()
}

// NewCollection returns a collection holding only the library, seeded with
// libraryIDs.
func NewCollection(libraryIDs []int) Collection {
	return Collection{
		library: GameList{
			ID:      LibraryID,
			Name:    LibraryName,
			Default: true,
			GameIDs: append(make([]int, 0, len(libraryIDs)), libraryIDs...),
		},
	}
}

// SeedCollection returns the starting collection: the library plus the
// favorites and wishlist lists.
func SeedCollection(libraryIDs []int) Collection {
	c := NewCollection(libraryIDs)
	c.custom = []GameList{
		{ID: "favorites", Name: "Favoritos", GameIDs: []int{1, 2, 5, 8}},
		{ID: "wishlist", Name: "Lista de Deseos", GameIDs: []int{3, 6, 9}},
	}
	return c
}

// Library returns a copy of the default list.
func (c Collection) Library() GameList {
	return c.library.clone()
}

// Lists returns every list, library first, then custom lists in creation order.
func (c Collection) Lists() []GameList {
	out := make([]GameList, 0, len(c.custom)+1)
	out = append(out, c.library.clone())
	for _, l := range c.custom {
		out = append(out, l.clone())
	}
	return out
}

// Find returns the list with id.
func (c Collection) Find(id string) (GameList, bool) {
	if id == c.library.ID {
		return c.library.clone(), true
	}
	if i := c.index(id); i >= 0 {
		return c.custom[i].clone(), true
	}
	return GameList{}, false
}

func (c Collection) index(id string) int {
	for i, l := range c.custom {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (c Collection) withCustom() Collection {
	out := Collection{library: c.library.clone(), custom: make([]GameList, len(c.custom))}
	for i, l := range c.custom {
		out.custom[i] = l.clone()
	}
	return out
}

// update applies fn to the list with id in a copy of c.
func (c Collection) update(id string, fn func(*GameList)) (Collection, bool) {
	out := c.withCustom()
	if id == out.library.ID {
		fn(&out.library)
		return out, true
	}
	if i := out.index(id); i >= 0 {
		fn(&out.custom[i])
		return out, true
	}
	return c, false
}

// CreateList appends an empty custom list named name (trimmed).
func CreateList(c Collection, name string) (Collection, GameList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return c, GameList{}, ErrEmptyName
	}
	created := GameList{ID: newID(), Name: name, GameIDs: []int{}}
	out := c.withCustom()
	out.custom = append(out.custom, created)
	return out, created.clone(), nil
}

// RenameList renames the list with id in place. Unknown ids and blank names
// leave the collection unchanged. The library may be renamed.
func RenameList(c Collection, id, name string) Collection {
	name = strings.TrimSpace(name)
	if name == "" {
		return c
	}
	out, _ := c.update(id, func(l *GameList) { l.Name = name })
	return out
}

// DeleteList removes the custom list with id. Unknown ids are a no-op;
// the library yields ErrDefaultList and the unchanged collection.
func DeleteList(c Collection, id string) (Collection, error) {
	if id == c.library.ID {
		return c, ErrDefaultList
	}
	i := c.index(id)
	if i < 0 {
		return c, nil
	}
	out := c.withCustom()
	out.custom = append(out.custom[:i], out.custom[i+1:]...)
	return out, nil
}

// AddGame adds gameID to the list with id. Adding a present id is a no-op.
func AddGame(c Collection, id string, gameID int) (Collection, error) {
	out, ok := c.update(id, func(l *GameList) {
		if !l.Contains(gameID) {
			l.GameIDs = append(l.GameIDs, gameID)
		}
	})
	if !ok {
		return c, ErrListNotFound
	}
	return out, nil
}

// RemoveGame removes gameID from the list with id.
func RemoveGame(c Collection, id string, gameID int) (Collection, error) {
	out, ok := c.update(id, func(l *GameList) {
		kept := l.GameIDs[:0]
		for _, g := range l.GameIDs {
			if g != gameID {
				kept = append(kept, g)
			}
		}
		l.GameIDs = kept
	})
	if !ok {
		return c, ErrListNotFound
	}
	return out, nil
}
