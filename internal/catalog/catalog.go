// Package catalog keeps an ordered, in-memory collection of book items and
// assigns each one an identifier on insertion.
package catalog

import (
	"iter"
	"reflect"
	"slices"
	"strings"
	"sync"

	"bookcatalog/internal/book"
)

// Entry pairs an item with the identifier its catalog assigned.
type Entry struct {
	ID   int       `json:"id"`
	Item book.Item `json:"-"`
}

// owners maps every held item to the catalog holding it. An item belongs to
// at most one catalog until it is removed from it.
var owners sync.Map

// Catalog owns its entries. Insert and Remove take the write lock; every
// query takes the read lock, so queries may run alongside each other but
// never alongside a mutation.
type Catalog struct {
	mu      sync.RWMutex
	name    string
	entries []Entry
	lastID  int
}

// New returns an empty catalog with its own freshly allocated entry slice.
func New(name string) (*Catalog, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	return &Catalog{
		name:    name,
		entries: make([]Entry, 0),
	}, nil
}

func (c *Catalog) Name() string {
	return c.name
}

// Insert assigns the next identifier to item, appends it and returns the id.
// An item already held by this catalog fails with ErrAlreadyExists, one held
// by another catalog with ErrOwned.
func (c *Catalog) Insert(item book.Item) (int, error) {
	if isNil(item) {
		return 0, ErrNilItem
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if owner, loaded := owners.LoadOrStore(item, c); loaded {
		if owner == c {
			return 0, ErrAlreadyExists
		}
		return 0, ErrOwned
	}

	c.lastID++
	c.entries = append(c.entries, Entry{ID: c.lastID, Item: item})
	return c.lastID, nil
}

// NextID returns the identifier the next Insert will assign. Identifiers of
// removed entries are never handed out again.
func (c *Catalog) NextID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastID + 1
}

// IndexOf returns the zero-based position of the entry with the given id.
func (c *Catalog) IndexOf(id int) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexOf(id)
}

func (c *Catalog) indexOf(id int) (int, error) {
	for i, e := range c.entries {
		if e.ID == id {
			return i, nil
		}
	}
	return -1, &NotFoundError{Catalog: c.name, ID: id}
}

func (c *Catalog) Get(id int) (book.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, err := c.indexOf(id)
	if err != nil {
		return nil, err
	}
	return c.entries[i].Item, nil
}

// FindByAuthor returns the entries whose author equals author exactly, in
// insertion order. No match yields an empty slice.
func (c *Catalog) FindByAuthor(author string) []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, 0)
	for _, e := range c.entries {
		if e.Item.Author() == author {
			out = append(out, e)
		}
	}
	return out
}

// Remove deletes the entry with the given id.
func (c *Catalog) Remove(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, err := c.indexOf(id)
	if err != nil {
		return err
	}
	owners.CompareAndDelete(c.entries[i].Item, c)
	c.entries = slices.Delete(c.entries, i, i+1)
	return nil
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Entries returns a copy of the entries in insertion order.
func (c *Catalog) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.entries)
}

// All iterates over a snapshot taken when iteration starts, so the caller
// may mutate the catalog from inside the loop.
func (c *Catalog) All() iter.Seq2[int, book.Item] {
	return func(yield func(int, book.Item) bool) {
		for _, e := range c.Entries() {
			if !yield(e.ID, e.Item) {
				return
			}
		}
	}
}

func isNil(item book.Item) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
