package repository

import (
	"salon/internal/domains/catalog/model"
)

// Catalog is the read-only entity store. It is built once and never mutated,
// so concurrent readers need no locking.
type Catalog interface {
	Version() string
	Snapshot() model.Dataset
	Stores() []model.Store
	Clients() []model.Client
	Users() []model.User
	Slots() []model.Slot
	Reservations() []model.Reservation
	Stylists() []model.Stylist
	Menus() []model.MenuItem
	Posts() []model.Post
	Store(id string) (model.Store, bool)
	Client(id string) (model.Client, bool)
	User(id string) (model.User, bool)
	Slot(id string) (model.Slot, bool)
}

type catalogImpl struct {
	version string
	data    model.Dataset

	stores  map[string]int
	clients map[string]int
	users   map[string]int
	slots   map[string]int
}

// New indexes a dataset by id. Later duplicates win, but ingestion rejects duplicates before this point.
func New(data model.Dataset, version string) Catalog {
	c := &catalogImpl{
		version: version,
		data:    data,
		stores:  make(map[string]int, len(data.Stores)),
		clients: make(map[string]int, len(data.Clients)),
		users:   make(map[string]int, len(data.Users)),
		slots:   make(map[string]int, len(data.Slots)),
	}

	for i, s := range data.Stores {
		c.stores[s.ID] = i
	}

	for i, cl := range data.Clients {
		c.clients[cl.ID] = i
	}

	for i, u := range data.Users {
		c.users[u.ID] = i
	}

	for i, s := range data.Slots {
		c.slots[s.ID] = i
	}

	return c
}

func (c *catalogImpl) Version() string {
	return c.version
}

// Snapshot returns copies of the entity slices so callers cannot mutate the store.
func (c *catalogImpl) Snapshot() model.Dataset {
	return model.Dataset{
		Stores:       c.Stores(),
		Clients:      c.Clients(),
		Users:        c.Users(),
		Slots:        c.Slots(),
		Reservations: c.Reservations(),
		Stylists:     c.Stylists(),
		Menus:        c.Menus(),
		Posts:        c.Posts(),
	}
}

func (c *catalogImpl) Stores() []model.Store {
	return append([]model.Store(nil), c.data.Stores...)
}

func (c *catalogImpl) Clients() []model.Client {
	return append([]model.Client(nil), c.data.Clients...)
}

func (c *catalogImpl) Users() []model.User {
	return append([]model.User(nil), c.data.Users...)
}

func (c *catalogImpl) Slots() []model.Slot {
	return append([]model.Slot(nil), c.data.Slots...)
}

func (c *catalogImpl) Reservations() []model.Reservation {
	return append([]model.Reservation(nil), c.data.Reservations...)
}

func (c *catalogImpl) Stylists() []model.Stylist {
	return append([]model.Stylist(nil), c.data.Stylists...)
}

func (c *catalogImpl) Menus() []model.MenuItem {
	return append([]model.MenuItem(nil), c.data.Menus...)
}

func (c *catalogImpl) Posts() []model.Post {
	return append([]model.Post(nil), c.data.Posts...)
}

func (c *catalogImpl) Store(id string) (model.Store, bool) {
	i, ok := c.stores[id]
	if !ok {
		return model.Store{}, false
	}

	return c.data.Stores[i], true
}

func (c *catalogImpl) Client(id string) (model.Client, bool) {
	i, ok := c.clients[id]
	if !ok {
		return model.Client{}, false
	}

	return c.data.Clients[i], true
}

func (c *catalogImpl) User(id string) (model.User, bool) {
	i, ok := c.users[id]
	if !ok {
		return model.User{}, false
	}

	return c.data.Users[i], true
}

func (c *catalogImpl) Slot(id string) (model.Slot, bool) {
	i, ok := c.slots[id]
	if !ok {
		return model.Slot{}, false
	}

	return c.data.Slots[i], true
}
