package model

import gModel "salon/shared/model"

const (
	EntityStore       = "store"
	EntityClient      = "client"
	EntityUser        = "user"
	EntitySlot        = "slot"
	EntityReservation = "reservation"
	EntityStylist     = "stylist"
	EntityMenuItem    = "menu"
	EntityPost        = "post"
)

type ReservationStatus string

const (
	ReservationStatusDraft     ReservationStatus = "draft"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type SlotStatus string

const (
	SlotStatusActive    SlotStatus = "active"
	SlotStatusCancelled SlotStatus = "cancelled"
)

type StylistStatus string

const (
	StylistStatusActive     StylistStatus = "active"
	StylistStatusInactive   StylistStatus = "inactive"
	StylistStatusSabbatical StylistStatus = "sabbatical"
)

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPublished PostStatus = "published"
)

type Store struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Address string `json:"address"`
	gModel.Audit
}

type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Address string `json:"address"`
	gModel.Audit
}

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	gModel.Audit
}

// Slot is a bookable window at a store. ClientID is empty for walk-in slots.
type Slot struct {
	ID       string     `json:"id"`
	StoreID  string     `json:"storeId"`
	ClientID string     `json:"clientId,omitempty"`
	StartAt  int64      `json:"startAt"`
	EndAt    int64      `json:"endAt"`
	Capacity int        `json:"capacity"`
	Status   SlotStatus `json:"status"`
	Title    string     `json:"title,omitempty"`
	Note     string     `json:"note,omitempty"`
	gModel.Audit
}

func (s Slot) HasClient() bool {
	return s.ClientID != ""
}

type Reservation struct {
	ID     string            `json:"id"`
	SlotID string            `json:"slotId"`
	UserID string            `json:"userId"`
	Status ReservationStatus `json:"status"`
	Note   string            `json:"note,omitempty"`
	gModel.Audit
}

// Stylist is a staff member attached to a store.
type Stylist struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	StoreID        string        `json:"storeId"`
	Role           string        `json:"role"`
	Status         StylistStatus `json:"status"`
	Certifications []string      `json:"certifications"`
	gModel.Audit
}

// MenuItem is a service a store offers. Price is in yen.
type MenuItem struct {
	ID              string `json:"id"`
	StoreID         string `json:"storeId"`
	Title           string `json:"title"`
	Category        string `json:"category"`
	Price           int    `json:"price"`
	DurationMinutes int    `json:"durationMinutes"`
	IsPublished     bool   `json:"isPublished"`
	gModel.Audit
}

// Post is an announcement. PublishedAt is nil until a publish time is set.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Audience    string     `json:"audience"`
	Status      PostStatus `json:"status"`
	Summary     string     `json:"summary"`
	PublishedAt *int64     `json:"publishedAt,omitempty"`
	gModel.Audit
}

// Dataset is the full set of entities as loaded, in source order.
type Dataset struct {
	Stores       []Store
	Clients      []Client
	Users        []User
	Slots        []Slot
	Reservations []Reservation
	Stylists     []Stylist
	Menus        []MenuItem
	Posts        []Post
}
