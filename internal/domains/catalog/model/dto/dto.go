package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"salon/internal/domains/catalog/model"
	gModel "salon/shared/model"
	"salon/shared/timezone"
)

// Timestamp accepts either an epoch-millisecond number or a civil-time string (UTC+9).
type Timestamp int64

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var raw any
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding timestamp: %w", err)
		}

		raw = s
	} else {
		raw = json.Number(data)
	}

	ms, err := timezone.ToEpochMillis(raw)
	if err != nil {
		return fmt.Errorf("decoding timestamp: %w", err)
	}

	*t = Timestamp(ms)

	return nil
}

type RawAudit struct {
	CreatedAt Timestamp `json:"createdAt" validate:"min=0"`
	UpdatedAt Timestamp `json:"updatedAt" validate:"min=0,gtefield=CreatedAt"`
}

func (a RawAudit) toModel() gModel.Audit {
	return gModel.Audit{CreatedAt: int64(a.CreatedAt), UpdatedAt: int64(a.UpdatedAt)}
}

type RawStore struct {
	ID      string `json:"id"      validate:"required"`
	Name    string `json:"name"    validate:"required"`
	Code    string `json:"code"    validate:"required"`
	Address string `json:"address"`
	RawAudit
}

type RawClient struct {
	ID      string `json:"id"      validate:"required"`
	Name    string `json:"name"    validate:"required"`
	Code    string `json:"code"    validate:"required"`
	Address string `json:"address"`
	RawAudit
}

type RawUser struct {
	ID   string `json:"id"   validate:"required"`
	Name string `json:"name" validate:"required"`
	RawAudit
}

type RawSlot struct {
	ID       string    `json:"id"       validate:"required"`
	StoreID  string    `json:"storeId"  validate:"required"`
	ClientID string    `json:"clientId" validate:"omitempty"`
	StartAt  Timestamp `json:"startAt"  validate:"min=0"`
	EndAt    Timestamp `json:"endAt"    validate:"required,gtfield=StartAt"`
	Capacity int       `json:"capacity" validate:"min=1"`
	Status   string    `json:"status"   validate:"required,oneof=active cancelled"`
	Title    string    `json:"title"`
	Note     string    `json:"note"`
	RawAudit
}

type RawReservation struct {
	ID     string `json:"id"     validate:"required"`
	SlotID string `json:"slotId" validate:"required"`
	UserID string `json:"userId" validate:"required"`
	Status string `json:"status" validate:"required,oneof=draft confirmed cancelled"`
	Note   string `json:"note"`
	RawAudit
}

type RawStylist struct {
	ID             string   `json:"id"             validate:"required"`
	Name           string   `json:"name"           validate:"required"`
	StoreID        string   `json:"salonId"        validate:"required"`
	Role           string   `json:"role"`
	Status         string   `json:"status"         validate:"required,oneof=active inactive sabbatical"`
	Certifications []string `json:"certifications" validate:"dive,required"`
	RawAudit
}

type RawMenuItem struct {
	ID              string `json:"id"              validate:"required"`
	StoreID         string `json:"salonId"         validate:"required"`
	Title           string `json:"title"           validate:"required"`
	Category        string `json:"category"`
	Price           int    `json:"price"           validate:"min=0"`
	DurationMinutes int    `json:"durationMinutes" validate:"min=1"`
	IsPublished     bool   `json:"isPublished"`
	RawAudit
}

type RawPost struct {
	ID          string     `json:"id"          validate:"required"`
	Title       string     `json:"title"       validate:"required"`
	Audience    string     `json:"audience"`
	Status      string     `json:"status"      validate:"required,oneof=draft scheduled published"`
	Summary     string     `json:"summary"`
	PublishedAt *Timestamp `json:"publishedAt" validate:"omitempty,min=0"`
	RawAudit
}

// RawDataset is the ingestion document: top-level arrays of every entity kind.
type RawDataset struct {
	Stores       []RawStore       `json:"stores"       validate:"unique=ID,unique=Code,dive"`
	Clients      []RawClient      `json:"clients"      validate:"unique=ID,unique=Code,dive"`
	Users        []RawUser        `json:"users"        validate:"unique=ID,dive"`
	Slots        []RawSlot        `json:"slots"        validate:"unique=ID,dive"`
	Reservations []RawReservation `json:"reservations" validate:"unique=ID,dive"`
	Stylists     []RawStylist     `json:"stylists"     validate:"unique=ID,dive"`
	Menus        []RawMenuItem    `json:"menus"        validate:"unique=ID,dive"`
	Posts        []RawPost        `json:"posts"        validate:"unique=ID,dive"`
}

type ConvertOptions struct {
	TruncateSlotMinutes bool
}

func (d *RawDataset) ToModel(opts ConvertOptions) model.Dataset {
	res := model.Dataset{
		Stores:       make([]model.Store, len(d.Stores)),
		Clients:      make([]model.Client, len(d.Clients)),
		Users:        make([]model.User, len(d.Users)),
		Slots:        make([]model.Slot, len(d.Slots)),
		Reservations: make([]model.Reservation, len(d.Reservations)),
		Stylists:     make([]model.Stylist, len(d.Stylists)),
		Menus:        make([]model.MenuItem, len(d.Menus)),
		Posts:        make([]model.Post, len(d.Posts)),
	}

	for i, s := range d.Stores {
		res.Stores[i] = model.Store{ID: s.ID, Name: s.Name, Code: s.Code, Address: s.Address, Audit: s.toModel()}
	}

	for i, c := range d.Clients {
		res.Clients[i] = model.Client{ID: c.ID, Name: c.Name, Code: c.Code, Address: c.Address, Audit: c.toModel()}
	}

	for i, u := range d.Users {
		res.Users[i] = model.User{ID: u.ID, Name: u.Name, Audit: u.toModel()}
	}

	for i, s := range d.Slots {
		startAt, endAt := int64(s.StartAt), int64(s.EndAt)
		if opts.TruncateSlotMinutes {
			startAt = timezone.TruncateToMinute(startAt)
			endAt = timezone.TruncateToMinute(endAt)
		}

		res.Slots[i] = model.Slot{
			ID:       s.ID,
			StoreID:  s.StoreID,
			ClientID: s.ClientID,
			StartAt:  startAt,
			EndAt:    endAt,
			Capacity: s.Capacity,
			Status:   model.SlotStatus(s.Status),
			Title:    s.Title,
			Note:     s.Note,
			Audit:    s.toModel(),
		}
	}

	for i, r := range d.Reservations {
		res.Reservations[i] = model.Reservation{
			ID:     r.ID,
			SlotID: r.SlotID,
			UserID: r.UserID,
			Status: model.ReservationStatus(r.Status),
			Note:   r.Note,
			Audit:  r.toModel(),
		}
	}

	for i, st := range d.Stylists {
		res.Stylists[i] = model.Stylist{
			ID:             st.ID,
			Name:           st.Name,
			StoreID:        st.StoreID,
			Role:           st.Role,
			Status:         model.StylistStatus(st.Status),
			Certifications: append([]string{}, st.Certifications...),
			Audit:          st.toModel(),
		}
	}

	for i, m := range d.Menus {
		res.Menus[i] = model.MenuItem{
			ID:              m.ID,
			StoreID:         m.StoreID,
			Title:           m.Title,
			Category:        m.Category,
			Price:           m.Price,
			DurationMinutes: m.DurationMinutes,
			IsPublished:     m.IsPublished,
			Audit:           m.toModel(),
		}
	}

	for i, p := range d.Posts {
		post := model.Post{
			ID:       p.ID,
			Title:    p.Title,
			Audience: p.Audience,
			Status:   model.PostStatus(p.Status),
			Summary:  p.Summary,
			Audit:    p.toModel(),
		}

		if p.PublishedAt != nil {
			publishedAt := int64(*p.PublishedAt)
			post.PublishedAt = &publishedAt
		}

		res.Posts[i] = post
	}

	return res
}
