package model

import (
	catalog "salon/internal/domains/catalog/model"
)

// JoinedReservation is a reservation with every reference resolved. Client is nil for walk-in slots.
type JoinedReservation struct {
	Reservation catalog.Reservation
	Slot        catalog.Slot
	Store       catalog.Store
	Client      *catalog.Client
	User        catalog.User
}

type SkipReason string

const (
	SkipReasonSlotNotFound SkipReason = "slot_not_found"
)

// Skip records a reservation that was dropped from a joined view.
type Skip struct {
	ReservationID string
	SlotID        string
	Reason        SkipReason
}

type JoinReport struct {
	Joined  []JoinedReservation
	Skipped []Skip
}

type Tone string

const (
	TonePositive  Tone = "positive"
	ToneAttention Tone = "attention"
	ToneNeutral   Tone = "neutral"
)

type StatusMeta struct {
	Label string
	Tone  Tone
}

// StoreSummary rolls up one store's slots relative to a reference time.
// NextAt and LastAt are nil when no slot qualifies.
type StoreSummary struct {
	Store            catalog.Store
	ReservationCount int
	UpcomingSlots    []catalog.Slot
	TotalUpcoming    int
	NextAt           *int64
	NextSlot         *catalog.Slot
	LastAt           *int64
	MaxCapacity      int
}

type UserSummary struct {
	User                catalog.User
	TotalReservations   int
	LatestReservationAt int64
}

// Stats counts joined reservations. Draft also absorbs statuses outside the known set,
// and UnrecognizedStatuses says how many of them did.
type Stats struct {
	Total                int
	Confirmed            int
	Cancelled            int
	Draft                int
	Upcoming             int
	UniqueClients        int
	UniqueStores         int
	UnrecognizedStatuses int
}

type ReservationSummary struct {
	ID          string
	StoreID     string
	UserID      string
	StartAt     int64
	EndAt       int64
	Status      catalog.ReservationStatus
	StatusLabel string
	Tone        Tone
	StoreName   string
	UserName    string
	ClientName  string
	SlotTitle   string
	Note        string
	IsUpcoming  bool
}

type DashboardStats struct {
	TotalSalons          int
	ActiveSalons         int
	UpcomingSlots        int
	UpcomingReservations int
	NextSlotStartAt      *int64
	NextSlotStoreName    string
}

const StatusFilterAll = "all"

// ReservationFilter narrows a joined set. An empty Status behaves like StatusFilterAll.
type ReservationFilter struct {
	Keyword string
	Status  string
}

type Audience string

const (
	AudienceSenior Audience = "senior"
	AudienceFamily Audience = "family"
)

// AdminOverview is the back-office landing view.
type AdminOverview struct {
	Stores             int
	Clients            int
	Users              int
	Slots              int
	Reservations       int
	Stylists           int
	Menus              int
	Posts              int
	LastUserUpdatedAt  *int64
	LastStoreUpdatedAt *int64
	LastUpdatedAt      int64
}

type SalonTotals struct {
	Reservations int
	Stylists     int
	Menus        int
	Posts        int
}

// SalonDashboard is the store operator landing view. UpdatedAt covers the salon catalog, not slots.
type SalonDashboard struct {
	Stats             Stats
	Recent            []JoinedReservation
	Totals            SalonTotals
	ActiveStylists    int
	PublishedMenus    int
	UpcomingPostCount int
	UpcomingPosts     []catalog.Post
	UpdatedAt         int64
}

type ReservationPage struct {
	Items     []JoinedReservation
	TotalData int
	Page      int
	Limit     int
}

type ClientDashboard struct {
	Stats  Stats
	Users  []UserSummary
	Stores []StoreSummary
}

// UserBundle is everything the end-user app renders on its home screen.
type UserBundle struct {
	Audience      Audience
	Now           int64
	LastUpdatedAt int64
	Stores        []StoreSummary
	Reservations  []ReservationSummary
	Stats         DashboardStats
}

type ExportFile struct {
	Name    string
	Content []byte
}
