package dto

import (
	"net/http"
	"strings"

	catalog "salon/internal/domains/catalog/model"
	"salon/internal/domains/reservation/engine"
	"salon/internal/domains/reservation/model"
	"salon/shared"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/timezone"
)

// ReservationQuery carries the list filters shared by the salon and client reservation pages.
type ReservationQuery struct {
	gDto.QueryParams
	Keyword string `json:"q"      validate:"omitempty,max=100"`
	Status  string `json:"status" validate:"omitempty,oneof=all draft confirmed cancelled"`
}

func (q *ReservationQuery) FromRequest(r *http.Request) {
	q.QueryParams.FromRequest(r, true)

	queryParams := r.URL.Query()
	q.Keyword = strings.TrimSpace(queryParams.Get(constant.RequestParamKeyword))
	q.Status = strings.ToLower(strings.TrimSpace(queryParams.Get(constant.RequestParamStatus)))

	if q.Status == constant.Empty {
		q.Status = constant.DefaultValueStatusFilter
	}
}

func (q *ReservationQuery) ToFilter() model.ReservationFilter {
	return model.ReservationFilter{Keyword: q.Keyword, Status: q.Status}
}

type StoreResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Address string `json:"address"`
	gDto.Audit
}

func (r *StoreResponse) FromModel(m catalog.Store) {
	r.ID = m.ID
	r.Name = m.Name
	r.Code = m.Code
	r.Address = m.Address
	r.Audit.FromModel(m.Audit)
}

type ClientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Address string `json:"address"`
	gDto.Audit
}

func (r *ClientResponse) FromModel(m catalog.Client) {
	r.ID = m.ID
	r.Name = m.Name
	r.Code = m.Code
	r.Address = m.Address
	r.Audit.FromModel(m.Audit)
}

type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	gDto.Audit
}

func (r *UserResponse) FromModel(m catalog.User) {
	r.ID = m.ID
	r.Name = m.Name
	r.Audit.FromModel(m.Audit)
}

type SlotResponse struct {
	ID       string `json:"id"`
	StoreID  string `json:"store_id"`
	ClientID string `json:"client_id,omitempty"`
	StartAt  int64  `json:"start_at"`
	EndAt    int64  `json:"end_at"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
	Title    string `json:"title,omitempty"`
	Note     string `json:"note,omitempty"`
}

func (r *SlotResponse) FromModel(m catalog.Slot) {
	r.ID = m.ID
	r.StoreID = m.StoreID
	r.ClientID = m.ClientID
	r.StartAt = m.StartAt
	r.EndAt = m.EndAt
	r.Capacity = m.Capacity
	r.Status = string(m.Status)
	r.Title = m.Title
	r.Note = m.Note
}

func slotResponses(slots []catalog.Slot) []SlotResponse {
	res := make([]SlotResponse, len(slots))
	for i, slot := range slots {
		res[i].FromModel(slot)
	}

	return res
}

type ReservationResponse struct {
	ID          string `json:"id"`
	SlotID      string `json:"slot_id"`
	UserID      string `json:"user_id"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Tone        string `json:"tone"`
	Note        string `json:"note,omitempty"`
	gDto.Audit
}

func (r *ReservationResponse) FromModel(m catalog.Reservation) {
	meta := engine.Classify(m.Status)

	r.ID = m.ID
	r.SlotID = m.SlotID
	r.UserID = m.UserID
	r.Status = string(m.Status)
	r.StatusLabel = meta.Label
	r.Tone = string(meta.Tone)
	r.Note = m.Note
	r.Audit.FromModel(m.Audit)
}

type JoinedReservationResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	Slot        SlotResponse        `json:"slot"`
	Store       StoreResponse       `json:"store"`
	Client      *ClientResponse     `json:"client,omitempty"`
	User        UserResponse        `json:"user"`
	StartLabel  string              `json:"start_label"`
	IsUpcoming  bool                `json:"is_upcoming"`
}

func (r *JoinedReservationResponse) FromModel(m model.JoinedReservation, ref int64) {
	r.Reservation.FromModel(m.Reservation)
	r.Slot.FromModel(m.Slot)
	r.Store.FromModel(m.Store)
	r.User.FromModel(m.User)
	r.StartLabel = timezone.FormatMillis(m.Slot.StartAt, constant.CivilDateFormat)
	r.IsUpcoming = engine.IsUpcoming(m, ref)

	if m.Client != nil {
		r.Client = &ClientResponse{}
		r.Client.FromModel(*m.Client)
	}
}

func joinedResponses(models []model.JoinedReservation, ref int64) []JoinedReservationResponse {
	res := make([]JoinedReservationResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m, ref)
	}

	return res
}

type StatsResponse struct {
	Total         int `json:"total"`
	Confirmed     int `json:"confirmed"`
	Cancelled     int `json:"cancelled"`
	Draft         int `json:"draft"`
	Upcoming      int `json:"upcoming"`
	UniqueClients int `json:"unique_clients"`
	UniqueStores  int `json:"unique_stores"`
}

func (r *StatsResponse) FromModel(m model.Stats) {
	r.Total = m.Total
	r.Confirmed = m.Confirmed
	r.Cancelled = m.Cancelled
	r.Draft = m.Draft
	r.Upcoming = m.Upcoming
	r.UniqueClients = m.UniqueClients
	r.UniqueStores = m.UniqueStores
}

type StoreSummaryResponse struct {
	Store            StoreResponse  `json:"store"`
	ReservationCount int            `json:"reservation_count"`
	UpcomingSlots    []SlotResponse `json:"upcoming_slots"`
	TotalUpcoming    int            `json:"total_upcoming"`
	NextAt           *int64         `json:"next_at"`
	NextSlot         *SlotResponse  `json:"next_slot"`
	LastAt           *int64         `json:"last_at"`
	MaxCapacity      int            `json:"max_capacity"`
}

func (r *StoreSummaryResponse) FromModel(m model.StoreSummary) {
	r.Store.FromModel(m.Store)
	r.ReservationCount = m.ReservationCount
	r.UpcomingSlots = slotResponses(m.UpcomingSlots)
	r.TotalUpcoming = m.TotalUpcoming
	r.NextAt = m.NextAt
	r.LastAt = m.LastAt
	r.MaxCapacity = m.MaxCapacity

	if m.NextSlot != nil {
		r.NextSlot = &SlotResponse{}
		r.NextSlot.FromModel(*m.NextSlot)
	}
}

func storeSummaryResponses(models []model.StoreSummary) []StoreSummaryResponse {
	res := make([]StoreSummaryResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

type UserSummaryResponse struct {
	User                UserResponse `json:"user"`
	TotalReservations   int          `json:"total_reservations"`
	LatestReservationAt int64        `json:"latest_reservation_at"`
}

func (r *UserSummaryResponse) FromModel(m model.UserSummary) {
	r.User.FromModel(m.User)
	r.TotalReservations = m.TotalReservations
	r.LatestReservationAt = m.LatestReservationAt
}

type ReservationSummaryResponse struct {
	ID          string `json:"id"`
	StoreID     string `json:"store_id"`
	UserID      string `json:"user_id"`
	StartAt     int64  `json:"start_at"`
	EndAt       int64  `json:"end_at"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Tone        string `json:"tone"`
	StoreName   string `json:"store_name"`
	UserName    string `json:"user_name"`
	ClientName  string `json:"client_name,omitempty"`
	SlotTitle   string `json:"slot_title,omitempty"`
	Note        string `json:"note,omitempty"`
	IsUpcoming  bool   `json:"is_upcoming"`
}

func (r *ReservationSummaryResponse) FromModel(m model.ReservationSummary) {
	r.ID = m.ID
	r.StoreID = m.StoreID
	r.UserID = m.UserID
	r.StartAt = m.StartAt
	r.EndAt = m.EndAt
	r.Status = string(m.Status)
	r.StatusLabel = m.StatusLabel
	r.Tone = string(m.Tone)
	r.StoreName = m.StoreName
	r.UserName = m.UserName
	r.ClientName = m.ClientName
	r.SlotTitle = m.SlotTitle
	r.Note = m.Note
	r.IsUpcoming = m.IsUpcoming
}

type DashboardStatsResponse struct {
	TotalSalons          int    `json:"total_salons"`
	ActiveSalons         int    `json:"active_salons"`
	UpcomingSlots        int    `json:"upcoming_slots"`
	UpcomingReservations int    `json:"upcoming_reservations"`
	NextSlotStartAt      *int64 `json:"next_slot_start_at"`
	NextSlotStoreName    string `json:"next_slot_store_name,omitempty"`
}

func (r *DashboardStatsResponse) FromModel(m model.DashboardStats) {
	r.TotalSalons = m.TotalSalons
	r.ActiveSalons = m.ActiveSalons
	r.UpcomingSlots = m.UpcomingSlots
	r.UpcomingReservations = m.UpcomingReservations
	r.NextSlotStartAt = m.NextSlotStartAt
	r.NextSlotStoreName = m.NextSlotStoreName
}

type AdminOverviewResponse struct {
	DatasetVersion     string `json:"dataset_version"`
	Stores             int    `json:"stores"`
	Clients            int    `json:"clients"`
	Users              int    `json:"users"`
	Slots              int    `json:"slots"`
	Reservations       int    `json:"reservations"`
	Stylists           int    `json:"stylists"`
	Menus              int    `json:"menus"`
	Posts              int    `json:"posts"`
	LastUserUpdatedAt  *int64 `json:"last_user_updated_at"`
	LastStoreUpdatedAt *int64 `json:"last_store_updated_at"`
	LastUpdatedAt      int64  `json:"last_updated_at"`
}

func (r *AdminOverviewResponse) FromModel(m model.AdminOverview, version string) {
	r.DatasetVersion = version
	r.Stores = m.Stores
	r.Clients = m.Clients
	r.Users = m.Users
	r.Slots = m.Slots
	r.Reservations = m.Reservations
	r.Stylists = m.Stylists
	r.Menus = m.Menus
	r.Posts = m.Posts
	r.LastUserUpdatedAt = m.LastUserUpdatedAt
	r.LastStoreUpdatedAt = m.LastStoreUpdatedAt
	r.LastUpdatedAt = m.LastUpdatedAt
}

type PostResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Audience    string `json:"audience"`
	Status      string `json:"status"`
	Summary     string `json:"summary"`
	PublishedAt *int64 `json:"published_at"`
	gDto.Audit
}

func (r *PostResponse) FromModel(m catalog.Post) {
	r.ID = m.ID
	r.Title = m.Title
	r.Audience = m.Audience
	r.Status = string(m.Status)
	r.Summary = m.Summary
	r.PublishedAt = m.PublishedAt
	r.Audit.FromModel(m.Audit)
}

type SalonTotalsResponse struct {
	Reservations int `json:"reservations"`
	Stylists     int `json:"stylists"`
	Menus        int `json:"menus"`
	Posts        int `json:"posts"`
}

type SalonDashboardResponse struct {
	Stats             StatsResponse               `json:"stats"`
	Recent            []JoinedReservationResponse `json:"recent"`
	Totals            SalonTotalsResponse         `json:"totals"`
	ActiveStylists    int                         `json:"active_stylists"`
	PublishedMenus    int                         `json:"published_menus"`
	UpcomingPostCount int                         `json:"upcoming_post_count"`
	UpcomingPosts     []PostResponse              `json:"upcoming_posts"`
	UpdatedAt         int64                       `json:"updated_at"`
}

func (r *SalonDashboardResponse) FromModel(m model.SalonDashboard, ref int64) {
	r.Stats.FromModel(m.Stats)
	r.Recent = joinedResponses(m.Recent, ref)
	r.Totals = SalonTotalsResponse(m.Totals)
	r.ActiveStylists = m.ActiveStylists
	r.PublishedMenus = m.PublishedMenus
	r.UpcomingPostCount = m.UpcomingPostCount
	r.UpdatedAt = m.UpdatedAt

	r.UpcomingPosts = make([]PostResponse, len(m.UpcomingPosts))
	for i, p := range m.UpcomingPosts {
		r.UpcomingPosts[i].FromModel(p)
	}
}

type ReservationListResponse struct {
	Reservations []JoinedReservationResponse `json:"reservations"`
	Page         int                         `json:"page"`
	Limit        int                         `json:"limit"`
	TotalPage    int                         `json:"total_page"`
	TotalData    int                         `json:"total_data"`
}

func (r *ReservationListResponse) FromModel(m model.ReservationPage, ref int64) {
	r.Reservations = joinedResponses(m.Items, ref)
	r.Page = m.Page
	r.Limit = m.Limit
	r.TotalData = m.TotalData
	r.TotalPage = shared.CalculateTotalPage(m.TotalData, m.Limit)
}

type ClientDashboardResponse struct {
	Stats  StatsResponse          `json:"stats"`
	Users  []UserSummaryResponse  `json:"users"`
	Stores []StoreSummaryResponse `json:"stores"`
}

func (r *ClientDashboardResponse) FromModel(m model.ClientDashboard) {
	r.Stats.FromModel(m.Stats)
	r.Stores = storeSummaryResponses(m.Stores)

	r.Users = make([]UserSummaryResponse, len(m.Users))
	for i, u := range m.Users {
		r.Users[i].FromModel(u)
	}
}

type UserBundleResponse struct {
	Audience      string                       `json:"audience"`
	Now           int64                        `json:"now"`
	LastUpdatedAt int64                        `json:"last_updated_at"`
	Stores        []StoreSummaryResponse       `json:"stores"`
	Reservations  []ReservationSummaryResponse `json:"reservations"`
	Stats         DashboardStatsResponse       `json:"stats"`
}

func (r *UserBundleResponse) FromModel(m model.UserBundle) {
	r.Audience = string(m.Audience)
	r.Now = m.Now
	r.LastUpdatedAt = m.LastUpdatedAt
	r.Stores = storeSummaryResponses(m.Stores)
	r.Stats.FromModel(m.Stats)

	r.Reservations = make([]ReservationSummaryResponse, len(m.Reservations))
	for i, s := range m.Reservations {
		r.Reservations[i].FromModel(s)
	}
}
