package engine

import (
	"fmt"

	catalog "salon/internal/domains/catalog/model"
	"salon/internal/domains/catalog/repository"
	"salon/internal/domains/reservation/model"
)

// IntegrityError reports a required reference that does not resolve.
type IntegrityError struct {
	Entity       string
	ID           string
	ReferencedBy string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s %q referenced by %s does not exist", e.Entity, e.ID, e.ReferencedBy)
}

// JoinOutcome is the result of resolving one reservation: exactly one of Joined, Skip or Err is set.
type JoinOutcome struct {
	Joined *model.JoinedReservation
	Skip   model.SkipReason
	Err    error
}

type Resolver struct {
	catalog repository.Catalog
}

func NewResolver(catalog repository.Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve looks up the slot, store, client and user of a reservation.
// A missing slot is a skip. A missing store or user is an IntegrityError. A missing client leaves Client nil.
func (r *Resolver) Resolve(reservation catalog.Reservation) JoinOutcome {
	slot, ok := r.catalog.Slot(reservation.SlotID)
	if !ok {
		return JoinOutcome{Skip: model.SkipReasonSlotNotFound}
	}

	store, ok := r.catalog.Store(slot.StoreID)
	if !ok {
		return JoinOutcome{Err: &IntegrityError{
			Entity:       catalog.EntityStore,
			ID:           slot.StoreID,
			ReferencedBy: catalog.EntitySlot + " " + slot.ID,
		}}
	}

	var client *catalog.Client
	if slot.HasClient() {
		if c, found := r.catalog.Client(slot.ClientID); found {
			client = &c
		}
	}

	user, ok := r.catalog.User(reservation.UserID)
	if !ok {
		return JoinOutcome{Err: &IntegrityError{
			Entity:       catalog.EntityUser,
			ID:           reservation.UserID,
			ReferencedBy: catalog.EntityReservation + " " + reservation.ID,
		}}
	}

	return JoinOutcome{Joined: &model.JoinedReservation{
		Reservation: reservation,
		Slot:        slot,
		Store:       store,
		Client:      client,
		User:        user,
	}}
}

// Join returns nil without an error when the reservation's slot is gone.
func (r *Resolver) Join(reservation catalog.Reservation) (*model.JoinedReservation, error) {
	outcome := r.Resolve(reservation)
	if outcome.Err != nil {
		return nil, outcome.Err
	}

	return outcome.Joined, nil
}

// JoinAll joins in input order and stops at the first integrity violation.
func (r *Resolver) JoinAll(reservations []catalog.Reservation) (model.JoinReport, error) {
	report := model.JoinReport{
		Joined: make([]model.JoinedReservation, 0, len(reservations)),
	}

	for _, reservation := range reservations {
		outcome := r.Resolve(reservation)

		switch {
		case outcome.Err != nil:
			return model.JoinReport{}, outcome.Err
		case outcome.Joined == nil:
			report.Skipped = append(report.Skipped, model.Skip{
				ReservationID: reservation.ID,
				SlotID:        reservation.SlotID,
				Reason:        outcome.Skip,
			})
		default:
			report.Joined = append(report.Joined, *outcome.Joined)
		}
	}

	return report, nil
}
