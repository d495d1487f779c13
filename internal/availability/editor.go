package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"eventdesk/internal/model"
)

// Editable slot fields for UpdateSlot.
const (
	FieldStartTime = "startTime"
	FieldEndTime   = "endTime"
	FieldStatus    = "status"
)

// Editor maintains the in-memory slot list for one date while the manager
// edits it, before a single wholesale save. Field updates are not
// validated here; validation runs once at save time.
type Editor struct {
	date      time.Time
	isFullDay bool
	slots     []model.TimeSlot
}

// NewEditor seeds an editor from the existing record for the date, or
// with one default slot when none exists.
func NewEditor(date time.Time, existing *model.Availability) *Editor {
	e := &Editor{date: date}
	if existing != nil {
		e.isFullDay = existing.IsFullDay
		e.slots = append(e.slots, existing.TimeSlots...)
	}
	if len(e.slots) == 0 {
		e.slots = []model.TimeSlot{defaultSlot()}
	}
	return e
}

func defaultSlot() model.TimeSlot {
	return model.TimeSlot{
		ID:        uuid.New().String(),
		StartTime: DefaultSlotStart,
		EndTime:   DefaultSlotEnd,
		Status:    model.SlotAvailable,
	}
}

// AddSlot appends a new slot with default bounds and a fresh id.
func (e *Editor) AddSlot() model.TimeSlot {
	slot := defaultSlot()
	e.slots = append(e.slots, slot)
	return slot
}

// RemoveSlot drops the slot with the given id. The last remaining slot
// cannot be removed.
func (e *Editor) RemoveSlot(id string) error {
	if len(e.slots) <= 1 {
		return ErrLastSlot
	}
	for i, s := range e.slots {
		if s.ID == id {
			e.slots = append(e.slots[:i], e.slots[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSlotNotFound, id)
}

// UpdateSlot replaces one field on the slot with the given id.
func (e *Editor) UpdateSlot(id, field, value string) error {
	for i := range e.slots {
		if e.slots[i].ID != id {
			continue
		}
		switch field {
		case FieldStartTime:
			e.slots[i].StartTime = value
		case FieldEndTime:
			e.slots[i].EndTime = value
		case FieldStatus:
			e.slots[i].Status = value
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrSlotNotFound, id)
}

// ToggleFullDay switches full-day mode. The slot list is kept in local
// state either way; it is simply ignored on save while full-day is on.
func (e *Editor) ToggleFullDay(fullDay bool) {
	e.isFullDay = fullDay
}

// IsFullDay reports the current full-day flag.
func (e *Editor) IsFullDay() bool {
	return e.isFullDay
}

// Slots returns a copy of the current slot list.
func (e *Editor) Slots() []model.TimeSlot {
	out := make([]model.TimeSlot, len(e.slots))
	copy(out, e.slots)
	return out
}

// Save packages the current state and hands it to the mutation service.
func (e *Editor) Save(ctx context.Context, svc *Service) error {
	return svc.Set(ctx, SetAvailable{
		On:        e.date,
		IsFullDay: e.isFullDay,
		Slots:     e.Slots(),
	})
}
