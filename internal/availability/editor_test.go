package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/model"
)

func TestNewEditorSeedsDefaultSlot(t *testing.T) {
	e := NewEditor(day(2024, time.June, 10), nil)

	slots := e.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, DefaultSlotStart, slots[0].StartTime)
	assert.Equal(t, DefaultSlotEnd, slots[0].EndTime)
	assert.Equal(t, model.SlotAvailable, slots[0].Status)
	assert.NotEmpty(t, slots[0].ID)
	assert.False(t, e.IsFullDay())
}

func TestNewEditorSeedsFromExisting(t *testing.T) {
	existing := &model.Availability{
		IsFullDay: true,
		TimeSlots: []model.TimeSlot{
			{ID: "a", StartTime: "10:00", EndTime: "14:00", Status: model.SlotAvailable},
		},
	}
	e := NewEditor(day(2024, time.June, 10), existing)

	assert.True(t, e.IsFullDay())
	slots := e.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, "a", slots[0].ID)
}

func TestAddSlot(t *testing.T) {
	e := NewEditor(day(2024, time.June, 10), nil)

	added := e.AddSlot()
	assert.NotEmpty(t, added.ID)
	assert.Len(t, e.Slots(), 2)

	// Fresh ids every time.
	again := e.AddSlot()
	assert.NotEqual(t, added.ID, again.ID)
}

func TestRemoveSlot(t *testing.T) {
	e := NewEditor(day(2024, time.June, 10), nil)

	err := e.RemoveSlot(e.Slots()[0].ID)
	assert.ErrorIs(t, err, ErrLastSlot)

	added := e.AddSlot()
	require.NoError(t, e.RemoveSlot(added.ID))
	assert.Len(t, e.Slots(), 1)

	e.AddSlot()
	err = e.RemoveSlot("missing")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestUpdateSlot(t *testing.T) {
	e := NewEditor(day(2024, time.June, 10), nil)
	id := e.Slots()[0].ID

	require.NoError(t, e.UpdateSlot(id, FieldStartTime, "10:00"))
	require.NoError(t, e.UpdateSlot(id, FieldEndTime, "18:00"))
	require.NoError(t, e.UpdateSlot(id, FieldStatus, model.SlotUnavailable))

	s := e.Slots()[0]
	assert.Equal(t, "10:00", s.StartTime)
	assert.Equal(t, "18:00", s.EndTime)
	assert.Equal(t, model.SlotUnavailable, s.Status)

	// Edits are unchecked until save.
	assert.NoError(t, e.UpdateSlot(id, FieldEndTime, "05:00"))

	assert.ErrorIs(t, e.UpdateSlot(id, "duration", "60"), ErrUnknownField)
	assert.ErrorIs(t, e.UpdateSlot("missing", FieldStartTime, "10:00"), ErrSlotNotFound)
}

func TestToggleFullDayKeepsSlots(t *testing.T) {
	e := NewEditor(day(2024, time.June, 10), nil)
	e.AddSlot()

	e.ToggleFullDay(true)
	assert.True(t, e.IsFullDay())
	assert.Len(t, e.Slots(), 2)

	e.ToggleFullDay(false)
	assert.False(t, e.IsFullDay())
	assert.Len(t, e.Slots(), 2)
}

func TestSlotsReturnsCopy(t *testing.T) {
	e := NewEditor(day(2024, time.June, 10), nil)

	slots := e.Slots()
	slots[0].StartTime = "00:01"
	assert.Equal(t, DefaultSlotStart, e.Slots()[0].StartTime)
}

func TestEditorSave(t *testing.T) {
	backend := &recordingBackend{}
	svc := newTestService(backend)

	e := NewEditor(day(2024, time.June, 10), nil)
	id := e.Slots()[0].ID
	require.NoError(t, e.UpdateSlot(id, FieldEndTime, "12:00"))

	require.NoError(t, e.Save(context.Background(), svc))
	require.Len(t, backend.payloads, 1)

	p := backend.payloads[0]
	assert.False(t, p.IsFullDay)
	require.Len(t, p.TimeSlots, 1)
	assert.Equal(t, "12:00", p.TimeSlots[0].EndTime)
}

func TestEditorSaveValidates(t *testing.T) {
	backend := &recordingBackend{}
	svc := newTestService(backend)

	e := NewEditor(day(2024, time.June, 10), nil)
	id := e.Slots()[0].ID
	require.NoError(t, e.UpdateSlot(id, FieldEndTime, "05:00"))

	err := e.Save(context.Background(), svc)
	assert.ErrorIs(t, err, ErrSlotOrder)
	assert.Empty(t, backend.payloads)
}

func TestEditorSaveFirstOfMonth(t *testing.T) {
	backend := &recordingBackend{}
	svc := newTestService(backend)

	e := NewEditor(day(2024, time.June, 1), nil)
	err := e.Save(context.Background(), svc)
	assert.ErrorIs(t, err, ErrFirstDayBlocked)
	assert.Empty(t, backend.payloads)
}
