package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eventdesk/internal/model"
)

func slot(start, end string) model.TimeSlot {
	return model.TimeSlot{StartTime: start, EndTime: end, Status: model.SlotAvailable}
}

func TestValidateSlots(t *testing.T) {
	tests := []struct {
		name    string
		slots   []model.TimeSlot
		wantErr error
	}{
		{
			name: "empty list",
		},
		{
			name:  "single slot",
			slots: []model.TimeSlot{slot("09:00", "17:00")},
		},
		{
			name:  "adjacent slots do not overlap",
			slots: []model.TimeSlot{slot("09:00", "12:00"), slot("12:00", "17:00")},
		},
		{
			name:  "unsorted but valid",
			slots: []model.TimeSlot{slot("13:00", "17:00"), slot("09:00", "12:00")},
		},
		{
			name:    "end equals start",
			slots:   []model.TimeSlot{slot("09:00", "09:00")},
			wantErr: ErrSlotOrder,
		},
		{
			name:    "end before start",
			slots:   []model.TimeSlot{slot("17:00", "09:00")},
			wantErr: ErrSlotOrder,
		},
		{
			name:    "overlapping slots",
			slots:   []model.TimeSlot{slot("09:00", "13:00"), slot("12:00", "17:00")},
			wantErr: ErrSlotOverlap,
		},
		{
			name:    "contained slot",
			slots:   []model.TimeSlot{slot("09:00", "17:00"), slot("10:00", "11:00")},
			wantErr: ErrSlotOverlap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlots(tt.slots)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateSlotsMalformed(t *testing.T) {
	for _, bad := range []string{"9am", "25:00", "09:60", "0900", ""} {
		err := ValidateSlots([]model.TimeSlot{slot(bad, "17:00")})
		assert.Error(t, err, "start %q", bad)
	}
	assert.Error(t, ValidateSlots([]model.TimeSlot{slot("09:00", "17:61")}))
}

func TestParseClock(t *testing.T) {
	m, err := parseClock("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 9*60+30, m)

	m, err = parseClock("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = parseClock("23:59")
	assert.NoError(t, err)
	assert.Equal(t, 23*60+59, m)
}
