package availability

import "errors"

// Validation errors raised before any network call. The mutation is
// aborted with no partial state change.
var (
	// ErrFirstDayBlocked rejects any availability mutation on the 1st
	// calendar day of a month. Hard business rule, enforced at every
	// mutation entry point.
	ErrFirstDayBlocked = errors.New("availability cannot be changed for the 1st day of a month")

	// ErrLastSlot rejects removing the final slot from the editor.
	ErrLastSlot = errors.New("at least one time slot must remain")

	// ErrSlotNotFound reports an unknown slot id.
	ErrSlotNotFound = errors.New("no time slot with that id")

	// ErrUnknownField reports an unsupported field name in UpdateSlot.
	ErrUnknownField = errors.New("unknown time slot field")

	// ErrSlotOrder rejects a slot whose end is not after its start.
	ErrSlotOrder = errors.New("time slot end must be after its start")

	// ErrSlotOverlap rejects a slot list containing overlapping ranges.
	ErrSlotOverlap = errors.New("time slots must not overlap")
)
