package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSlot(t *testing.T) {
	for _, slot := range Slots {
		assert.True(t, IsValidSlot(slot), "catalog slot %q must validate", slot)
	}

	assert.False(t, IsValidSlot("99:00-100:00"))
	assert.False(t, IsValidSlot(""))
	assert.False(t, IsValidSlot("06:00 - 08:00"))
}

func TestSlotCatalogShape(t *testing.T) {
	assert.Len(t, Slots, 6)
	assert.Equal(t, "06:00-08:00", Slots[0])
	assert.Equal(t, "18:00-20:00", Slots[5])
	assert.Equal(t, 200, SlotCapacity)
}

func TestAvailabilityItemHelpers(t *testing.T) {
	full := AvailabilityItem{Slot: Slots[0], Capacity: SlotCapacity, Booked: SlotCapacity, Remaining: 0}
	assert.True(t, full.IsFull())
	assert.False(t, full.IsUntouched())
	assert.InDelta(t, 100.0, full.OccupancyRate(), 0.001)

	empty := AvailabilityItem{Slot: Slots[0], Capacity: SlotCapacity, Booked: 0, Remaining: SlotCapacity}
	assert.False(t, empty.IsFull())
	assert.True(t, empty.IsUntouched())
	assert.Zero(t, empty.OccupancyRate())

	partial := AvailabilityItem{Slot: Slots[0], Capacity: SlotCapacity, Booked: 50, Remaining: 150}
	assert.InDelta(t, 25.0, partial.OccupancyRate(), 0.001)
}
