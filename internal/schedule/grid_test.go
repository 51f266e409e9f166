package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaflow/scheduling-service/pkg/types"
)

func TestDefaultGrid_Generates24Slots(t *testing.T) {
	grid := DefaultGrid()

	require.Equal(t, 24, grid.Len())

	slots := grid.Slots()
	assert.Equal(t, types.TimeString("08:00"), slots[0].Time)
	assert.Equal(t, types.TimeString("08:30"), slots[1].Time)
	assert.Equal(t, types.TimeString("19:30"), slots[len(slots)-1].Time)
}

func TestNewGrid_Deterministic(t *testing.T) {
	first := NewGrid(8, 20, 30)
	second := NewGrid(8, 20, 30)

	require.Equal(t, first.Len(), second.Len())
	for i, slot := range first.Slots() {
		assert.Equal(t, slot, second.Slots()[i])
	}
}

func TestNewGrid_SlotIDsUnique(t *testing.T) {
	grid := NewGrid(8, 20, 30)

	seen := make(map[types.TimeString]bool)
	for _, slot := range grid.Slots() {
		require.False(t, seen[slot.Time], "duplicate slot id %s", slot.Time)
		seen[slot.Time] = true
	}
}

func TestNewGrid_SlotMustFitBeforeClose(t *testing.T) {
	// Последний слот должен целиком помещаться до закрытия
	grid := NewGrid(9, 12, 45)

	slots := grid.Slots()
	require.Len(t, slots, 4) // 09:00 09:45 10:30 11:15
	assert.Equal(t, types.TimeString("11:15"), slots[3].Time)
}

func TestGrid_SlotFor_TruncatesToPrecedingBoundary(t *testing.T) {
	grid := DefaultGrid()

	slot, ok := grid.SlotFor(time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, types.TimeString("10:00"), slot.Time)

	slot, ok = grid.SlotFor(time.Date(2025, 5, 15, 10, 29, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, types.TimeString("10:00"), slot.Time)

	slot, ok = grid.SlotFor(time.Date(2025, 5, 15, 10, 30, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, types.TimeString("10:30"), slot.Time)
}

func TestGrid_SlotFor_OutsideWindow(t *testing.T) {
	grid := DefaultGrid()

	_, ok := grid.SlotFor(time.Date(2025, 5, 15, 7, 59, 0, 0, time.UTC))
	assert.False(t, ok)

	_, ok = grid.SlotFor(time.Date(2025, 5, 15, 20, 0, 0, 0, time.UTC))
	assert.False(t, ok)

	// Последняя минута рабочего окна принадлежит последнему слоту
	slot, ok := grid.SlotFor(time.Date(2025, 5, 15, 19, 59, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, types.TimeString("19:30"), slot.Time)
}

func TestSlotMinutes(t *testing.T) {
	grid := DefaultGrid()

	slot, ok := grid.SlotAt("10:30")
	require.True(t, ok)
	assert.Equal(t, 630, SlotMinutes(slot))
}
