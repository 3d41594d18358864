package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/hexil/engine/renderer/metadata"
	"github.com/spaghettifunk/hexil/engine/renderer/selection"
	"github.com/spaghettifunk/hexil/engine/renderer/selection/selectiontest"
)

func TestSelectQueueFamily(t *testing.T) {
	const (
		gfx  = metadata.QueueGraphics | metadata.QueueCompute | metadata.QueueTransfer
		xfer = metadata.QueueTransfer
		comp = metadata.QueueCompute | metadata.QueueTransfer
	)

	tests := []struct {
		name     string
		families []metadata.QueueFamily
		flag     metadata.QueueFlags
		index    uint32
		found    bool
	}{
		{
			name:     "no families",
			families: nil,
			flag:     metadata.QueueGraphics,
		},
		{
			name:     "largest transfer family wins",
			families: []metadata.QueueFamily{selectiontest.Family(0, 16, gfx), selectiontest.Family(1, 2, xfer), selectiontest.Family(2, 8, comp)},
			flag:     metadata.QueueTransfer,
			index:    0,
			found:    true,
		},
		{
			name:     "graphics ignores transfer only families",
			families: []metadata.QueueFamily{selectiontest.Family(0, 1, xfer), selectiontest.Family(1, 1, gfx)},
			flag:     metadata.QueueGraphics,
			index:    1,
			found:    true,
		},
		{
			name:     "ties go to the first family",
			families: []metadata.QueueFamily{selectiontest.Family(0, 4, comp), selectiontest.Family(1, 4, xfer)},
			flag:     metadata.QueueTransfer,
			index:    0,
			found:    true,
		},
		{
			name:     "index comes from the descriptor",
			families: []metadata.QueueFamily{selectiontest.Family(3, 1, xfer), selectiontest.Family(7, 2, xfer)},
			flag:     metadata.QueueTransfer,
			index:    7,
			found:    true,
		},
		{
			name:     "no graphics family",
			families: []metadata.QueueFamily{selectiontest.Family(0, 4, xfer), selectiontest.Family(1, 4, comp)},
			flag:     metadata.QueueGraphics,
		},
		{
			name:     "empty family never qualifies",
			families: []metadata.QueueFamily{selectiontest.Family(0, 0, gfx)},
			flag:     metadata.QueueGraphics,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, found := selection.SelectQueueFamily(tt.families, tt.flag)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.index, index)
			}
		})
	}
}

func TestSelectQueueFamilyShared(t *testing.T) {
	families := []metadata.QueueFamily{selectiontest.Family(0, 1, metadata.QueueGraphics|metadata.QueueTransfer)}

	graphics, ok := selection.SelectQueueFamily(families, metadata.QueueGraphics)
	assert.True(t, ok)
	transfer, ok := selection.SelectQueueFamily(families, metadata.QueueTransfer)
	assert.True(t, ok)
	assert.Equal(t, graphics, transfer)
}
