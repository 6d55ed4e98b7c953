package blocks

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// NewBlock creates a block of the given type with a generated id.
func NewBlock(blockType BlockType, props json.RawMessage) Block {
	return Block{
		ID:    fmt.Sprintf("block-%s", uuid.NewString()[:8]),
		Type:  blockType,
		Props: props,
	}
}

// UpdateBlock returns a copy of blocks with the matching block replaced by
// the result of apply. Unknown ids leave the list unchanged.
func UpdateBlock(blocks []Block, blockID string, apply func(Block) Block) []Block {
	updated := make([]Block, len(blocks))
	for i, block := range blocks {
		if block.ID == blockID {
			block = apply(block)
		}
		updated[i] = block
	}
	return updated
}

// RemoveBlock returns a copy of blocks without the matching block.
func RemoveBlock(blocks []Block, blockID string) []Block {
	filtered := make([]Block, 0, len(blocks))
	for _, block := range blocks {
		if block.ID != blockID {
			filtered = append(filtered, block)
		}
	}
	return filtered
}

// ReorderBlocks moves the block at fromIndex to toIndex. Out-of-range
// indices return the list unchanged.
func ReorderBlocks(blocks []Block, fromIndex, toIndex int) []Block {
	if fromIndex < 0 || fromIndex >= len(blocks) || toIndex < 0 || toIndex >= len(blocks) {
		return blocks
	}

	reordered := make([]Block, 0, len(blocks))
	reordered = append(reordered, blocks[:fromIndex]...)
	reordered = append(reordered, blocks[fromIndex+1:]...)

	moved := blocks[fromIndex]
	reordered = append(reordered[:toIndex], append([]Block{moved}, reordered[toIndex:]...)...)
	return reordered
}

// VisibleBlocks returns the blocks not marked hidden, preserving order.
func VisibleBlocks(blocks []Block) []Block {
	visible := make([]Block, 0, len(blocks))
	for _, block := range blocks {
		if !block.Hidden {
			visible = append(visible, block)
		}
	}
	return visible
}

// ToggleBlockVisibility flips the hidden flag of the matching block.
func ToggleBlockVisibility(blocks []Block, blockID string) []Block {
	return UpdateBlock(blocks, blockID, func(b Block) Block {
		b.Hidden = !b.Hidden
		return b
	})
}
