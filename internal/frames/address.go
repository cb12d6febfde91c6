package frames

import "fmt"

// Frame address field positions
const (
	MinorShift     = 0
	MinorWidth     = 7
	ColumnShift    = 7
	ColumnWidth    = 10
	RowShift       = 17
	RowWidth       = 5
	HalfShift      = 22
	HalfWidth      = 1
	BlockTypeShift = 23
	BlockTypeWidth = 3
)

// Half values
const (
	HalfTop    = 0
	HalfBottom = 1
)

// Block types
const (
	BlockTypeCLBIOCLK = 0
	BlockTypeBlockRAM = 1
	BlockTypeCFGCLB   = 2
)

// rowKeyMask covers the row and half fields. A change in either marks a
// new clock region row in the payload.
const rowKeyMask = (1<<(RowWidth+HalfWidth) - 1) << RowShift

// Address is a frame address kept together with its 8-digit hex form.
type Address struct {
	Value uint32
	Hex   string
}

// NewAddress builds an Address from its numeric value.
func NewAddress(v uint32) Address {
	return Address{Value: v, Hex: fmt.Sprintf("%08x", v)}
}

// Minor returns the minor frame index.
func (a Address) Minor() uint32 { return field(a.Value, MinorShift, MinorWidth) }

// Column returns the column number.
func (a Address) Column() uint32 { return field(a.Value, ColumnShift, ColumnWidth) }

// Row returns the row number within its half.
func (a Address) Row() uint32 { return field(a.Value, RowShift, RowWidth) }

// Half returns HalfTop or HalfBottom.
func (a Address) Half() uint32 { return field(a.Value, HalfShift, HalfWidth) }

// BlockType returns the configuration bus block type.
func (a Address) BlockType() uint32 { return field(a.Value, BlockTypeShift, BlockTypeWidth) }

// RowKey returns bits [22:17], the half and row fields together.
func (a Address) RowKey() uint32 { return (a.Value & rowKeyMask) >> RowShift }

func (a Address) String() string { return a.Hex }

func field(v uint32, shift, width uint) uint32 {
	return (v >> shift) & (1<<width - 1)
}

// setField replaces width bits at shift with val.
func setField(v uint32, shift, width uint, val uint32) uint32 {
	mask := uint32(1<<width-1) << shift
	return v&^mask | (val<<shift)&mask
}
