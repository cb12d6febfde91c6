package frames

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Part is the typed form of a prjxray part.json descriptor. Only the
// sections that define the frame address space are decoded.
type Part struct {
	IDCode             uint32                  `yaml:"idcode"`
	GlobalClockRegions map[string]*ClockRegion `yaml:"global_clock_regions"`
}

// ClockRegion is one half ("top" or "bottom") of the device.
type ClockRegion struct {
	Rows map[string]*Row `yaml:"rows"`
}

// Row is a clock region row, keyed by decimal row number.
type Row struct {
	ConfigurationBuses map[string]*Bus `yaml:"configuration_buses"`
}

// Bus is a configuration bus, keyed by block type name.
type Bus struct {
	ConfigurationColumns map[string]*Column `yaml:"configuration_columns"`
}

// Column is a configuration column, keyed by decimal column number.
type Column struct {
	FrameCount int `yaml:"frame_count"`
}

var halfCodes = map[string]uint32{
	"top":    HalfTop,
	"bottom": HalfBottom,
}

var blockTypeCodes = map[string]uint32{
	"CLB_IO_CLK": BlockTypeCLBIOCLK,
	"BLOCK_RAM":  BlockTypeBlockRAM,
	"CFG_CLB":    BlockTypeCFGCLB,
}

// ParsePart decodes a part.json descriptor. JSON is read through the YAML
// decoder, which accepts it as flow-style YAML.
func ParsePart(r io.Reader) (*Part, error) {
	var p Part
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty descriptor")
		}
		return nil, err
	}
	if len(p.GlobalClockRegions) == 0 {
		return nil, fmt.Errorf("descriptor has no global_clock_regions")
	}
	return &p, nil
}

// FrameCount returns the total number of frames declared by the descriptor.
func (p *Part) FrameCount() int {
	total := 0
	for _, region := range p.GlobalClockRegions {
		if region == nil {
			continue
		}
		for _, row := range region.Rows {
			if row == nil {
				continue
			}
			for _, bus := range row.ConfigurationBuses {
				if bus == nil {
					continue
				}
				for _, col := range bus.ConfigurationColumns {
					if col != nil {
						total += col.FrameCount
					}
				}
			}
		}
	}
	return total
}

// FrameAddresses walks the descriptor and returns every frame address,
// sorted ascending. Each nesting level overwrites its own address field in
// a running accumulator; each column then emits one address per minor frame.
func (p *Part) FrameAddresses() ([]Address, error) {
	var acc uint32
	out := make([]Address, 0, p.FrameCount())

	for _, halfName := range sortedKeys(p.GlobalClockRegions) {
		half, ok := halfCodes[halfName]
		if !ok {
			return nil, &DescriptorError{Section: "half", Key: halfName, Err: errors.New("unknown half marker")}
		}
		acc = setField(acc, HalfShift, HalfWidth, half)

		region := p.GlobalClockRegions[halfName]
		if region == nil {
			continue
		}
		for _, rowName := range sortedKeys(region.Rows) {
			rowNum, err := parseIndex(rowName, RowWidth)
			if err != nil {
				return nil, &DescriptorError{Section: "row", Key: rowName, Err: err}
			}
			acc = setField(acc, RowShift, RowWidth, rowNum)

			row := region.Rows[rowName]
			if row == nil {
				continue
			}
			for _, busName := range sortedKeys(row.ConfigurationBuses) {
				blockType, ok := blockTypeCodes[busName]
				if !ok {
					return nil, &DescriptorError{Section: "configuration bus", Key: busName, Err: errors.New("unknown block type")}
				}
				acc = setField(acc, BlockTypeShift, BlockTypeWidth, blockType)

				bus := row.ConfigurationBuses[busName]
				if bus == nil {
					continue
				}
				for _, colName := range sortedKeys(bus.ConfigurationColumns) {
					colNum, err := parseIndex(colName, ColumnWidth)
					if err != nil {
						return nil, &DescriptorError{Section: "column", Key: colName, Err: err}
					}
					acc = setField(acc, ColumnShift, ColumnWidth, colNum)

					col := bus.ConfigurationColumns[colName]
					if col == nil {
						continue
					}
					if col.FrameCount < 0 || col.FrameCount > 1<<MinorWidth {
						return nil, &DescriptorError{
							Section: "frame count",
							Key:     colName,
							Err:     fmt.Errorf("frame_count %d out of range", col.FrameCount),
						}
					}
					for minor := 0; minor < col.FrameCount; minor++ {
						acc = setField(acc, MinorShift, MinorWidth, uint32(minor))
						out = append(out, NewAddress(acc))
					}
				}
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Hex < out[j].Hex })
	return out, nil
}

// parseIndex parses a decimal map key that must fit in width bits.
func parseIndex(s string, width uint) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not a decimal number")
	}
	if n >= 1<<width {
		return 0, fmt.Errorf("value %d does not fit in %d bits", n, width)
	}
	return uint32(n), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
