package frames

import (
	"fmt"
	"strings"
)

// UnsupportedDeviceError reports a part name outside the supported
// Series-7 families.
type UnsupportedDeviceError struct {
	// Part is the part name that was looked up
	Part string
	// Prefixes lists the family prefixes that are supported
	Prefixes []string
}

func (e *UnsupportedDeviceError) Error() string {
	return fmt.Sprintf("unsupported device %q: only Series-7 parts are supported (%s)",
		e.Part, strings.Join(e.Prefixes, ", "))
}

// DescriptorError reports a device descriptor that could not be read or
// does not follow the expected structure.
type DescriptorError struct {
	// Path is the descriptor path inside the database
	Path string
	// Section names the part of the tree being processed (e.g. "row")
	Section string
	// Key is the offending map key, if any
	Key string
	// Underlying error
	Err error
}

func (e *DescriptorError) Error() string {
	switch {
	case e.Section != "" && e.Key != "":
		return fmt.Sprintf("device descriptor %s: %s %q: %v", e.Path, e.Section, e.Key, e.Err)
	case e.Section != "":
		return fmt.Sprintf("device descriptor %s: %s: %v", e.Path, e.Section, e.Err)
	default:
		return fmt.Sprintf("device descriptor %s: %v", e.Path, e.Err)
	}
}

func (e *DescriptorError) Unwrap() error {
	return e.Err
}
