package bitfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/muurk/bitread/internal/decoder"
)

// OutputExt is appended to the input path to name the bit list.
const OutputExt = "s"

// OutputPath returns the bit list path for a bitstream path.
func OutputPath(bitstreamPath string) string {
	return bitstreamPath + OutputExt
}

// WriteBits writes one line per bit.
func WriteBits(w io.Writer, bits []decoder.Bit) error {
	bw := bufio.NewWriter(w)
	for _, b := range bits {
		if _, err := bw.WriteString(b.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteBitsFile writes bits to path atomically.
func WriteBitsFile(path string, bits []decoder.Bit) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := WriteBits(tmp, bits); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename output file: %w", err)
	}
	return nil
}
