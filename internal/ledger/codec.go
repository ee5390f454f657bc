package ledger

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Record layout, repeated with no header or trailer:
//
//	uint16 big-endian length, name bytes
//	uint16 big-endian length, difficulty bytes
//	int32  big-endian seconds

// Encode writes entries in file order.
func Encode(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if err := writeString(w, e.Name); err != nil {
			return err
		}
		if err := writeString(w, e.Difficulty); err != nil {
			return err
		}
		if e.Seconds < math.MinInt32 || e.Seconds > math.MaxInt32 {
			return fmt.Errorf("ledger: seconds %d out of range", e.Seconds)
		}
		if err := binary.Write(w, binary.BigEndian, int32(e.Seconds)); err != nil {
			return fmt.Errorf("ledger: write seconds: %w", err)
		}
	}
	return nil
}

// Decode reads records until a clean end of input.
// A record cut short is reported as io.ErrUnexpectedEOF.
func Decode(r io.Reader) ([]Entry, error) {
	var entries []Entry
	for {
		name, err := readString(r)
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return entries, err
		}

		difficulty, err := readString(r)
		if err != nil {
			return entries, noEOF(err)
		}

		var seconds int32
		if err := binary.Read(r, binary.BigEndian, &seconds); err != nil {
			return entries, fmt.Errorf("ledger: read seconds: %w", noEOF(err))
		}

		entries = append(entries, Entry{Name: name, Difficulty: difficulty, Seconds: int(seconds)})
	}
}

func writeString(w io.Writer, s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("ledger: string of %d bytes too long", len(s))
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(s))); err != nil {
		return fmt.Errorf("ledger: write length: %w", err)
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("ledger: write string: %w", err)
	}
	return nil
}

// readString returns a bare io.EOF only when nothing at all was read.
func readString(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("ledger: read length: %w", err)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("ledger: read string: %w", noEOF(err))
	}
	return string(buf), nil
}

func noEOF(err error) error {
	if errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
