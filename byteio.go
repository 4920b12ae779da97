package paa

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// readUint16LE reads a little-endian 16-bit unsigned integer.
func readUint16LE(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	return binary.LittleEndian.Uint16(buf[:]), nil
}

// readUint32LE reads a little-endian 32-bit unsigned integer.
func readUint32LE(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	return binary.LittleEndian.Uint32(buf[:]), nil
}

// readUint24LE reads the PAA format's 3-byte little-endian unsigned integer,
// used for per-mipmap dataLength fields: bytes are [v&0xFF, (v>>8)&0xFF, (v>>16)&0xFF].
func readUint24LE(r io.Reader) (uint32, error) {
	var buf [3]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16, nil
}

// writeUint16LE writes a little-endian 16-bit unsigned integer.
func writeUint16LE(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}

// writeUint32LE writes a little-endian 32-bit unsigned integer.
func writeUint32LE(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}

// writeUint24LE writes v as the PAA format's 3-byte little-endian unsigned integer.
func writeUint24LE(w io.Writer, v uint32) error {
	buf := [3]byte{byte(v), byte(v >> 8), byte(v >> 16)}
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}

// readCountedBlock32 reads a length-prefixed (32-bit LE length) byte block.
func readCountedBlock32(r io.Reader) ([]byte, error) {
	n, err := readUint32LE(r)
	if err != nil {
		return nil, err
	}

	return readExact(r, int(n))
}

// readExact reads exactly n bytes, failing with ErrTruncated on a short read.
func readExact(r io.Reader, n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	return buf, nil
}

// peekByte returns the next byte without consuming it.
func peekByte(r *bufio.Reader) (byte, error) {
	b, err := r.Peek(1)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	return b[0], nil
}

// peekUint16LE returns the next little-endian 16-bit value without consuming it.
func peekUint16LE(r *bufio.Reader) (uint16, error) {
	b, err := r.Peek(2)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	return binary.LittleEndian.Uint16(b), nil
}
