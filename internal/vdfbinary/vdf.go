// Package vdfbinary parses Valve's binary VDF format.
//
// This is a vendored and modified version of github.com/TimDeve/valve-vdf-binary
// Licensed under MIT. See LICENSE file in this directory.
package vdfbinary

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	markerMap         byte = 0x00
	markerString      byte = 0x01
	markerNumber      byte = 0x02
	markerEndOfMap    byte = 0x08
	markerEndOfString byte = 0x00
)

var (
	ErrEmptyVDF     = errors.New("the vdf you are trying to parse appears empty")
	ErrNotBinaryVDF = errors.New("the vdf appears not to be binary, are you sure it is not a text vdf?")
	ErrCorruptedVDF = errors.New("reached the end of the file earlier than expected, your file might be corrupted")
)

// Map is a parsed VDF map. Keys are lowercased at parse time since Valve
// treats them case-insensitively.
type Map map[string]Value

// Value holds one of: Map, string or uint32.
type Value struct {
	v any
}

// AsMap returns the value as a Map.
func (v Value) AsMap() (Map, bool) {
	m, ok := v.v.(Map)
	return m, ok
}

// AsString returns the value as a string.
func (v Value) AsString() (string, bool) {
	s, ok := v.v.(string)
	return s, ok
}

// AsUint returns the value as a uint32.
func (v Value) AsUint() (uint32, bool) {
	n, ok := v.v.(uint32)
	return n, ok
}

func (v Value) get(key string) (Value, bool) {
	m, ok := v.AsMap()
	if !ok {
		return Value{}, false
	}
	child, ok := m[strings.ToLower(key)]
	return child, ok
}

// GetMap looks up a child map by key.
func (v Value) GetMap(key string) (Map, bool) {
	child, ok := v.get(key)
	if !ok {
		return nil, false
	}
	return child.AsMap()
}

// GetString looks up a child string by key.
func (v Value) GetString(key string) (string, bool) {
	child, ok := v.get(key)
	if !ok {
		return "", false
	}
	return child.AsString()
}

// GetUint looks up a child number by key.
func (v Value) GetUint(key string) (uint32, bool) {
	child, ok := v.get(key)
	if !ok {
		return 0, false
	}
	return child.AsUint()
}

// GetBool looks up a child number by key and reports it as a flag.
func (v Value) GetBool(key string) (bool, bool) {
	n, ok := v.GetUint(key)
	if !ok {
		return false, false
	}
	return n != 0, true
}

func Parse(r io.Reader) (Value, error) {
	buf := bufio.NewReader(r)

	byteArr, err := buf.Peek(1)
	if errors.Is(err, io.EOF) {
		return Value{}, ErrEmptyVDF
	}
	if err != nil {
		return Value{}, fmt.Errorf("peek error: %w", err)
	}

	switch byteArr[0] {
	case markerMap, markerString, markerNumber, markerEndOfMap:
	default:
		return Value{}, ErrNotBinaryVDF
	}

	p, err := parseMap(buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return Value{}, ErrCorruptedVDF
	}
	return p, err
}

func parseMap(buf *bufio.Reader) (Value, error) {
	m := make(Map)

	for {
		b, err := buf.ReadByte()
		if err != nil {
			return Value{}, fmt.Errorf("read byte error: %w", err)
		}

		if b == markerEndOfMap {
			break
		}

		key, err := parseString(buf)
		if err != nil {
			return Value{}, err
		}

		var value Value
		switch b {
		case markerMap:
			value, err = parseMap(buf)
		case markerNumber:
			value, err = parseNumber(buf)
		case markerString:
			value, err = parseStringValue(buf)
		default:
			err = fmt.Errorf("unexpected byte: 0x%02x, your file might be corrupted", b)
		}

		if err != nil {
			return Value{}, err
		}

		m[strings.ToLower(key)] = value
	}

	return Value{m}, nil
}

func parseNumber(buf *bufio.Reader) (Value, error) {
	bf := make([]byte, 4)

	if _, err := io.ReadFull(buf, bf); err != nil {
		return Value{}, fmt.Errorf("read number error: %w", err)
	}

	return Value{binary.LittleEndian.Uint32(bf)}, nil
}

func parseString(buf *bufio.Reader) (string, error) {
	s, err := buf.ReadString(markerEndOfString)
	if err == nil {
		return s[:len(s)-1], nil
	}
	return "", fmt.Errorf("read string error: %w", err)
}

func parseStringValue(buf *bufio.Reader) (Value, error) {
	s, err := parseString(buf)
	return Value{s}, err
}
