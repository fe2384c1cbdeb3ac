// Package mapfile parses the entropic map-file grammar: an optional
// charmask, an optional octet-to-bit map, and an optional bitmask.
// Grounded line-for-line on entropic.c's load_map_file().
package mapfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Map is the fully-resolved result of parsing a map file (or the default,
// unmapped configuration when no -m flag was given).
type Map struct {
	// CharMask, if non-empty, is a string of 'x'/'c' characters: position
	// i of the preprocessed input is kept only if CharMask[i] == 'c'.
	CharMask string

	// BitMask, if non-empty, is a string of 'x'/'b' characters applied the
	// same way to the expanded bitstream.
	BitMask string

	// OctetMap[b] is the bit string an input octet with value b expands
	// to. The default identity map sends every octet to its own 8-bit
	// big-endian value; once any octet directive appears in a map file,
	// every octet not explicitly listed maps to the empty string (dropped
	// entirely).
	OctetMap [256]string
}

// Default returns the identity octet map with no char/bit mask: every
// octet expands to its own 8-bit big-endian value.
func Default() Map {
	var m Map
	for i := 0; i < 256; i++ {
		m.OctetMap[i] = octetBits(byte(i))
	}
	return m
}

func octetBits(b byte) string {
	buf := make([]byte, 8)
	for i := 0; i < 8; i++ {
		if b&(1<<uint(7-i)) != 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// Kind identifies which directive a ParseError was raised for.
type Kind int

const (
	KindCharmask Kind = iota
	KindBitmask
	KindUnknownDirective
)

// ParseError reports a malformed map-file line, grounded on the specific
// load_map_file() firewall that rejected it.
type ParseError struct {
	Path string
	Line int
	Kind Kind
	Text string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindCharmask:
		return fmt.Sprintf("%s:%d: charmask may only contain x and c: %q", e.Path, e.Line, e.Text)
	case KindBitmask:
		return fmt.Sprintf("%s:%d: bitmask may only contain x and b: %q", e.Path, e.Line, e.Text)
	default:
		return fmt.Sprintf("%s:%d: unknown directive: %q", e.Path, e.Line, e.Text)
	}
}

// OpenError wraps the failure to open the map file itself.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("mapfile: open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Load reads and parses the map file at path.
func Load(path string) (Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return Map{}, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	m := Default()
	seenOctetMap := false

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	linenum := 0
	for scanner.Scan() {
		linenum++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimRight(line, " \t\r\n")
		if line == "" {
			continue
		}

		if err := parseLine(path, linenum, line, &m, &seenOctetMap); err != nil {
			return Map{}, err
		}
	}
	if err := scanner.Err(); err != nil {
		return Map{}, fmt.Errorf("mapfile: read %s: %w", path, err)
	}
	return m, nil
}

func parseLine(path string, linenum int, line string, m *Map, seenOctetMap *bool) error {
	switch {
	case strings.HasPrefix(line, "charmask="):
		rest := line[len("charmask="):]
		if rest == "" || !onlyChars(rest, "xc") {
			return &ParseError{Path: path, Line: linenum, Kind: KindCharmask, Text: rest}
		}
		m.CharMask = rest

	case strings.HasPrefix(line, "bitmask="):
		rest := line[len("bitmask="):]
		if rest == "" || !onlyChars(rest, "xb") {
			return &ParseError{Path: path, Line: linenum, Kind: KindBitmask, Text: rest}
		}
		m.BitMask = rest

	case isOctetLine(line):
		if !*seenOctetMap {
			for i := range m.OctetMap {
				m.OctetMap[i] = ""
			}
			*seenOctetMap = true
		}
		octet, _ := strconv.ParseUint(line[0:2], 16, 8)
		m.OctetMap[octet] = line[3:]

	default:
		return &ParseError{Path: path, Line: linenum, Kind: KindUnknownDirective, Text: line}
	}
	return nil
}

func onlyChars(s, allowed string) bool {
	for _, r := range s {
		if !strings.ContainsRune(allowed, r) {
			return false
		}
	}
	return true
}

func isOctetLine(line string) bool {
	if len(line) < 3 || line[2] != '=' {
		return false
	}
	return isHexDigit(line[0]) && isHexDigit(line[1])
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
