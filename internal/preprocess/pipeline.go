// Package preprocess turns a raw record into a sequence of 0/1 bit octets,
// in the exact order entropic.c's pre_process() applies its transforms:
// newline trim, cookie trim, character mask, octet-to-bit expansion, bit
// mask.
package preprocess

import (
	"bytes"

	"github.com/lcn2/entropic/internal/mapfile"
)

// Pipeline holds the per-run preprocessing configuration: whether to strip
// trailing newlines, whether to apply cookie-style trimming, and the
// char/octet/bit maps to apply.
type Pipeline struct {
	KeepNewline bool
	CookieTrim  bool
	Map         mapfile.Map
}

// Process runs rec through the pipeline and returns a slice of bytes, each
// either 0x00 or 0x01, ready for the Updater. A nil/empty result means the
// record produced no bits and should be skipped, matching pre_process()'s
// "<= 0 means drop" contract.
func (p Pipeline) Process(rec []byte) []byte {
	if len(rec) == 0 {
		return nil
	}

	data := rec
	if !p.KeepNewline {
		data = trimNewline(data)
	}
	if len(data) == 0 {
		return nil
	}

	if p.CookieTrim {
		data = cookieTrim(data)
		if data == nil {
			return nil
		}
	}

	if p.Map.CharMask != "" {
		data = applyCharMask(data, p.Map.CharMask)
	}
	if len(data) == 0 {
		return nil
	}

	bits := expandOctets(data, &p.Map.OctetMap)
	if len(bits) == 0 {
		return nil
	}

	if p.Map.BitMask != "" {
		bits = applyBitMask(bits, p.Map.BitMask)
	}
	return bits
}

// trimNewline removes one trailing \n, \r\n, \n\r, or \r.
func trimNewline(data []byte) []byte {
	n := len(data)
	if n == 0 {
		return data
	}
	switch data[n-1] {
	case '\n':
		n--
		if n > 0 && data[n-1] == '\r' {
			n--
		}
	case '\r':
		n--
		if n > 0 && data[n-1] == '\n' {
			n--
		}
	}
	return data[:n]
}

// cookieTrim keeps only the text between the first '=' and the following
// first ';'; if either is missing the whole record is dropped.
func cookieTrim(data []byte) []byte {
	eq := bytes.IndexByte(data, '=')
	if eq < 0 {
		return nil
	}
	rest := data[eq+1:]
	semi := bytes.IndexByte(rest, ';')
	if semi < 0 {
		return nil
	}
	return rest[:semi]
}

// applyCharMask keeps data[j] wherever mask[j] == 'c', over the shared
// prefix of data and mask; anything past the shorter of the two is
// dropped, matching pre_process()'s bound on the charmask walk.
func applyCharMask(data []byte, mask string) []byte {
	limit := len(mask)
	if len(data) < limit {
		limit = len(data)
	}
	out := make([]byte, 0, limit)
	for j := 0; j < limit; j++ {
		if mask[j] == 'c' {
			out = append(out, data[j])
		}
	}
	return out
}

// expandOctets maps every input octet to its bit string and flattens the
// result into a byte per bit, 0x01 for '1' and 0x00 for anything else.
func expandOctets(data []byte, octetMap *[256]string) []byte {
	out := make([]byte, 0, len(data)*8)
	for _, b := range data {
		for _, c := range octetMap[b] {
			if c == '1' {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}
	return out
}

// applyBitMask is applyCharMask's counterpart over the expanded bitstream.
func applyBitMask(bits []byte, mask string) []byte {
	limit := len(mask)
	if len(bits) < limit {
		limit = len(bits)
	}
	out := make([]byte, 0, limit)
	for j := 0; j < limit; j++ {
		if mask[j] == 'b' {
			out = append(out, bits[j])
		}
	}
	return out
}
