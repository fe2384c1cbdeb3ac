package preprocess

import (
	"strings"
	"testing"

	"github.com/lcn2/entropic/internal/mapfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bitsOf(s string) []byte {
	out := make([]byte, len(s))
	for i, c := range s {
		if c == '1' {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
	return out
}

func TestProcessDefaultIdentityOctetMap(t *testing.T) {
	p := Pipeline{Map: mapfile.Default()}
	got := p.Process([]byte("0\n"))
	// '0' is 0x30 == 00110000
	assert.Equal(t, bitsOf("00110000"), got)
}

func TestProcessTrimsNewlineVariants(t *testing.T) {
	p := Pipeline{Map: mapfile.Default()}
	for _, rec := range []string{"0\n", "0\r\n", "0\n\r", "0\r"} {
		got := p.Process([]byte(rec))
		assert.Equal(t, bitsOf("00110000"), got, "record %q", rec)
	}
}

func TestProcessKeepsNewlineWhenConfigured(t *testing.T) {
	p := Pipeline{KeepNewline: true, Map: mapfile.Default()}
	got := p.Process([]byte("0\n"))
	// '0' (00110000) followed by '\n' == 0x0a (00001010)
	assert.Equal(t, bitsOf("00110000"+"00001010"), got)
}

// TestProcessCookieTrim matches spec scenario 4.
func TestProcessCookieTrim(t *testing.T) {
	p := Pipeline{CookieTrim: true, Map: mapfile.Default()}
	rec := []byte("ts: Set-Cookie: N=abcd1234; path=/\n")
	got := p.Process(rec)

	want := Pipeline{Map: mapfile.Default()}.Process([]byte("abcd1234"))
	assert.Equal(t, want, got)
}

func TestProcessCookieTrimDropsLineWithoutDelimiters(t *testing.T) {
	p := Pipeline{CookieTrim: true, Map: mapfile.Default()}
	assert.Nil(t, p.Process([]byte("no equals or semicolon here\n")))
	assert.Nil(t, p.Process([]byte("has = but no semicolon\n")))
}

// TestProcessMapFileOctetLine matches spec scenario 5: a map line mapping
// 'a' (0x61) to "01001" over input "aaaa".
func TestProcessMapFileOctetLine(t *testing.T) {
	m := mapfile.Default()
	for i := range m.OctetMap {
		m.OctetMap[i] = ""
	}
	m.OctetMap[0x61] = "01001"
	p := Pipeline{Map: m}

	got := p.Process([]byte("aaaa"))
	assert.Equal(t, bitsOf(strings.Repeat("01001", 4)), got)
}

func TestProcessEmptyRecordYieldsNil(t *testing.T) {
	p := Pipeline{Map: mapfile.Default()}
	require.Nil(t, p.Process(nil))
	require.Nil(t, p.Process([]byte("\n")))
}

func TestProcessCharAndBitMask(t *testing.T) {
	m := mapfile.Default()
	m.CharMask = "xcxc"
	m.BitMask = strings.Repeat("xb", 8)
	p := Pipeline{Map: m}

	got := p.Process([]byte("abcd"))
	// charmask keeps 'b' and 'd' (positions 1 and 3)
	kept := Pipeline{Map: mapfile.Default()}.Process([]byte("bd"))
	var want []byte
	for i, b := range kept {
		if i%2 == 1 {
			want = append(want, b)
		}
	}
	assert.Equal(t, want, got)
}
