package mapfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMapFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultOctetMapIsIdentity(t *testing.T) {
	m := Default()
	assert.Equal(t, "00000000", m.OctetMap[0x00])
	assert.Equal(t, "01100001", m.OctetMap[0x61]) // 'a'
	assert.Equal(t, "", m.CharMask)
	assert.Equal(t, "", m.BitMask)
}

// TestLoadOctetLine matches spec scenario 5's map file line.
func TestLoadOctetLine(t *testing.T) {
	path := writeMapFile(t, "# comment\n61=01001\n\n")
	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "01001", m.OctetMap[0x61])
	assert.Equal(t, "", m.OctetMap[0x62], "unlisted octets drop to empty once any octet line is present")
}

func TestLoadCharmaskAndBitmask(t *testing.T) {
	path := writeMapFile(t, "charmask=ccxx\nbitmask=xbbx\n")
	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ccxx", m.CharMask)
	assert.Equal(t, "xbbx", m.BitMask)
}

func TestLoadRejectsBadCharmask(t *testing.T) {
	path := writeMapFile(t, "charmask=ccyy\n")
	_, err := Load(path)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindCharmask, pe.Kind)
}

func TestLoadRejectsUnknownDirective(t *testing.T) {
	path := writeMapFile(t, "bogus=stuff\n")
	_, err := Load(path)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindUnknownDirective, pe.Kind)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.Error(t, err)
	var oe *OpenError
	require.ErrorAs(t, err, &oe)
}
