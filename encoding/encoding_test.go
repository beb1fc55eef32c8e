package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectBOM(t *testing.T) {
	data := map[string]struct {
		input []byte
		skip  int
	}{
		"utf-8":    {[]byte{0xEF, 0xBB, 0xBF, '<', 'r', '/', '>'}, 3},
		"utf-32be": {[]byte{0x00, 0x00, 0xFE, 0xFF, 0x00}, 4},
		"utf-32le": {[]byte{0xFF, 0xFE, 0x00, 0x00, 0x3C}, 4},
		"utf-16be": {[]byte{0xFE, 0xFF, 0x00, 0x3C}, 2},
		"utf-16le": {[]byte{0xFF, 0xFE, 0x3C, 0x00}, 2},
	}
	for expected, tc := range data {
		name, skip := DetectBOM(tc.input)
		require.Equal(t, expected, name, "BOM should map to %s", expected)
		require.Equal(t, tc.skip, skip, "mark length for %s", expected)
	}

	name, skip := DetectBOM([]byte(`<r/>`))
	require.Equal(t, "utf-8", name, "no mark means raw UTF-8")
	require.Equal(t, 0, skip)
}

func TestDetectBOMOrder(t *testing.T) {
	// FF FE 00 00 is UTF-32LE, not UTF-16LE followed by two NULs
	name, skip := DetectBOM([]byte{0xFF, 0xFE, 0x00, 0x00})
	require.Equal(t, "utf-32le", name)
	require.Equal(t, 4, skip)
}

func TestLoad(t *testing.T) {
	for _, name := range []string{"utf-8", "UTF-8", "utf-16be", "utf-32le", "iso-8859-1", "euc-jp"} {
		require.NotNil(t, Load(name), "encoding %s should resolve", name)
	}
	require.Nil(t, Load("klingon"), "unknown names return nil")
}

func TestLoadDecode(t *testing.T) {
	e := Load("utf-16be")
	require.NotNil(t, e)
	decoded, err := e.NewDecoder().Bytes([]byte{0x00, '<', 0x00, 'r', 0x00, '/', 0x00, '>'})
	require.NoError(t, err)
	require.Equal(t, "<r/>", string(decoded))
}
