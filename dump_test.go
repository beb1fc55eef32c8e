package xenon_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lestrrat-go/xenon"
	"github.com/stretchr/testify/require"
)

func TestSaveFile(t *testing.T) {
	doc, err := xenon.ParseString(`<?xml version="1.0"?><r><c>v</c></r>`)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.xml")
	require.NoError(t, xenon.SaveFile(path, doc, false))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `<?xml version="1.0"?><r><c>v</c></r>`, string(b),
		"compact save writes the document verbatim")

	reloaded, err := xenon.ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, "r", reloaded.DocumentElement().Name())
}

func TestSaveFilePretty(t *testing.T) {
	doc, err := xenon.ParseString(`<r><c>v</c><d/></r>`)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.xml")
	require.NoError(t, xenon.SaveFile(path, doc, true))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "<r>\n  <c>v</c>\n  <d/>\n</r>\n", string(b))

	// formatted output still parses to an equivalent tree
	reloaded, err := xenon.ParseFile(path)
	require.NoError(t, err)
	out, err := xenon.Serialize(reloaded, false)
	require.NoError(t, err)
	require.Equal(t, `<r><c>v</c><d/></r>`, out)
}
