package node_test

import (
	"testing"

	"github.com/lestrrat-go/xenon/node"
	"github.com/stretchr/testify/require"
)

func TestEntityTablePredefined(t *testing.T) {
	tbl := node.NewEntityTable()
	for name, expect := range map[string]string{
		"lt":   "<",
		"gt":   ">",
		"amp":  "&",
		"apos": "'",
		"quot": `"`,
	} {
		v, ok := tbl.Lookup(name)
		require.True(t, ok, "predefined entity %s should be seeded", name)
		require.Equal(t, expect, v)
	}
}

func TestEntityTableResolveReference(t *testing.T) {
	tbl := node.NewEntityTable()

	inputs := map[string]string{
		"amp":   "&",
		"#65":   "A",
		"#x41":  "A",
		"#x3c":  "<",
		"#1048": "И",
	}
	for ref, expect := range inputs {
		v, err := tbl.ResolveReference(ref)
		require.NoError(t, err, "reference %q should resolve", ref)
		require.Equal(t, expect, v)
	}

	for _, ref := range []string{"bogus", "#", "#x", "#xzz", "#12a", "#x110000"} {
		_, err := tbl.ResolveReference(ref)
		require.ErrorIs(t, err, node.ErrUnknownEntity, "reference %q should fail", ref)
	}
}

func TestEntityTableCustom(t *testing.T) {
	tbl := node.NewEntityTable()
	tbl.Add("copy", "©")

	v, err := tbl.Decode("say &copy; and &amp;")
	require.NoError(t, err)
	require.Equal(t, "say © and &", v)
}

func TestEncodeDecodeInverse(t *testing.T) {
	tbl := node.NewEntityTable()
	inputs := []string{
		"no specials at all",
		`&<>'"`,
		`mixed "quotes" & <tags>`,
	}
	for _, in := range inputs {
		enc := node.EncodeSpecials(in)
		dec, err := tbl.Decode(enc)
		require.NoError(t, err)
		require.Equal(t, in, dec, "decode should invert encode for %q", in)
	}
}

func TestValueEncodingStates(t *testing.T) {
	t.Run("EncodedIsPassedThrough", func(t *testing.T) {
		v := node.EncodedValue("&amp;already")
		require.Equal(t, "&amp;already", v.Encoded(), "re-encoding an encoded value is a no-op")
	})

	t.Run("DecodedIsEncodedOnDemand", func(t *testing.T) {
		v := node.DecodedValue("a & b")
		require.Equal(t, "a &amp; b", v.Encoded())
	})

	t.Run("CheckAnalyzesLazily", func(t *testing.T) {
		v := node.NewValue("plain")
		require.Equal(t, "plain", v.Encoded())
		require.Equal(t, node.StateNone, v.State(), "analysis result is remembered")
	})

	t.Run("DecodeResolves", func(t *testing.T) {
		tbl := node.NewEntityTable()
		v := node.NewValue("1 &lt; 2")
		s, err := v.Decoded(tbl)
		require.NoError(t, err)
		require.Equal(t, "1 < 2", s)
	})
}
