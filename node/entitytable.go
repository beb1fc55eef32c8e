package node

import (
	"strconv"
	"strings"

	"github.com/lestrrat-go/xenon/internal/orderedmap"
)

const escapeSet = "&<>\"'"

// EntityTable maps an entity name to its replacement text. Custom
// entities declared in a DOCTYPE internal subset are added to the
// table of the document being parsed.
type EntityTable struct {
	entities *orderedmap.Map[string, string]
}

// NewEntityTable returns a table pre-seeded with the five predefined
// entities
func NewEntityTable() *EntityTable {
	t := &EntityTable{
		entities: orderedmap.New[string, string](),
	}
	t.entities.Replace("lt", "<")
	t.entities.Replace("gt", ">")
	t.entities.Replace("amp", "&")
	t.entities.Replace("apos", "'")
	t.entities.Replace("quot", `"`)
	return t
}

func (t *EntityTable) Add(name, replacement string) {
	t.entities.Replace(name, replacement)
}

func (t *EntityTable) Lookup(name string) (string, bool) {
	return t.entities.Get(name)
}

// ResolveReference resolves the portion of an entity reference between
// '&' and ';'. Character references take the forms #N (decimal) and
// #xH (hex); anything else is a named lookup in the table.
func (t *EntityTable) ResolveReference(ref string) (string, error) {
	if strings.HasPrefix(ref, "#") {
		var n uint64
		var err error
		if strings.HasPrefix(ref, "#x") || strings.HasPrefix(ref, "#X") {
			n, err = strconv.ParseUint(ref[2:], 16, 32)
		} else {
			n, err = strconv.ParseUint(ref[1:], 10, 32)
		}
		if err != nil {
			return "", ErrUnknownEntity
		}
		r := rune(n)
		if !IsChar(r) {
			return "", ErrUnknownEntity
		}
		return string(r), nil
	}

	v, ok := t.entities.Get(ref)
	if !ok {
		return "", ErrUnknownEntity
	}
	return v, nil
}

// Decode resolves every entity and character reference in s
func (t *EntityTable) Decode(s string) (string, error) {
	if strings.IndexByte(s, '&') < 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for {
		i := strings.IndexByte(s, '&')
		if i < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:i])
		s = s[i+1:]

		j := strings.IndexByte(s, ';')
		if j < 0 {
			return "", ErrUnknownEntity
		}
		v, err := t.ResolveReference(s[:j])
		if err != nil {
			return "", err
		}
		b.WriteString(v)
		s = s[j+1:]
	}
	return b.String(), nil
}

// EncodeSpecials escapes the five predefined specials. This always
// applies regardless of table contents.
func EncodeSpecials(s string) string {
	if strings.IndexAny(s, escapeSet) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '\'':
			b.WriteString("&apos;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
