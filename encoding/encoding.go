// Package encoding wraps around the various encoding stuff in
// golang.org/x/text/encoding. Part of the reason this exists is that
// the package names such as "unicode" clash with the stdlib, and
// it's rather easier if we just hide it from xenon
package encoding

import (
	"bytes"
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Byte order marks, probed longest-first so the UTF-32 marks are not
// mistaken for their UTF-16 prefixes
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// DetectBOM sniffs the byte order mark at the head of b. It returns
// the canonical encoding name and the number of bytes the mark
// occupies; input without a mark is reported as plain UTF-8.
func DetectBOM(b []byte) (string, int) {
	switch {
	case bytes.HasPrefix(b, bomUTF8):
		return "utf-8", len(bomUTF8)
	case bytes.HasPrefix(b, bomUTF32BE):
		return "utf-32be", len(bomUTF32BE)
	case bytes.HasPrefix(b, bomUTF32LE):
		return "utf-32le", len(bomUTF32LE)
	case bytes.HasPrefix(b, bomUTF16BE):
		return "utf-16be", len(bomUTF16BE)
	case bytes.HasPrefix(b, bomUTF16LE):
		return "utf-16le", len(bomUTF16LE)
	}
	return "utf-8", 0
}

// Load resolves an encoding name (as found in an XML declaration or
// from BOM sniffing) to a decoder. Unknown names return nil.
func Load(name string) enc.Encoding {
	switch strings.ToLower(name) {
	case "utf8", "utf-8":
		return unicode.UTF8
	case "utf-16be", "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "utf-16le", "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf-32be", "utf32be":
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	case "utf-32le", "utf32le":
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	case "euc-jp":
		return japanese.EUCJP
	case "shift_jis", "shift-jis", "shiftjis", "cp932":
		return japanese.ShiftJIS
	case "jis", "iso-2022-jp":
		return japanese.ISO2022JP
	case "big5":
		return traditionalchinese.Big5
	case "euc-kr":
		return korean.EUCKR
	case "hz-gb2312":
		return simplifiedchinese.HZGB2312
	case "cp437":
		return charmap.CodePage437
	case "cp866":
		return charmap.CodePage866
	case "iso-8859-2":
		return charmap.ISO8859_2
	case "iso-8859-3":
		return charmap.ISO8859_3
	case "iso-8859-4":
		return charmap.ISO8859_4
	case "iso-8859-5":
		return charmap.ISO8859_5
	case "iso-8859-6":
		return charmap.ISO8859_6
	case "iso-8859-7":
		return charmap.ISO8859_7
	case "iso-8859-8":
		return charmap.ISO8859_8
	case "iso-8859-10":
		return charmap.ISO8859_10
	case "iso-8859-13":
		return charmap.ISO8859_13
	case "iso-8859-14":
		return charmap.ISO8859_14
	case "iso-8859-15":
		return charmap.ISO8859_15
	case "iso-8859-16":
		return charmap.ISO8859_16
	case "koi8r":
		return charmap.KOI8R
	case "koi8u":
		return charmap.KOI8U
	case "macintosh":
		return charmap.Macintosh
	case "windows1250":
		return charmap.Windows1250
	case "windows1251":
		return charmap.Windows1251
	case "iso-8859-1", "windows1252":
		return charmap.Windows1252
	case "windows1253":
		return charmap.Windows1253
	case "windows1254":
		return charmap.Windows1254
	case "windows1255":
		return charmap.Windows1255
	case "windows1256":
		return charmap.Windows1256
	case "windows1257":
		return charmap.Windows1257
	case "windows1258":
		return charmap.Windows1258
	case "windows874":
		return charmap.Windows874
	}
	return nil
}
