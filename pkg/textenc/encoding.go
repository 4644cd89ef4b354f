// Package textenc resolves character encodings by name and checks raw lines against them.
package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/aretw0/tbx/pkg/domain"
)

// DefaultName is the encoding used when none is configured.
const DefaultName = "utf-8"

var errInvalidSequence = errors.New("invalid byte sequence")

// Spellings accepted by Python codecs that the IANA and WHATWG indexes
// either lack or map differently (WHATWG reads "latin1" as windows-1252).
var aliases = map[string]encoding.Encoding{
	"utf8":      unicode.UTF8,
	"utf-8":     unicode.UTF8,
	"u8":        unicode.UTF8,
	"utf-8-sig": unicode.UTF8BOM,
	"utf8-sig":  unicode.UTF8BOM,
	"utf-16":    unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf16":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16-le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16le":  unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16-be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-16be":  unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"latin-1":   charmap.ISO8859_1,
	"latin1":    charmap.ISO8859_1,
	"l1":        charmap.ISO8859_1,
	"iso8859-1": charmap.ISO8859_1,
	"cp1252":    charmap.Windows1252,
	"cp1251":    charmap.Windows1251,
	"cp1250":    charmap.Windows1250,
	"cp437":     charmap.CodePage437,
	"cp850":     charmap.CodePage850,
}

// Encoding is a resolved character encoding.
type Encoding struct {
	name string
	enc  encoding.Encoding
	utf8 bool
}

// Lookup resolves name against Python codec spellings, then IANA names, then WHATWG labels.
// Names are case-insensitive; "_" and "-" are interchangeable.
func Lookup(name string) (Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultName
	}

	for _, k := range []string{key, strings.ReplaceAll(key, "_", "-")} {
		if enc, ok := resolve(k); ok {
			return Encoding{
				name: k,
				enc:  enc,
				utf8: enc == unicode.UTF8 || enc == unicode.UTF8BOM,
			}, nil
		}
	}
	return Encoding{}, fmt.Errorf("%w: %q", domain.ErrUnknownEncoding, name)
}

func resolve(key string) (encoding.Encoding, bool) {
	if enc, ok := aliases[key]; ok {
		return enc, true
	}
	if enc, err := ianaindex.IANA.Encoding(key); err == nil && enc != nil {
		return enc, true
	}
	if enc, err := htmlindex.Get(key); err == nil && enc != nil {
		return enc, true
	}
	return nil, false
}

// Default returns the UTF-8 encoding used when none is configured.
func Default() Encoding {
	return Encoding{name: DefaultName, enc: unicode.UTF8, utf8: true}
}

// Name returns the normalised name the encoding was looked up with.
func (e Encoding) Name() string {
	return e.name
}

// NewReader decodes r into UTF-8. Undecodable input becomes U+FFFD.
func (e Encoding) NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, e.enc.NewDecoder())
}

// Decode strictly decodes one raw line.
// Unlike NewReader it fails instead of substituting U+FFFD.
func (e Encoding) Decode(raw []byte) (string, error) {
	if e.utf8 {
		if !utf8.Valid(raw) {
			return "", errInvalidSequence
		}
	}

	out, err := e.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}

	if !e.utf8 && bytes.ContainsRune(out, utf8.RuneError) && !e.encodesReplacement(raw) {
		return "", errInvalidSequence
	}
	return string(out), nil
}

// encodesReplacement reports whether raw literally contains U+FFFD in this encoding.
func (e Encoding) encodesReplacement(raw []byte) bool {
	rep, err := e.enc.NewEncoder().Bytes([]byte("\uFFFD"))
	if err != nil {
		return false
	}
	return bytes.Contains(raw, rep)
}
