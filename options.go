package xenon

import (
	"github.com/lestrrat-go/option"
	"github.com/lestrrat-go/xenon/node"
	"github.com/lestrrat-go/xenon/sax"
)

type Option = option.Interface

type identSAX struct{}
type identParseFlags struct{}
type identEncoding struct{}
type identUserData struct{}

// WithSAX registers the callback handler invoked per node during
// parse. Registering a handler implies ParseOptionUseSAX.
func WithSAX(h *sax.Handler) Option {
	return option.New(identSAX{}, h)
}

// WithParseFlags adds parse option flags (they accumulate across
// repeated uses)
func WithParseFlags(o node.ParseOption) Option {
	return option.New(identParseFlags{}, o)
}

// WithEncoding names the encoding the input bytes are decoded from,
// overriding BOM sniffing and any encoding named in the XML
// declaration
func WithEncoding(name string) Option {
	return option.New(identEncoding{}, name)
}

// WithUserData sets the opaque value handed to every SAX callback
func WithUserData(v interface{}) Option {
	return option.New(identUserData{}, v)
}
