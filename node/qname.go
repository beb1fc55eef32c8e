package node

import "strings"

const (
	// XMLNamespaceURI is the URI bound to the reserved "xml" prefix
	XMLNamespaceURI = "http://www.w3.org/XML/1998/namespace"
	// XMLNSNamespaceURI is the URI bound to the reserved "xmlns" prefix
	XMLNSNamespaceURI = "http://www.w3.org/2000/xmlns/"
)

// QName holds the qualified name of a node. Namespaces are recognized
// structurally by prefix splitting; no namespace well-formedness
// validation is performed beyond the reserved xml/xmlns handling.
type QName struct {
	prefix string
	local  string
	uri    string
}

// splitName splits a raw name at the first ':' into prefix and local part
func splitName(name string) (prefix, local string) {
	if i := strings.IndexByte(name, ':'); i > 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

func (q QName) Prefix() string {
	return q.prefix
}

func (q QName) LocalName() string {
	return q.local
}

func (q QName) URI() string {
	return q.uri
}

// Name returns the full name, prefix:local if a prefix is present
func (q QName) Name() string {
	if q.prefix == "" {
		return q.local
	}
	return q.prefix + ":" + q.local
}

// resolveURI derives the namespace URI for a prefix/local pair. The
// reserved xml and xmlns prefixes resolve to their fixed URIs; anything
// else takes the owning document's default URI.
func resolveURI(doc *Document, prefix, local string) string {
	if prefix == "xmlns" || (prefix == "" && local == "xmlns") {
		return XMLNSNamespaceURI
	}
	if prefix == "xml" {
		return XMLNamespaceURI
	}
	if doc != nil {
		return doc.defaultURI
	}
	return ""
}
