package node

// Declaration represents the <?xml version="1.0" ...?> document
// declaration. Its version, encoding and standalone pseudo
// attributes live in the regular attribute list so that order is
// preserved on output.
type Declaration struct {
	treeNode
}

var _ Node = (*Declaration)(nil)

func (*Declaration) Type() NodeType {
	return DeclarationNodeType
}

func (d *Declaration) attributeValue(name string) string {
	if a := findAttribute(d, name, cmpExact); a != nil {
		return a.Value()
	}
	return ""
}

func (d *Declaration) setAttribute(name, value string) {
	if a := findAttribute(d, name, cmpExact); a != nil {
		a.SetValue(value)
		return
	}
	a := d.doc.CreateAttribute(name, value)
	_ = appendAttribute(d, a)
}

func (d *Declaration) Version() string {
	return d.attributeValue("version")
}

// SetVersion sets the version pseudo attribute; the value must match
// the XML version-string grammar
func (d *Declaration) SetVersion(v string) error {
	if v == "" {
		return ErrInvalidVersion
	}
	for _, r := range v {
		if !IsVersionChar(r) {
			return ErrInvalidVersion
		}
	}
	d.setAttribute("version", v)
	return nil
}

func (d *Declaration) Encoding() string {
	return d.attributeValue("encoding")
}

func (d *Declaration) SetEncoding(v string) {
	d.setAttribute("encoding", v)
}

func (d *Declaration) Standalone() string {
	return d.attributeValue("standalone")
}

// SetStandalone sets the standalone pseudo attribute; any value
// other than "yes" or "no" is rejected
func (d *Declaration) SetStandalone(v string) error {
	if v != "yes" && v != "no" {
		return ErrInvalidStandalone
	}
	d.setAttribute("standalone", v)
	return nil
}
