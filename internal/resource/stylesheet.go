package resource

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Resource is a named, reloadable unit of editor data.
type Resource interface {
	// Name returns the cache key, conventionally the file name.
	Name() string
	// Data returns the serialized form written on save.
	Data() []byte
	// Load replaces the resource contents from serialized data.
	Load(data []byte) error
}

// StyleSheet is a shared style resource backed by a JSON document of the form
//
//	{"styles": {"Button": {"color": "blue", "padding": 4}}}
//
// UI elements reference styles by name; style property edits mutate the
// document in place, so every element using the sheet observes the change.
type StyleSheet struct {
	name string
	doc  []byte
}

// NewStyleSheet creates an empty style sheet.
func NewStyleSheet(name string) *StyleSheet {
	return &StyleSheet{name: name, doc: []byte(`{"styles":{}}`)}
}

// Name returns the sheet's cache key.
func (s *StyleSheet) Name() string { return s.name }

// Data returns the current document bytes.
func (s *StyleSheet) Data() []byte { return s.doc }

// Load replaces the document. The data must carry a "styles" object.
func (s *StyleSheet) Load(data []byte) error {
	if !gjson.ValidBytes(data) || !gjson.GetBytes(data, "styles").IsObject() {
		return ErrInvalidDocument
	}
	s.doc = append([]byte(nil), data...)
	return nil
}

// Document returns the document as a string copy, suitable for capturing a
// before/after state.
func (s *StyleSheet) Document() string { return string(s.doc) }

// SetDocument replaces the whole document, used when restoring a captured
// state.
func (s *StyleSheet) SetDocument(doc string) error {
	return s.Load([]byte(doc))
}

// Property returns one property of a named style.
func (s *StyleSheet) Property(style, property string) (any, bool) {
	r := gjson.GetBytes(s.doc, "styles."+style+"."+property)
	if !r.Exists() {
		return nil, false
	}
	return r.Value(), true
}

// SetProperty writes one property of a named style into the document.
func (s *StyleSheet) SetProperty(style, property string, value any) error {
	doc, err := sjson.SetBytes(s.doc, "styles."+style+"."+property, value)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// DeleteProperty removes one property of a named style from the document.
func (s *StyleSheet) DeleteProperty(style, property string) error {
	doc, err := sjson.DeleteBytes(s.doc, "styles."+style+"."+property)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// StyleProperties returns all properties of a named style. The result is a
// decoded copy; mutating it does not touch the document.
func (s *StyleSheet) StyleProperties(style string) map[string]any {
	r := gjson.GetBytes(s.doc, "styles."+style)
	if !r.IsObject() {
		return nil
	}
	props := make(map[string]any)
	r.ForEach(func(key, value gjson.Result) bool {
		props[key.String()] = value.Value()
		return true
	})
	return props
}
