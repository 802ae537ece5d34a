package uitree

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/dshills/sceneforge/internal/resource"
)

// ErrMalformedSnapshot indicates element snapshot data could not be decoded.
var ErrMalformedSnapshot = errors.New("malformed element snapshot")

// elementRecord is the serialized form of an element subtree. The top-level
// record carries the element's sibling index under its parent so a restore
// can put it back in place.
type elementRecord struct {
	Style      string          `json:"style,omitempty"`
	Index      int             `json:"index"`
	Attributes map[string]any  `json:"attributes,omitempty"`
	Defaults   map[string]any  `json:"defaults,omitempty"`
	Children   []elementRecord `json:"children,omitempty"`
}

// Save serializes the element and its subtree, recording the element's
// current sibling index.
func (e *Element) Save() ([]byte, error) {
	rec := e.record()
	if e.parent != nil {
		rec.Index = e.parent.ChildIndex(e)
	}
	return json.Marshal(rec)
}

func (e *Element) record() elementRecord {
	rec := elementRecord{
		Style:      e.style,
		Attributes: e.attrs,
		Defaults:   e.defaults,
	}
	for i, child := range e.children {
		crec := child.record()
		crec.Index = i
		rec.Children = append(rec.Children, crec)
	}
	return rec
}

// RestoreChild rebuilds an element subtree from a snapshot under parent at
// the snapshot's recorded sibling index. The given style sheet, if any,
// becomes the subtree's default style. Observers see a single element-added
// notification for the subtree root.
func RestoreChild(parent *Element, data []byte, sheet *resource.StyleSheet) (*Element, error) {
	var rec elementRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	el := build(&rec)
	el.sheet = sheet
	parent.attach(el, rec.Index)
	parent.Root().notifyAdded(el)
	return el, nil
}

func build(rec *elementRecord) *Element {
	el := &Element{
		style:    rec.Style,
		attrs:    rec.Attributes,
		defaults: rec.Defaults,
	}
	if el.attrs == nil {
		el.attrs = make(map[string]any)
	}
	for i := range rec.Children {
		child := build(&rec.Children[i])
		child.parent = el
		el.children = append(el.children, child)
	}
	return el
}
