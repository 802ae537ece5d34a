package uitree

import "slices"

// Path locates an element by the sequence of sibling indices from the root.
// An empty path is the root itself.
type Path []int

// Clone returns an independent copy.
func (p Path) Clone() Path { return slices.Clone(p) }

// Child returns the path extended by one sibling index.
func (p Path) Child(index int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = index
	return out
}

// PathOf computes the structural path of an element from its root.
func PathOf(el *Element) Path {
	var path Path
	for e := el; e.parent != nil; e = e.parent {
		path = append(path, e.parent.ChildIndex(e))
	}
	slices.Reverse(path)
	return path
}

// ByPath walks a path down from root. Returns nil when any index is out of
// range, which callers treat as an expired target.
func ByPath(root *Element, path Path) *Element {
	el := root
	for _, index := range path {
		if index < 0 || index >= len(el.children) {
			return nil
		}
		el = el.children[index]
	}
	return el
}
