// Package uitree implements the editable UI element hierarchy.
//
// Elements have no stable numeric identifiers; they are located by structural
// path, the sequence of sibling indices from the root. Paths are only valid
// against the tree state they were computed for, so consumers re-resolve them
// on every use and treat a failed walk as an expired target.
//
// Styling is split three ways: an element's attributes override its instance
// defaults, which override the properties of its applied style in the shared
// default style sheet.
package uitree
