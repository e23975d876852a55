package ast

import "strings"

// NewAtom returns a leaf node.
func NewAtom(name AtomName) *Atom {
	return &Atom{Name: name}
}

// NewRef returns a Ref whose Name is the last "/" segment of refPath.
func NewRef(refPath string) *Ref {
	return &Ref{RefPath: refPath, Name: refPath[strings.LastIndexByte(refPath, '/')+1:]}
}

// Walk calls fn for n and then for each of its descendants in document
// order. If fn returns false the children of that node are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Intersection:
		for _, c := range n.Children {
			Walk(c, fn)
		}
	case *Union:
		for _, c := range n.Children {
			Walk(c, fn)
		}
	case *Array:
		Walk(n.Child, fn)
	case *Object:
		for _, p := range n.Properties {
			Walk(p.Schema, fn)
		}
	}
}

// Refs returns the names of all schemas referenced from n, in first-seen order
// and without duplicates.
func Refs(n Node) []string {
	var names []string
	seen := make(map[string]bool)
	Walk(n, func(n Node) bool {
		if r, ok := n.(*Ref); ok && !seen[r.Name] {
			seen[r.Name] = true
			names = append(names, r.Name)
		}
		return true
	})
	return names
}
