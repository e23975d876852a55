// Package ast defines the closed set of type nodes that schemas and
// operations are lowered into.
//
// Every schema in a document becomes one tree of Nodes. Trees are built once,
// never modified afterwards, and contain no cycles: references to other
// schemas are kept as [Ref] nodes carrying the target name only.
//
// The set of node kinds is sealed. Code that switches over a Node should
// handle every kind listed in [Kinds].
package ast

// Node is a type expression. It is implemented only by the pointer types in
// this package.
type Node interface {
	node()
}

// AtomName identifies a leaf type.
type AtomName string

const (
	AtomUnknown AtomName = "unknown"
	AtomVoid    AtomName = "void"
	AtomNull    AtomName = "null"
	AtomBoolean AtomName = "boolean"
	AtomNumber  AtomName = "number"
	AtomString  AtomName = "string"
	AtomObject  AtomName = "object"
)

// Ref refers to another named schema by reference path.
type Ref struct {
	// RefPath is the reference as written, e.g. "#/components/schemas/Pet".
	RefPath string
	// Name is the last "/" segment of RefPath.
	Name string
}

func (*Ref) node() {}

// Atom is a leaf type.
type Atom struct {
	Name AtomName
}

func (*Atom) node() {}

// Intersection requires every child to hold.
type Intersection struct {
	Children []Node
}

func (*Intersection) node() {}

// Union allows any one child to hold.
type Union struct {
	Children []Node
}

func (*Union) node() {}

// Enum is a closed set of literal values. Each case is an already-rendered
// literal token: strings are JSON-quoted, numerals appear as written.
type Enum struct {
	Cases []string
}

func (*Enum) node() {}

// Array is a homogeneous list.
type Array struct {
	Child Node
}

func (*Array) node() {}

// Object is a record with named properties in document order.
type Object struct {
	Properties []Property
}

func (*Object) node() {}

// Property is one named field of an Object.
type Property struct {
	Name      string
	Schema    Node
	Required  bool
	ReadOnly  bool
	WriteOnly bool
}

// Kind names a node variant.
type Kind string

const (
	KindRef          Kind = "ref"
	KindAtom         Kind = "atom"
	KindIntersection Kind = "intersection"
	KindUnion        Kind = "union"
	KindEnum         Kind = "enum"
	KindArray        Kind = "array"
	KindObject       Kind = "object"
)

// Kinds lists every node variant.
var Kinds = []Kind{
	KindRef,
	KindAtom,
	KindIntersection,
	KindUnion,
	KindEnum,
	KindArray,
	KindObject,
}

// KindOf returns the variant of n, or "" for nil.
func KindOf(n Node) Kind {
	switch n.(type) {
	case *Ref:
		return KindRef
	case *Atom:
		return KindAtom
	case *Intersection:
		return KindIntersection
	case *Union:
		return KindUnion
	case *Enum:
		return KindEnum
	case *Array:
		return KindArray
	case *Object:
		return KindObject
	default:
		return ""
	}
}
