package extractor

import (
	"fmt"

	"github.com/erraggy/oasts/oaserrors"
	"github.com/erraggy/oasts/parser"
	"go.yaml.in/yaml/v4"
)

// Resolver returns the node a local reference points at.
// *parser.Resolver satisfies it.
type Resolver interface {
	Resolve(ref string) (*yaml.Node, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(ref string) (*yaml.Node, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(ref string) (*yaml.Node, error) {
	return f(ref)
}

var _ Resolver = (*parser.Resolver)(nil)

// referable lists the document objects that may be written as a $ref.
type referable interface {
	parser.PathItem | parser.Parameter | parser.RequestBody | parser.Response
}

// refOf returns the $ref of a referable object, or "".
func refOf[T referable](v *T) string {
	switch v := any(v).(type) {
	case *parser.PathItem:
		return v.Ref
	case *parser.Parameter:
		return v.Ref
	case *parser.RequestBody:
		return v.Ref
	case *parser.Response:
		return v.Ref
	}
	return ""
}

// deref follows v's $ref chain until it reaches an object that is not a
// reference. Chains longer than parser.MaxRefDepth, or that revisit a ref,
// fail as circular.
func deref[T referable](r Resolver, v *T) (*T, error) {
	if v == nil {
		return nil, nil
	}
	ref := refOf(v)
	if ref == "" {
		return v, nil
	}
	if r == nil {
		return nil, &oaserrors.ReferenceError{Ref: ref, IsUnresolved: true, Message: "no resolver configured"}
	}

	seen := make(map[string]bool)
	for depth := 0; ref != ""; depth++ {
		if depth >= parser.MaxRefDepth || seen[ref] {
			return nil, &oaserrors.ReferenceError{
				Ref:        ref,
				IsCircular: true,
				Message:    fmt.Sprintf("reference chain does not terminate after %d hops", depth),
			}
		}
		seen[ref] = true

		node, err := r.Resolve(ref)
		if err != nil {
			return nil, err
		}
		if node == nil || node.ShortTag() == "!!null" {
			return nil, &oaserrors.ReferenceError{Ref: ref, IsUnresolved: true, Message: "target is null"}
		}
		next := new(T)
		if err := node.Decode(next); err != nil {
			return nil, &oaserrors.ReferenceError{
				Ref:          ref,
				IsUnresolved: true,
				Message:      "target could not be decoded",
				Cause:        err,
			}
		}
		v = next
		ref = refOf(v)
	}
	return v, nil
}
