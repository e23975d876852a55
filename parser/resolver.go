package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/oasts/oaserrors"
	"go.yaml.in/yaml/v4"
)

// MaxRefDepth is the maximum length of a reference chain ($ref pointing at
// another $ref) that callers follow before treating it as circular.
const MaxRefDepth = 100

// LocalRefPrefix is the prefix every resolvable reference starts with.
const LocalRefPrefix = "#/"

// Resolver resolves local JSON pointer references against a decoded document.
//
// Only references rooted at "#/" are supported. The resolver does not detect
// cycles; it resolves one hop per call.
type Resolver struct {
	root *yaml.Node
}

// NewResolver creates a Resolver over a decoded document. root may be a
// document node or the mapping node it wraps.
func NewResolver(root *yaml.Node) *Resolver {
	if root != nil && root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	return &Resolver{root: root}
}

// Resolve returns the node at ref.
//
// A ref that is not rooted at "#/" fails with an error matching
// oaserrors.ErrInvalidReference. A ref whose path does not exist fails with
// an error matching oaserrors.ErrUnresolvedReference.
func (r *Resolver) Resolve(ref string) (*yaml.Node, error) {
	if !strings.HasPrefix(ref, LocalRefPrefix) {
		return nil, &oaserrors.ReferenceError{
			Ref:       ref,
			IsInvalid: true,
			Message:   "only local references starting with '#/' are supported",
		}
	}
	if r == nil || r.root == nil {
		return nil, &oaserrors.ReferenceError{
			Ref:          ref,
			IsUnresolved: true,
			Message:      "no document to resolve against",
		}
	}

	parts := strings.Split(strings.TrimPrefix(ref, LocalRefPrefix), "/")
	current := r.root
	for i, part := range parts {
		part = unescapeJSONPointer(part)
		current = resolveAlias(current)

		switch current.Kind {
		case yaml.MappingNode:
			next := mappingValue(current, part)
			if next == nil {
				return nil, &oaserrors.ReferenceError{
					Ref:          ref,
					IsUnresolved: true,
					Message:      fmt.Sprintf("missing key %q at #/%s", part, strings.Join(parts[:i], "/")),
				}
			}
			current = next

		case yaml.SequenceNode:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(current.Content) {
				return nil, &oaserrors.ReferenceError{
					Ref:          ref,
					IsUnresolved: true,
					Message:      fmt.Sprintf("invalid index %q for sequence of length %d", part, len(current.Content)),
				}
			}
			current = current.Content[index]

		default:
			return nil, &oaserrors.ReferenceError{
				Ref:          ref,
				IsUnresolved: true,
				Message:      fmt.Sprintf("cannot traverse into %s at #/%s", kindName(current.Kind), strings.Join(parts[:i], "/")),
			}
		}
	}
	return resolveAlias(current), nil
}

// ResolveInto resolves ref and decodes the target node into out.
func (r *Resolver) ResolveInto(ref string, out any) error {
	node, err := r.Resolve(ref)
	if err != nil {
		return err
	}
	if err := node.Decode(out); err != nil {
		return &oaserrors.ReferenceError{
			Ref:          ref,
			IsUnresolved: true,
			Message:      "target could not be decoded",
			Cause:        err,
		}
	}
	return nil
}

// RefName returns the last "/" segment of ref as written.
func RefName(ref string) string {
	if idx := strings.LastIndexByte(ref, '/'); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}

// mappingValue returns the value stored under key, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// unescapeJSONPointer unescapes a JSON Pointer token per RFC 6901.
func unescapeJSONPointer(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}
