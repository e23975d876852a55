package extractor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/erraggy/oasts/oaserrors"
	"github.com/erraggy/oasts/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func nodeFromYAML(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	require.NotEmpty(t, doc.Content)
	return doc.Content[0]
}

func TestDerefPassThrough(t *testing.T) {
	t.Run("nil value", func(t *testing.T) {
		got, err := deref[parser.Parameter](nil, nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("inline value is returned as is", func(t *testing.T) {
		p := &parser.Parameter{Name: "id", In: parser.ParamInPath}
		got, err := deref(nil, p)
		require.NoError(t, err)
		assert.Same(t, p, got)
	})

	t.Run("reference without resolver", func(t *testing.T) {
		_, err := deref(nil, &parser.Response{Ref: "#/components/responses/Error"})
		var refErr *oaserrors.ReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.True(t, refErr.IsUnresolved)
	})
}

func TestDerefFollowsChain(t *testing.T) {
	nodes := map[string]string{
		"#/a": "$ref: '#/b'",
		"#/b": "{name: limit, in: query, schema: {type: integer}}",
	}
	var calls []string
	r := ResolverFunc(func(ref string) (*yaml.Node, error) {
		calls = append(calls, ref)
		return nodeFromYAML(t, nodes[ref]), nil
	})

	got, err := deref(r, &parser.Parameter{Ref: "#/a"})
	require.NoError(t, err)
	assert.Equal(t, "limit", got.Name)
	assert.Equal(t, parser.ParamInQuery, got.In)
	assert.Empty(t, got.Ref)
	assert.Equal(t, []string{"#/a", "#/b"}, calls)
}

func TestDerefCircular(t *testing.T) {
	t.Run("self reference", func(t *testing.T) {
		r := ResolverFunc(func(string) (*yaml.Node, error) {
			return nodeFromYAML(t, "$ref: '#/loop'"), nil
		})
		_, err := deref(r, &parser.RequestBody{Ref: "#/loop"})
		var refErr *oaserrors.ReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.True(t, refErr.IsCircular)
		assert.True(t, errors.Is(err, oaserrors.ErrCircularReference))
	})

	t.Run("chain longer than the hop limit", func(t *testing.T) {
		hops := 0
		r := ResolverFunc(func(string) (*yaml.Node, error) {
			hops++
			return nodeFromYAML(t, fmt.Sprintf("$ref: '#/n%d'", hops)), nil
		})
		_, err := deref(r, &parser.Response{Ref: "#/n0"})
		var refErr *oaserrors.ReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.True(t, refErr.IsCircular)
		assert.Equal(t, parser.MaxRefDepth, hops)
	})
}

func TestDerefFailures(t *testing.T) {
	t.Run("resolver error is returned", func(t *testing.T) {
		want := &oaserrors.ReferenceError{Ref: "#/x", IsUnresolved: true}
		r := ResolverFunc(func(string) (*yaml.Node, error) { return nil, want })
		_, err := deref(r, &parser.Parameter{Ref: "#/x"})
		assert.Same(t, want, err)
	})

	t.Run("null target", func(t *testing.T) {
		r := ResolverFunc(func(string) (*yaml.Node, error) { return nodeFromYAML(t, "~"), nil })
		_, err := deref(r, &parser.Parameter{Ref: "#/x"})
		assert.True(t, errors.Is(err, oaserrors.ErrUnresolvedReference))
	})

	t.Run("target of the wrong shape", func(t *testing.T) {
		r := ResolverFunc(func(string) (*yaml.Node, error) { return nodeFromYAML(t, "[1, 2]"), nil })
		_, err := deref(r, &parser.Response{Ref: "#/x"})
		var refErr *oaserrors.ReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.True(t, refErr.IsUnresolved)
		assert.NotNil(t, refErr.Cause)
	})
}
