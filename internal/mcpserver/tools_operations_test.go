package mcpserver

import (
	"context"
	"testing"

	"github.com/erraggy/oasts/internal/testutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listOperations(t *testing.T, input listOperationsInput) listOperationsOutput {
	t.Helper()
	if input.Spec == (specInput{}) {
		input.Spec = specInput{Content: testutil.PetStoreSpec}
	}
	result, output, err := handleListOperations(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result, "unexpected error result")
	return output
}

func TestListOperationsTool_Signatures(t *testing.T) {
	output := listOperations(t, listOperationsInput{})

	assert.Equal(t, 3, output.Total)
	require.Len(t, output.Operations, 3)
	assert.Contains(t, output.Issues[0], "paths./pets.get.parameters[1]")

	list := output.Operations[0]
	assert.Equal(t, "listPets", list.OperationID)
	assert.Equal(t, "void", list.Params)
	assert.Equal(t, `{ "limit"?: number; }`, list.Query)
	assert.Empty(t, list.Body)
	assert.Equal(t, []mediaTypeSummary{
		{Status: "200", MediaType: "application/json", Type: "Array<Pet>"},
		{Status: "default", MediaType: "application/json", Type: "Error"},
	}, list.Responses)

	create := output.Operations[1]
	assert.Equal(t, []mediaTypeSummary{{MediaType: "application/json", Type: "NewPet"}}, create.Body)

	del := output.Operations[2]
	assert.Equal(t, "deletePetsPetId", del.OperationID)
	assert.Equal(t, `{ "petId": number; }`, del.Params)
	assert.True(t, del.Deprecated)
}

func TestListOperationsTool_Filters(t *testing.T) {
	t.Run("method", func(t *testing.T) {
		output := listOperations(t, listOperationsInput{Method: "POST"})
		require.Len(t, output.Operations, 1)
		assert.Equal(t, "createPet", output.Operations[0].OperationID)
	})

	t.Run("path glob", func(t *testing.T) {
		output := listOperations(t, listOperationsInput{Path: "/pets/*"})
		require.Len(t, output.Operations, 1)
		assert.Equal(t, "/pets/{petId}", output.Operations[0].Path)
	})

	t.Run("tag", func(t *testing.T) {
		output := listOperations(t, listOperationsInput{Tag: "PETS"})
		assert.Equal(t, 1, output.Matched)
	})

	t.Run("group by method", func(t *testing.T) {
		output := listOperations(t, listOperationsInput{GroupBy: "method"})
		assert.Equal(t, []groupCount{
			{Key: "delete", Count: 1},
			{Key: "get", Count: 1},
			{Key: "post", Count: 1},
		}, output.Groups)
	})

	t.Run("group by tag", func(t *testing.T) {
		output := listOperations(t, listOperationsInput{GroupBy: "tag"})
		assert.Equal(t, []groupCount{{Key: "pets", Count: 1}}, output.Groups)
	})
}

func TestListOperationsTool_ReferenceError(t *testing.T) {
	input := listOperationsInput{Spec: specInput{Content: `openapi: 3.1.0
info: {title: t, version: "1"}
paths:
  /a:
    get:
      parameters:
        - $ref: '#/components/parameters/Gone'
      responses: {}
`}}
	result, _, err := handleListOperations(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content[0].(*mcp.TextContent).Text, "unresolved reference")
}
