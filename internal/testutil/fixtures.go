// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasts/parser"
)

// UserSpec declares a single User schema with one required and one optional property.
const UserSpec = `openapi: 3.1.0
info:
  title: Users
  version: 1.0.0
paths: {}
components:
  schemas:
    User:
      type: object
      required: [id]
      properties:
        id:
          type: integer
        name:
          type: string
`

// ItemsSpec declares GET /items/{id} with a path parameter, a query
// parameter, and a JSON response referencing the Item schema.
const ItemsSpec = `openapi: 3.1.0
info:
  title: Items
  version: 1.0.0
paths:
  /items/{id}:
    get:
      parameters:
        - name: id
          in: path
          required: true
          schema:
            type: string
        - name: verbose
          in: query
          schema:
            type: boolean
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Item'
components:
  schemas:
    Item:
      type: object
      properties:
        id:
          type: string
`

// PetStoreSpec is a richer document covering enums, composition, nullable
// type lists, shared parameters, request bodies and referenced responses.
const PetStoreSpec = `openapi: 3.1.0
info:
  title: Pet Store
  version: 2.0.0
paths:
  /pets:
    get:
      operationId: listPets
      summary: List pets
      tags: [pets]
      parameters:
        - $ref: '#/components/parameters/Limit'
        - name: X-Request-ID
          in: header
          schema:
            type: string
      responses:
        "200":
          description: A page of pets
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: '#/components/schemas/Pet'
        default:
          $ref: '#/components/responses/Error'
    post:
      operationId: createPet
      requestBody:
        $ref: '#/components/requestBodies/NewPet'
      responses:
        "201":
          description: Created
          content:
            application/json; charset=utf-8:
              schema:
                $ref: '#/components/schemas/Pet'
        "204":
          description: No content
  /pets/{petId}:
    parameters:
      - name: petId
        in: path
        required: true
        schema:
          type: integer
    delete:
      deprecated: true
      responses:
        2XX:
          description: Deleted
          content:
            text/plain:
              schema:
                type: string
components:
  parameters:
    Limit:
      name: limit
      in: query
      schema:
        type: integer
  requestBodies:
    NewPet:
      required: true
      content:
        application/json:
          schema:
            $ref: '#/components/schemas/NewPet'
  responses:
    Error:
      description: Unexpected error
      content:
        application/json:
          schema:
            $ref: '#/components/schemas/Error'
  schemas:
    Pet:
      description: A pet in the store.
      allOf:
        - $ref: '#/components/schemas/NewPet'
        - type: object
          required: [id]
          properties:
            id:
              type: integer
              readOnly: true
    NewPet:
      type: object
      required: [name]
      properties:
        name:
          type: string
        tag:
          type: [string, "null"]
        status:
          type: string
          enum: [available, pending, sold]
    Error:
      type: object
      required: [code, message]
      properties:
        code:
          type: integer
          enum: [400, 404, 500]
        message:
          type: string
    Legacy:
      deprecated: true
      oneOf:
        - type: string
        - type: number
`

// WriteTempSpec writes content to a temporary file named name and returns its path.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempSpec(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary spec file: %v", err)
	}
	return tmpFile
}

// ToJSON converts a YAML fixture to its JSON equivalent, keeping key order.
func ToJSON(t *testing.T, content string) string {
	t.Helper()

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(content), &root); err != nil {
		t.Fatalf("Failed to decode YAML fixture: %v", err)
	}
	data, err := json.MarshalIndent(nodeToJSON(&root), "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal fixture to JSON: %v", err)
	}
	return string(data)
}

// ParseSpec parses a fixture and fails the test on error.
func ParseSpec(t *testing.T, content string) *parser.ParseResult {
	t.Helper()

	result, err := parser.ParseWithOptions(parser.WithBytes([]byte(content)))
	if err != nil {
		t.Fatalf("Failed to parse fixture: %v", err)
	}
	return result
}

// orderedObject marshals mapping entries in source order.
type orderedObject struct {
	keys   []string
	values []any
}

func (o orderedObject) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, k := range o.keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	return append(buf, '}'), nil
}

func nodeToJSON(n *yaml.Node) any {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return nodeToJSON(n.Content[0])
	case yaml.AliasNode:
		return nodeToJSON(n.Alias)
	case yaml.MappingNode:
		obj := orderedObject{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			obj.keys = append(obj.keys, n.Content[i].Value)
			obj.values = append(obj.values, nodeToJSON(n.Content[i+1]))
		}
		return obj
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			out = append(out, nodeToJSON(c))
		}
		return out
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return n.Value
		}
		return v
	}
}
