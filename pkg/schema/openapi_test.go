/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: openapi_test.go
Description: Tests for the OpenAPI rendering of guessed columns.
*/

package schema

import (
	"encoding/json"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPISchema(t *testing.T) {
	columns := []Column{
		{Index: 0, Name: "id", Type: "long"},
		{Index: 1, Name: "score", Type: "double"},
		{Index: 2, Name: "active", Type: "boolean"},
		{Index: 3, Name: "created", Type: "timestamp", Format: "%Y-%m-%d %H:%M:%S"},
		{Index: 4, Name: "payload", Type: "json"},
		{Index: 5, Name: "note", Type: "string"},
	}

	s := OpenAPISchema(columns)
	assert.Equal(t, openapi3.TypeObject, s.Type)
	require.Len(t, s.Properties, len(columns))

	assert.Equal(t, openapi3.TypeInteger, s.Properties["id"].Value.Type)
	assert.Equal(t, "int64", s.Properties["id"].Value.Format)
	assert.Equal(t, openapi3.TypeNumber, s.Properties["score"].Value.Type)
	assert.Equal(t, openapi3.TypeBoolean, s.Properties["active"].Value.Type)
	assert.Equal(t, openapi3.TypeString, s.Properties["note"].Value.Type)
	assert.Empty(t, s.Properties["payload"].Value.Type)

	created := s.Properties["created"].Value
	assert.Equal(t, openapi3.TypeString, created.Type)
	assert.Equal(t, "%Y-%m-%d %H:%M:%S", created.Extensions[ExtensionStrftime])
	assert.Equal(t, "2006-01-02 15:04:05", created.Extensions[ExtensionGoLayout])
	assert.Equal(t, 3, created.Extensions[ExtensionIndex])

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"x-strftime":"%Y-%m-%d %H:%M:%S"`)
}

func TestOpenAPISchemaRepeatedNames(t *testing.T) {
	s := OpenAPISchema([]Column{
		{Index: 0, Name: "a", Type: "long"},
		{Index: 1, Name: "b", Type: "string"},
		{Index: 2, Name: "a", Type: "double"},
	})
	require.Len(t, s.Properties, 3)
	assert.Equal(t, openapi3.TypeInteger, s.Properties["a"].Value.Type)
	assert.Equal(t, openapi3.TypeNumber, s.Properties["a_2"].Value.Type)
	assert.Equal(t, 2, s.Properties["a_2"].Value.Extensions[ExtensionIndex])
}
