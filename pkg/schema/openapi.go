/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: openapi.go
Description: Export of guessed columns as an OpenAPI object schema, so a guessed sample
can be described to tools that speak OpenAPI.
*/

package schema

import (
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
)

// Extension keys carried by timestamp properties
const (
	ExtensionStrftime = "x-strftime"
	ExtensionGoLayout = "x-go-layout"
	ExtensionIndex    = "x-column-index"
)

// OpenAPISchema renders columns as the properties of an object schema. A
// repeated column name gets its index appended, e.g. "a_2".
func OpenAPISchema(columns []Column) *openapi3.Schema {
	props := make(openapi3.Schemas, len(columns))
	for _, c := range columns {
		name := c.Name
		for {
			if _, taken := props[name]; !taken {
				break
			}
			name += "_" + strconv.Itoa(c.Index)
		}
		props[name] = columnSchema(c).NewRef()
	}
	return &openapi3.Schema{
		Type:       openapi3.TypeObject,
		Properties: props,
	}
}

func columnSchema(c Column) *openapi3.Schema {
	s := &openapi3.Schema{
		Extensions: map[string]interface{}{ExtensionIndex: c.Index},
	}
	switch c.Type {
	case TagBoolean.String():
		s.Type = openapi3.TypeBoolean
	case TagLong.String():
		s.Type = openapi3.TypeInteger
		s.Format = "int64"
	case TagDouble.String():
		s.Type = openapi3.TypeNumber
		s.Format = "double"
	case TagJSON.String():
		// any JSON value; left untyped
		s.Description = "JSON value"
	case TagTimestamp.String():
		s.Type = openapi3.TypeString
		s.Extensions[ExtensionStrftime] = c.Format
		if layout, err := c.Layout(); err == nil {
			s.Extensions[ExtensionGoLayout] = layout
		}
	default:
		s.Type = openapi3.TypeString
	}
	return s
}
