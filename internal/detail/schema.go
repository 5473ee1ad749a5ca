package detail

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// detailSchemaJSON describes the detail record as the backend is expected to
// send it. Types and bounds mirror details.GameDetail so a document that
// passes decodes without loss. Integers stay within the exactly representable
// float range. Nothing is required; absent fields are defaulted afterwards.
const detailSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "id":                {"type": "integer", "minimum": 1, "maximum": 9007199254740991},
    "title":             {"type": "string"},
    "developer":         {"type": "string"},
    "description":       {"type": "string"},
    "shortDescription":  {"type": "string"},
    "mainImage":         {"type": "string"},
    "averageRating":     {"type": "number", "minimum": 0, "maximum": 5},
    "totalRatings":      {"type": "integer", "minimum": 0, "maximum": 9007199254740991},
    "savedByUsers":      {"type": "integer", "minimum": 0, "maximum": 9007199254740991},
    "estimatedHours":    {"type": "integer", "minimum": 0, "maximum": 9007199254740991},
    "genres":            {"type": "array", "items": {"type": "string"}},
    "platforms":         {"type": "array", "items": {"type": "string"}},
    "onlineMultiplayer": {"type": "boolean"},
    "localMultiplayer":  {"type": "boolean"},
    "requiresInternet":  {"type": "boolean"},
    "releaseDate":       {"type": "string"},
    "prices": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id":        {"type": "integer", "minimum": 1, "maximum": 9007199254740991},
          "storeName": {"type": "string"},
          "price":     {"type": "number"},
          "url":       {"type": "string"}
        }
      }
    },
    "reviews": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id":       {"type": "integer", "minimum": 1, "maximum": 9007199254740991},
          "userName": {"type": "string"},
          "rating":   {"type": "integer", "minimum": 1, "maximum": 5},
          "comment":  {"type": "string"},
          "date":     {"type": "string"}
        }
      }
    }
  }
}`

var detailSchema = mustSchema(detailSchemaJSON)

func mustSchema(raw string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("detail: invalid schema: %v", err))
	}
	return schema
}
