package library

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/five82/gutter/internal/comic"
)

// infoSchema describes info.json. Every field is optional and may be null.
const infoSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "title":     {"type": ["string", "null"]},
    "extension": {"type": ["string", "null"]},
    "length":    {"type": ["integer", "null"], "minimum": 0},
    "sections":  {"type": ["array", "null"], "items": {"type": "integer"}}
  }
}`

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(infoSchema))
})

// DecodeInfo validates and decodes an info.json document.
func DecodeInfo(data []byte) (comic.Info, error) {
	schema, err := compiledSchema()
	if err != nil {
		return comic.Info{}, fmt.Errorf("compile info schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return comic.Info{}, fmt.Errorf("decode info: %w", err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return comic.Info{}, fmt.Errorf("invalid info: %s", strings.Join(problems, "; "))
	}

	// The schema accepts integral numbers written as 5.0, which json cannot
	// decode into an int directly.
	var raw struct {
		Title     string    `json:"title"`
		Extension string    `json:"extension"`
		Length    float64   `json:"length"`
		Sections  []float64 `json:"sections"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return comic.Info{}, fmt.Errorf("decode info: %w", err)
	}
	info := comic.Info{
		Title:     raw.Title,
		Extension: raw.Extension,
		Length:    int(raw.Length),
	}
	if len(raw.Sections) > 0 {
		info.Sections = make([]int, len(raw.Sections))
		for i, page := range raw.Sections {
			info.Sections[i] = int(page)
		}
	}
	return info, nil
}
