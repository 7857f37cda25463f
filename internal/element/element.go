package element

import (
	"encoding/json"
	"fmt"
	"os"
)

// Element is one item being ranked. Loaded once, read-only afterwards.
type Element struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Parse decodes a JSON array of elements.
//
// Example document:
// [
//   {
//     "title": "Element A",
//     "description": "This is element A",
//     "image": "images/element_a.png"
//   }
// ]
//
// The "id" field is optional; when absent the title is used as the
// identifier. Identifiers must be unique within one document.
func Parse(data []byte) ([]Element, error) {
	var elements []Element
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("failed to parse elements JSON: %w", err)
	}

	seen := make(map[string]bool, len(elements))
	for i := range elements {
		if elements[i].ID == "" {
			elements[i].ID = elements[i].Title
		}
		if elements[i].ID == "" {
			return nil, fmt.Errorf("element at index %d has no id or title", i)
		}
		if seen[elements[i].ID] {
			return nil, fmt.Errorf("duplicate element id %q", elements[i].ID)
		}
		seen[elements[i].ID] = true
	}

	return elements, nil
}

// LoadFile reads and parses an element list from a JSON file.
func LoadFile(path string) ([]Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read elements file '%s': %w", path, err)
	}
	return Parse(data)
}
