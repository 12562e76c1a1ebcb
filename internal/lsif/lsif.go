// Package lsif models the LSIF 0.5 dump format: one JSON record per line,
// each either a vertex or an edge, discriminated by "type" and "label".
package lsif

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID identifies a vertex or edge. The format allows both JSON numbers and
// strings; both normalize to a string so they can key maps uniformly.
type ID string

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty id")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON emits numeric ids as numbers and everything else as strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// ElementType discriminates the two record categories.
type ElementType string

const (
	ElementVertex ElementType = "vertex"
	ElementEdge   ElementType = "edge"
)

// envelope is the minimal shape decoded from every line before dispatch.
type envelope struct {
	ID    ID          `json:"id"`
	Type  ElementType `json:"type"`
	Label string      `json:"label"`
}
