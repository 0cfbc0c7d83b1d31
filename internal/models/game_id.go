package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// GameID identifies a game item on the backend.
// The backend sends it either as a JSON number or as a JSON string.
type GameID string

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (id *GameID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = GameID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("game id: %w", err)
	}
	*id = GameID(n.String())
	return nil
}

// MarshalJSON encodes numeric ids as numbers and everything else as strings.
func (id GameID) MarshalJSON() ([]byte, error) {
	if id.IsNumeric() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// IsNumeric reports whether the id is a canonical unsigned integer.
// Ids with leading zeros such as "007" are not numeric.
func (id GameID) IsNumeric() bool {
	n, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil {
		return false
	}
	return strconv.FormatUint(n, 10) == string(id)
}

// String returns the id as a plain string.
func (id GameID) String() string {
	return string(id)
}
