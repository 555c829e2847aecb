package models

import (
	"bytes"
	"encoding/json"
)

// Label is display text that data files may write either as a JSON string or
// as a bare number, e.g. "year": 2021 and "year": "2019 - 2023".
type Label string

// UnmarshalJSON accepts strings, numbers and null
func (l *Label) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Label(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*l = Label(n.String())
	return nil
}

func (l Label) String() string { return string(l) }
