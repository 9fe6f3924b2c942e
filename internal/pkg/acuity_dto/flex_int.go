package acuity_dto

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// FlexInt decodes integers the provider sometimes sends as quoted strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			*f = 0
			return nil
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*f = FlexInt(value)
		return nil
	}
	var value int
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*f = FlexInt(value)
	return nil
}
