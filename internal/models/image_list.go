package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// ImageList stores a JSON-encoded list of image URLs. Legacy rows hold a
// single plain URL string instead of an array, so decoding accepts both.
type ImageList []string

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch typed := value.(type) {
	case []byte:
		raw = typed
	case string:
		raw = []byte(typed)
	default:
		return fmt.Errorf("cannot decode %T into ImageList", value)
	}

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		*l = ImageList{}
		return nil
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err == nil {
		*l = values
		return nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single = strings.TrimSpace(single); single != "" {
			*l = ImageList{single}
		} else {
			*l = ImageList{}
		}
		return nil
	}

	// Oldest rows stored the bare URL without any JSON quoting.
	*l = ImageList{trimmed}
	return nil
}

// Value always stores the list as a JSON array, keeping new writes consistent
// even when legacy rows used a bare string.
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(l))
}
