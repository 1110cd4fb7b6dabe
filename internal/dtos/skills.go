package dtos

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrInvalidSkills = errors.New("invalid skills format")

// SkillList accepts either a JSON array of strings or a string holding one,
// as sent by form based clients.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return ErrInvalidSkills
		}
		if encoded == "" {
			*s = SkillList{}
			return nil
		}
		data = []byte(encoded)
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return ErrInvalidSkills
	}
	*s = list
	return nil
}
