package dtos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillListAcceptsArrayAndEncodedString(t *testing.T) {
	tests := map[string]SkillList{
		`{"skills": ["go", "sql"]}`:       {"go", "sql"},
		`{"skills": "[\"go\", \"sql\"]"}`: {"go", "sql"},
		`{"skills": ""}`:                  {},
		`{"skills": []}`:                  {},
		`{"skills": null}`:                nil,
		`{}`:                              nil,
	}
	for body, want := range tests {
		t.Run(body, func(t *testing.T) {
			var req RegisterRequest
			require.NoError(t, json.Unmarshal([]byte(body), &req))
			assert.Equal(t, want, req.Skills)
		})
	}
}

func TestSkillListRejectsGarbage(t *testing.T) {
	for _, body := range []string{`{"skills": "go, sql"}`, `{"skills": 5}`, `{"skills": [1, 2]}`} {
		var req RegisterRequest
		err := json.Unmarshal([]byte(body), &req)
		assert.ErrorIs(t, err, ErrInvalidSkills, body)
	}
}

func TestJobViewFlattensJob(t *testing.T) {
	d := 1.5
	v := JobView{EmployerName: "Ada", CompanyName: "Engines", Distance: &d}
	v.ID = 3
	v.Title = "Barista"

	b, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, float64(3), m["id"])
	assert.Equal(t, "Barista", m["title"])
	assert.Equal(t, "Engines", m["company_name"])
	assert.Equal(t, 1.5, m["distance"])
	assert.NotContains(t, m, "Employer")
}
