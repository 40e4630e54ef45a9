package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-agent/internal/types"
)

func validResumeJSON(t *testing.T) []byte {
	t.Helper()
	payload, err := json.Marshal(&types.ResumeData{
		ID: "1",
		PersonalInfo: types.PersonalInfo{
			FullName: "Asha Patel",
			Email:    "asha@example.com",
		},
		Summary: "Engineer.",
		Experience: []types.WorkExperience{
			{ID: "1", Company: "Razorpay", Title: "Engineer", StartDate: "2019-06"},
		},
		Education: []types.Education{
			{ID: "1", Institution: "IIT Bombay", Degree: "B.Tech"},
		},
		Skills: []types.Skill{
			{ID: "1", Name: "Go", Category: types.SkillTechnical, Proficiency: types.ProficiencyAdvanced},
		},
	})
	require.NoError(t, err)
	return payload
}

func TestValidateResumeJSONAcceptsWellFormedDocument(t *testing.T) {
	assert.NoError(t, ValidateResumeJSON(validResumeJSON(t)))
}

func TestValidateResumeJSONReportsFieldErrors(t *testing.T) {
	doc := []byte(`{
		"personal_info": {"full_name": "", "email": "a@b.c"},
		"summary": "x",
		"experience": [],
		"education": [],
		"skills": [{"name": "Go", "category": "bogus"}]
	}`)

	err := ValidateResumeJSON(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)

	fields := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		fields[i] = fe.Field
	}
	assert.Contains(t, fields, "personal_info.full_name")
	assert.Contains(t, fields, "skills.0.category")
}

func TestValidateResumeJSONMissingSections(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{"summary": "only a summary"}`))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateResumeJSONMalformedDocument(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{not json`))

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}
