package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name       string
		file       FileMeta
		wantReason string
	}{
		{
			"accepted pdf",
			FileMeta{Name: "resume.pdf", Size: 1024, ContentType: "application/pdf"},
			"",
		},
		{
			"accepted docx by content type",
			FileMeta{Name: "resume.docx", Size: 1024, ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
			"",
		},
		{
			"accepted doc by extension",
			FileMeta{Name: "resume.doc", Size: 1024},
			"",
		},
		{
			"rejected image",
			FileMeta{Name: "photo.png", Size: 1024, ContentType: "image/png"},
			"unsupported file type; only PDF, DOC and DOCX are accepted",
		},
		{
			"rejected by extension without content type",
			FileMeta{Name: "resume.txt", Size: 1024},
			"unsupported file type; only PDF, DOC and DOCX are accepted",
		},
		{
			"rejected oversize",
			FileMeta{Name: "big.pdf", Size: MaxFileSize + 1, ContentType: "application/pdf"},
			"file is larger than 5MB",
		},
		{
			"exactly at the ceiling",
			FileMeta{Name: "full.pdf", Size: MaxFileSize, ContentType: "application/pdf"},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFile(tt.file)
			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			var rej *Rejection
			require.ErrorAs(t, err, &rej)
			assert.Equal(t, tt.file.Name, rej.FileName)
			assert.Equal(t, tt.wantReason, rej.Reason)
		})
	}
}

func TestValidateBatchSingleFileRule(t *testing.T) {
	accepted, rejections := ValidateBatch([]FileMeta{
		{Name: "resume.pdf", Size: 1024, ContentType: "application/pdf"},
	})
	require.Empty(t, rejections)
	assert.Equal(t, "resume.pdf", accepted.Name)

	accepted, rejections = ValidateBatch([]FileMeta{
		{Name: "a.pdf", ContentType: "application/pdf"},
		{Name: "b.pdf", ContentType: "application/pdf"},
	})
	assert.Nil(t, accepted)
	require.Len(t, rejections, 2)
	for _, r := range rejections {
		assert.Equal(t, "only one file can be uploaded at a time", r.Reason)
	}

	accepted, rejections = ValidateBatch(nil)
	assert.Nil(t, accepted)
	require.Len(t, rejections, 1)
	assert.Equal(t, "no file provided", rejections[0].Reason)
}
