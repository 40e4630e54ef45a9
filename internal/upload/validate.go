// Package upload implements the resume intake boundary: file acceptance
// rules and the filename-driven resume generator that stands in for a real
// document parser.
package upload

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxFileSize is the upload size ceiling.
const MaxFileSize = 5 * 1024 * 1024

// allowedTypes maps accepted MIME types to their extensions.
var allowedTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// FileMeta describes an upload candidate. Content inspection never happens;
// acceptance is decided on metadata alone.
type FileMeta struct {
	Name        string
	Size        int64
	ContentType string
}

// Rejection pairs a rejected filename with a human-readable reason.
type Rejection struct {
	FileName string
	Reason   string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.FileName, r.Reason)
}

// ValidateFile checks a single candidate against the acceptance rules:
// PDF, DOC or DOCX, at most 5MB. The returned error is always a *Rejection.
func ValidateFile(f FileMeta) error {
	ext := strings.ToLower(filepath.Ext(f.Name))
	if f.ContentType != "" {
		if _, ok := allowedTypes[f.ContentType]; !ok {
			return &Rejection{FileName: f.Name, Reason: "unsupported file type; only PDF, DOC and DOCX are accepted"}
		}
	} else if !allowedExtensions[ext] {
		return &Rejection{FileName: f.Name, Reason: "unsupported file type; only PDF, DOC and DOCX are accepted"}
	}
	if f.Size > MaxFileSize {
		return &Rejection{FileName: f.Name, Reason: "file is larger than 5MB"}
	}
	return nil
}

// ValidateBatch enforces the one-file-per-action rule and validates the
// single candidate. On success the accepted file is returned with no
// rejections; otherwise every offending file appears in the rejection list.
func ValidateBatch(files []FileMeta) (*FileMeta, []Rejection) {
	if len(files) == 0 {
		return nil, []Rejection{{Reason: "no file provided"}}
	}
	if len(files) > 1 {
		rejections := make([]Rejection, len(files))
		for i, f := range files {
			rejections[i] = Rejection{FileName: f.Name, Reason: "only one file can be uploaded at a time"}
		}
		return nil, rejections
	}

	if err := ValidateFile(files[0]); err != nil {
		rej := err.(*Rejection)
		return nil, []Rejection{*rej}
	}
	accepted := files[0]
	return &accepted, nil
}
