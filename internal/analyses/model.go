package analyses

import (
	"strings"

	"resume-matcher/internal/extract"
)

// Request is one résumé/job-description pair to score.
type Request struct {
	JobDescription string
	FileName       string
	Resume         []byte
}

// Validate checks the request fields in the order the client reports them.
func (r Request) Validate() error {
	if strings.TrimSpace(r.JobDescription) == "" {
		return ErrMissingJobDescription
	}
	if strings.TrimSpace(r.FileName) == "" {
		return ErrMissingFile
	}
	if !extract.IsPDFName(r.FileName) {
		return ErrNotPDF
	}
	return nil
}

// Result is the outcome of a successful analysis. Chart is nil when
// rendering failed.
type Result struct {
	Analysis        string
	MatchPercentage int
	Chart           []byte
}
