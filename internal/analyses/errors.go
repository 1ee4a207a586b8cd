package analyses

import (
	"errors"
	"net/http"
)

var (
	ErrMissingJobDescription = errors.New("job description is required")
	ErrMissingFile           = errors.New("resume file is required")
	ErrNotPDF                = errors.New("resume file must be a pdf")
	ErrBodyTooLarge          = errors.New("request body too large")
	ErrExtraction            = errors.New("pdf text extraction failed")
	ErrUpstream              = errors.New("llm completion failed")
)

// Messages shown to the browser client.
const (
	MsgMissingJobDescription = "Please provide a job description."
	MsgMissingFile           = "Please upload a resume file."
	MsgNotPDF                = "Please upload a PDF file."
	MsgBodyTooLarge          = "File size must be less than 16MB."
	MsgExtraction            = "Failed to extract text from PDF."
	MsgUpstream              = "AI response failed. Try again."
	MsgUnexpected            = "Unexpected error occurred."
)

// Pipeline stages used for metrics and request logs.
const (
	StageValidation = "validation"
	StageExtraction = "extraction"
	StageUpstream   = "upstream"
	StageInternal   = "internal"
)

// Classify maps a pipeline error to its HTTP status, client message and stage.
func Classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, ErrMissingJobDescription):
		return http.StatusBadRequest, MsgMissingJobDescription, StageValidation
	case errors.Is(err, ErrMissingFile):
		return http.StatusBadRequest, MsgMissingFile, StageValidation
	case errors.Is(err, ErrNotPDF):
		return http.StatusBadRequest, MsgNotPDF, StageValidation
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, MsgBodyTooLarge, StageValidation
	case errors.Is(err, ErrExtraction):
		return http.StatusUnprocessableEntity, MsgExtraction, StageExtraction
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway, MsgUpstream, StageUpstream
	default:
		return http.StatusInternalServerError, MsgUnexpected, StageInternal
	}
}
