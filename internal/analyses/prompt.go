package analyses

import "strings"

const (
	MaxResumeRunes         = 4000
	MaxJobDescriptionRunes = 1000
	promptPreviewRunes     = 300
)

const promptTemplate = `
As an ATS system, evaluate the resume based on this job description.

Give your response in:
1. Match Percentage (like 78%)
2. Missing Keywords
3. Profile Summary

Resume:
{resume_text}

Job Description:
{job_description}
`

// BuildPrompt truncates both inputs and fills the evaluation template.
func BuildPrompt(resumeText, jobDescription string) string {
	return strings.NewReplacer(
		"{resume_text}", truncateRunes(resumeText, MaxResumeRunes),
		"{job_description}", truncateRunes(jobDescription, MaxJobDescriptionRunes),
	).Replace(promptTemplate)
}

// truncateRunes keeps the first n code points of s. Words may be cut.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
