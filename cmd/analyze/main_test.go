package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRequiresResume(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "resume path is required")
}

func TestRunReportsValidationFailure(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "groq")
	t.Setenv("GROQ_API_KEY", "gsk_cli_test")

	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.docx")
	jd := filepath.Join(dir, "jd.txt")
	require.NoError(t, os.WriteFile(resume, []byte("not a pdf"), 0o600))
	require.NoError(t, os.WriteFile(jd, []byte("Go engineer"), 0o600))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-resume", resume, "-jd", jd}, &stdout, &stderr)
	assert.Equal(t, 1, code)

	var out output
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.False(t, out.Success)
	assert.Equal(t, "Please upload a PDF file.", out.Error)
}

func TestRunMissingJobDescription(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_cli_test")
	t.Setenv("LLM_PROVIDER", "")

	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(resume, []byte("%PDF-1.4"), 0o600))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-resume", resume}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "Please provide a job description.")
}
