package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/bootstrap"
	"resume-matcher/internal/chart"
	"resume-matcher/internal/extract"
	"resume-matcher/internal/llm"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/telemetry"
)

type output struct {
	Success         bool   `json:"success"`
	Analysis        string `json:"analysis,omitempty"`
	MatchPercentage int    `json:"match_percentage"`
	ChartPath       string `json:"chart_path,omitempty"`
	Error           string `json:"error,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()
	telemetry.Init("resume-matcher-cli", cfg.Env, cfg.LogLevel)

	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	resumePath := fs.String("resume", "", "Path to resume PDF")
	jdPath := fs.String("jd", "", "Path to job description text file")
	provider := fs.String("provider", cfg.LLM.Provider, "LLM provider (groq, anthropic, gemini)")
	model := fs.String("model", cfg.LLM.Model, "LLM model")
	chartPath := fs.String("chart", "", "Write the chart PNG to this path (optional)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*resumePath) == "" {
		fmt.Fprintln(stderr, "resume path is required")
		return 1
	}
	resumeBytes, err := os.ReadFile(*resumePath)
	if err != nil {
		fmt.Fprintf(stderr, "read resume: %v\n", err)
		return 1
	}
	jobDescription := ""
	if strings.TrimSpace(*jdPath) != "" {
		jdBytes, err := os.ReadFile(*jdPath)
		if err != nil {
			fmt.Fprintf(stderr, "read job description: %v\n", err)
			return 1
		}
		jobDescription = string(jdBytes)
	}

	llmCfg := cfg.LLM
	if *provider != llmCfg.Provider {
		llmCfg = config.LLMFor(*provider)
	}
	llmCfg.Model = *model
	ctx := context.Background()
	client, err := llm.New(ctx, bootstrap.LLMConfig(llmCfg))
	if err != nil {
		fmt.Fprintf(stderr, "build llm client: %v\n", err)
		return 1
	}

	svc := &analyses.Service{Extractor: extract.PDF{}, LLM: client, Chart: chart.Doughnut{}}
	res, err := svc.Analyze(ctx, analyses.Request{
		JobDescription: jobDescription,
		FileName:       filepath.Base(*resumePath),
		Resume:         resumeBytes,
	})

	out := output{Success: err == nil}
	if err != nil {
		_, msg, _ := analyses.Classify(err)
		out.Error = msg
		fmt.Fprintf(stderr, "analyze: %v\n", err)
	} else {
		out.Analysis = res.Analysis
		out.MatchPercentage = res.MatchPercentage
		if *chartPath != "" && len(res.Chart) > 0 {
			if err := os.WriteFile(*chartPath, res.Chart, 0o644); err != nil {
				fmt.Fprintf(stderr, "write chart: %v\n", err)
				return 1
			}
			out.ChartPath = *chartPath
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(out); encErr != nil {
		fmt.Fprintf(stderr, "encode output: %v\n", encErr)
		return 1
	}
	if err != nil {
		return 1
	}
	return 0
}
