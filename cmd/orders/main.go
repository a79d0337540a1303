package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-order-pipeline/internal/config"
	"go-order-pipeline/internal/formapi"
	"go-order-pipeline/internal/pipeline"
	"go-order-pipeline/pkg/utils"
)

// One-shot runner: fetch a submission (by id, or the form's latest),
// reshape it into order lines and write the artifacts to the output dir.
func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	submissionID := flag.String("submission", "", "submission id to process (overrides SUBMISSION_ID)")
	formID := flag.String("form", "", "process the latest submission of this form instead")
	printReport := flag.Bool("report", false, "print the text report to stdout")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.APIKey == "" {
		log.Fatal("JOTFORM_API_KEY is not set")
	}
	if *submissionID != "" {
		cfg.SubmissionID = *submissionID
	}
	if *formID != "" {
		cfg.FormID = *formID
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	fetcher := formapi.NewClient(cfg.BaseURL, cfg.APIKey, nil)
	p := pipeline.New(fetcher, cfg, sugar)

	ctx := context.Background()

	var out pipeline.RunOutput
	switch {
	case cfg.FormID != "" && cfg.SubmissionID == "":
		out, err = p.ProcessLatest(ctx, cfg.FormID)
	case cfg.SubmissionID != "":
		out, err = p.Process(ctx, cfg.SubmissionID)
	default:
		log.Fatal("either SUBMISSION_ID or FORM_ID must be set")
	}
	if err != nil {
		// The empty-shaped result is still written below so downstream
		// consumers always find a file
		sugar.Errorw("processing failed", "error", err)
	}

	outputs := utils.NewOutputManager(cfg.OutputDir)
	path, werr := outputs.WriteJSON("cli", "order_result.json", out.Result)
	if werr != nil {
		sugar.Fatalw("failed to write result file", "error", werr)
	}
	sugar.Infow("result written", "path", path, "lines", out.Result.LineCount(), "bulk", out.Result.Bulk)

	if out.Report != "" {
		if reportPath, werr := outputs.WriteText("cli", "order_report.txt", out.Report); werr != nil {
			sugar.Errorw("failed to write report file", "error", werr)
		} else {
			sugar.Infow("report written", "path", reportPath)
		}
	}

	if *printReport {
		if out.Report != "" {
			fmt.Println(out.Report)
		} else {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			enc.Encode(out.Result)
		}
	}

	if err != nil {
		os.Exit(1)
	}
}
