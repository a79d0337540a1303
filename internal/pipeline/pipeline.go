package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-order-pipeline/internal/config"
	"go-order-pipeline/internal/formapi"
	"go-order-pipeline/internal/model"
	"go-order-pipeline/pkg/utils"
)

// Store is the subset of run persistence the pipeline reports into.
// A nil Store disables tracking (the one-shot CLI runs without a DB).
type Store interface {
	UpdateRunStatus(runID, status string) error
	SaveRunError(runID string, runErr error) error
	SaveRunLog(runID, stage, level, message string, fields map[string]interface{}) error
	SaveRunResult(runID string, result model.OrderResult, report string) error
}

// RunOutput bundles the order result with its text-report rendering.
type RunOutput struct {
	Result model.OrderResult `json:"result"`
	Report string            `json:"-"`
}

// Pipeline processes one submission per invocation. All collaborators are
// injected; there is no shared mutable state between runs.
type Pipeline struct {
	Fetcher formapi.Fetcher
	Config  *config.Config
	Log     *zap.SugaredLogger
	Store   Store                // optional run tracking
	Outputs *utils.OutputManager // optional file emission
}

// New creates a pipeline with the given collaborators.
func New(fetcher formapi.Fetcher, cfg *config.Config, log *zap.SugaredLogger) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Pipeline{
		Fetcher: fetcher,
		Config:  cfg,
		Log:     log,
	}
}

// Process fetches a submission and reshapes it into an OrderResult. Fetch
// failures short-circuit to the empty result shape and surface the error;
// a submission without content is a valid empty result, not an error.
// Single-threaded and synchronous apart from the one network call.
func (p *Pipeline) Process(ctx context.Context, submissionID string) (RunOutput, error) {
	sub, err := p.Fetcher.FetchSubmission(ctx, submissionID)
	if err != nil {
		p.Log.Warnw("submission fetch failed", "submission_id", submissionID, "error", err)
		return RunOutput{Result: p.emptyResult()}, err
	}
	return p.process(sub), nil
}

// ProcessLatest runs the pipeline against the newest submission of a form.
func (p *Pipeline) ProcessLatest(ctx context.Context, formID string) (RunOutput, error) {
	sub, err := p.Fetcher.FetchLatestSubmission(ctx, formID)
	if err != nil {
		p.Log.Warnw("latest submission fetch failed", "form_id", formID, "error", err)
		return RunOutput{Result: p.emptyResult()}, err
	}
	return p.process(sub), nil
}

func (p *Pipeline) process(sub model.Submission) RunOutput {
	fields := ExtractAnswers(sub)
	if len(fields) == 0 {
		p.Log.Infow("submission has no answer content, returning empty result")
		return RunOutput{Result: p.emptyResult()}
	}

	answered := WithAnswer(fields)
	email, salesRep := EmailAndSalesRep(answered)

	tables := ReshapeMatrix(ByType(answered, model.TypeMatrix))
	lines := CombineLines(tables)
	descriptions, quantities, codes := FilterNumeric(lines)
	productIDs := MapProductIDs(codes, p.Config.ProductID)

	report := BuildReport(answered, descriptions, quantities, codes)

	result := model.OrderResult{
		Email:        email,
		SalesRep:     salesRep,
		ClientID:     p.Config.ClientID,
		Descriptions: descriptions,
		Quantities:   quantities,
		ProductIDs:   productIDs,
	}

	if !p.Config.IsLineListCustomer(email) {
		result.Descriptions, result.Quantities, result.ProductIDs =
			CollapseBulk(descriptions, quantities, productIDs)
		result.Bulk = true
	}

	p.Log.Infow("submission processed",
		"email", email,
		"sales_rep", salesRep,
		"lines", result.LineCount(),
		"bulk", result.Bulk,
	)

	return RunOutput{Result: result, Report: report}
}

func (p *Pipeline) emptyResult() model.OrderResult {
	result := model.EmptyOrderResult()
	result.ClientID = p.Config.ClientID
	return result
}

// Run executes Process under run tracking: status transitions, stage logs,
// error capture and artifact emission. Used by the API server; the CLI
// calls Process directly.
func (p *Pipeline) Run(ctx context.Context, runID, submissionID string) (model.OrderResult, error) {
	start := time.Now()
	p.trackStatus(runID, "running")
	p.trackLog(runID, "fetch", "info", "starting run", map[string]interface{}{
		"submission_id": submissionID,
	})

	out, err := p.Process(ctx, submissionID)
	if err != nil {
		p.trackStatus(runID, "failed")
		if p.Store != nil {
			if saveErr := p.Store.SaveRunError(runID, err); saveErr != nil {
				p.Log.Errorw("failed to record run error", "run_id", runID, "error", saveErr)
			}
		}
		p.trackLog(runID, "fetch", "error", err.Error(), nil)
		return out.Result, err
	}

	p.emit(runID, out)

	p.trackStatus(runID, "completed")
	p.trackLog(runID, "emit", "info", "run completed", map[string]interface{}{
		"lines":       out.Result.LineCount(),
		"bulk":        out.Result.Bulk,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return out.Result, nil
}

func (p *Pipeline) trackStatus(runID, status string) {
	if p.Store == nil {
		return
	}
	if err := p.Store.UpdateRunStatus(runID, status); err != nil {
		p.Log.Errorw("failed to update run status", "run_id", runID, "status", status, "error", err)
	}
}

func (p *Pipeline) trackLog(runID, stage, level, message string, fields map[string]interface{}) {
	if p.Store == nil {
		return
	}
	if err := p.Store.SaveRunLog(runID, stage, level, message, fields); err != nil {
		p.Log.Errorw("failed to save run log", "run_id", runID, "stage", stage, "error", err)
	}
}
