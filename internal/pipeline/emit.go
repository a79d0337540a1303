package pipeline

// emit persists and writes out the artifacts of a completed run: the
// result row in the store, an indented JSON file and the text report in
// the run's output directory. Emission failures are logged but never fail
// the run; the result has already been computed.
func (p *Pipeline) emit(runID string, out RunOutput) {
	if p.Store != nil {
		if err := p.Store.SaveRunResult(runID, out.Result, out.Report); err != nil {
			p.Log.Errorw("failed to persist run result", "run_id", runID, "error", err)
		}
	}

	if p.Outputs == nil {
		return
	}

	if path, err := p.Outputs.WriteJSON(runID, "order_result.json", out.Result); err != nil {
		p.Log.Errorw("failed to write result file", "run_id", runID, "error", err)
	} else {
		p.Log.Infow("result file written", "run_id", runID, "path", path)
	}

	if out.Report == "" {
		return
	}
	if path, err := p.Outputs.WriteText(runID, "order_report.txt", out.Report); err != nil {
		p.Log.Errorw("failed to write report file", "run_id", runID, "error", err)
	} else {
		p.Log.Infow("report file written", "run_id", runID, "path", path)
	}
}
