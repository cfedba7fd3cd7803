// Package pipeline runs the full curation sequence: scan, score, group,
// resolve, classify, write. Stages are strictly sequential; each one
// finishes over the whole record set before the next begins.
package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/agent"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/classify"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/collection"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/dedupe"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/logger"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/quality"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/scanner"
)

// Options configures a pipeline run.
type Options struct {
	Sources   []scanner.Source
	OutputDir string
	Taxonomy  classify.Taxonomy // nil means the built-in taxonomy
	Quick     bool              // first-match classification instead of weighted scoring
	Workers   int
}

// Outcome reports what a run produced.
type Outcome struct {
	RunID     string
	Ingested  int
	Survivors []*agent.Record
	Report    *dedupe.Report
	Index     *collection.Index
}

// Run executes the pipeline. Ingestion problems are non-fatal; only writing
// the collection can fail the run.
func Run(ctx context.Context, opts Options) (*Outcome, error) {
	runID := uuid.NewString()
	ctx = logger.WithRunID(ctx, runID)
	log := logger.G(ctx)

	var scanOpts []scanner.Option
	if opts.Workers > 0 {
		scanOpts = append(scanOpts, scanner.WithWorkers(opts.Workers))
	}
	records, scanErr := scanner.New(scanOpts...).Scan(ctx, opts.Sources)
	if scanErr != nil {
		log.WithError(scanErr).Warn("Some documents could not be ingested")
	}

	for _, rec := range records {
		rec.QualityScore = quality.Score(rec)
	}

	groups := dedupe.GroupRecords(records)
	survivors, report := dedupe.ResolveAll(groups)
	report.RunID = runID

	log.WithField("original", report.OriginalCount).
		WithField("unique", report.UniqueCount).
		WithField("groups", report.DuplicateGroups).
		Info("Resolved duplicate groups")

	if opts.Quick {
		for _, rec := range survivors {
			rec.Category, rec.Subcategory = classify.QuickClassify(rec)
		}
	} else {
		classifier := classify.New(opts.Taxonomy)
		for _, rec := range survivors {
			classifier.Apply(rec)
		}
	}

	index, err := collection.NewWriter(opts.OutputDir).Write(survivors, report)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write collection")
	}

	log.WithField("agents", index.TotalAgents).
		WithField("output", opts.OutputDir).
		Info("Collection written")

	return &Outcome{
		RunID:     runID,
		Ingested:  len(records),
		Survivors: survivors,
		Report:    report,
		Index:     index,
	}, nil
}
