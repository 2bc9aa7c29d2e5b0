package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgallion1/svgpaths"
	"github.com/dgallion1/svgpaths/internal/source"
	"github.com/dgallion1/svgpaths/internal/stats"
)

// Worker processes a single conversion job.
type Worker struct {
	stats *stats.ConversionStats
	log   *slog.Logger
	opts  svgpaths.Options
}

func NewWorker(st *stats.ConversionStats, log *slog.Logger, opts svgpaths.Options) *Worker {
	return &Worker{
		stats: st,
		log:   log,
		opts:  opts,
	}
}

// Process extracts the SVG documents from the job's file and converts each.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: Extract
	job.SetStatus(StatusExtracting, "extracting")
	ex, err := extractorFor(job)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	docs, err := ex.Extract(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("extract failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting")
		return
	}
	job.SetTotalDocuments(len(docs))
	log.Info("extracted documents", "documents", len(docs))

	if len(docs) == 0 {
		job.AddError("no svg content found")
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	// Phase 2: Convert
	job.SetStatus(StatusConverting, "converting")
	failed := 0
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			job.AddError(fmt.Sprintf("cancelled: %s", err))
			job.SetStatus(StatusFailed, "converting")
			return
		}
		res, paths := w.convert(doc)
		if res.Error != "" {
			failed++
			log.Warn("conversion failed", "document", doc.Name, "error", res.Error)
		}
		job.AddResult(res, paths)
	}
	job.SetFileData(nil)

	switch {
	case failed == 0:
		job.SetStatus(StatusCompleted, "done")
	case failed < len(docs):
		job.SetStatus(StatusPartial, "done")
	default:
		job.SetStatus(StatusFailed, "converting")
	}
	log.Info("conversion complete", "documents", len(docs), "failed", failed)
}

// convert runs both conversions on one document. A tree failure such as an
// unbalanced close tag does not prevent the flat path document.
func (w *Worker) convert(doc source.Document) (Result, int) {
	start := time.Now()
	res := Result{Name: doc.Name}

	tree, treeErr := svgpaths.Parse(strings.NewReader(doc.Text), w.opts)
	paths, pathErr := svgpaths.Convert(strings.NewReader(doc.Text), w.opts)

	var leaves, containers int
	if treeErr == nil {
		res.Tree = tree
		containers, leaves = tree.Counts()
	}
	if pathErr == nil {
		res.PathDocument = paths
	}

	switch {
	case treeErr != nil:
		res.Error = treeErr.Error()
	case pathErr != nil:
		res.Error = pathErr.Error()
	}

	if res.Error != "" {
		w.stats.RecordFailure()
	} else {
		w.stats.Record(time.Since(start).Milliseconds(), leaves, containers)
	}
	return res, leaves
}

func extractorFor(job *Job) (source.Extractor, error) {
	ex, err := source.ForFile(job.Filename)
	if err != nil {
		return nil, err
	}
	switch e := ex.(type) {
	case *source.SVGExtractor:
		e.ContentType = job.ContentType()
	case *source.HTMLExtractor:
		e.ContentType = job.ContentType()
	}
	return ex, nil
}
