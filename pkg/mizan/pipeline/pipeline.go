// Package pipeline drives batch categorization: it pages documents out of
// the datastore, categorizes each one independently, and upserts the
// resulting annotations in bulk. All per-document and per-page problems are
// recovered locally and aggregated into run statistics; only a failure to
// start the run at all is surfaced as an error.
package pipeline

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/sunnahlabs/mizan/internal/htmltext"
	"github.com/sunnahlabs/mizan/pkg/mizan"
	"github.com/sunnahlabs/mizan/pkg/mizan/store"
)

// Tunable defaults.
const (
	DefaultBatchSize       = 100
	DefaultConfidenceFloor = 10
)

// Config holds the pipeline tunables.
type Config struct {
	// BatchSize is the number of documents per fetch/write round trip.
	BatchSize int
	// ConfidenceFloor excludes results below it from write-back. Such
	// items count as low-confidence, not as failures.
	ConfidenceFloor int
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.ConfidenceFloor <= 0 {
		c.ConfidenceFloor = DefaultConfidenceFloor
	}
	return c
}

// Stats aggregates the outcome of one run.
type Stats struct {
	RunID         string
	Total         int64 // documents in the datastore at run start
	Processed     int   // documents categorized (successfully or not written)
	Categorized   int   // annotations written
	LowConfidence int   // below the floor, deliberately not written
	Failed        int   // per-item errors plus items lost to failed writes
	SemanticUsed  int   // cosine fallback changed the outcome vs keyword-only
}

// Runner executes categorization runs against a store.
type Runner struct {
	engine  *mizan.Engine
	store   store.Store
	cfg     Config
	log     logrus.FieldLogger
	entropy *ulid.MonotonicEntropy

	// OnPage, when set, is invoked with a snapshot of the running stats
	// after every page. Used for progress reporting.
	OnPage func(Stats)
}

// NewRunner creates a runner. A nil logger falls back to the standard
// logrus logger.
func NewRunner(engine *mizan.Engine, st store.Store, cfg Config, log logrus.FieldLogger) *Runner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{
		engine:  engine,
		store:   st,
		cfg:     cfg.withDefaults(),
		log:     log,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Run categorizes the whole corpus, one page at a time, strictly
// sequentially. A failed page fetch skips that page; a failed bulk write
// marks the batch's items as failed; neither aborts the run.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	stats := Stats{RunID: ulid.MustNew(ulid.Now(), r.entropy).String()}
	log := r.log.WithField("run_id", stats.RunID)

	total, err := r.store.CountDocuments(ctx)
	if err != nil {
		return stats, fmt.Errorf("count documents: %w", err)
	}
	stats.Total = total
	log.WithField("total", total).Info("categorization run started")

	for offset := 0; int64(offset) < total; offset += r.cfg.BatchSize {
		docs, err := r.store.FetchPage(ctx, offset, r.cfg.BatchSize)
		if err != nil {
			log.WithError(err).WithField("offset", offset).Warn("page fetch failed, skipping page")
			continue
		}
		if len(docs) == 0 {
			continue
		}

		updates := make([]store.Annotation, 0, len(docs))
		for _, doc := range docs {
			text := htmltext.Strip(doc.Text())

			res, err := r.categorize(text)
			if err != nil {
				stats.Failed++
				log.WithError(err).WithField("doc_id", doc.ID).Warn("document failed")
				continue
			}
			stats.Processed++

			if res.Confidence < r.cfg.ConfidenceFloor {
				stats.LowConfidence++
				continue
			}

			if res.Subcategory != "" && res.Subcategory != r.engine.KeywordCluster(text) {
				stats.SemanticUsed++
			}
			updates = append(updates, store.Annotation{
				ID:          doc.ID,
				CategoryID:  res.CategoryID,
				Subcategory: res.Subcategory,
				Keywords:    res.Keywords,
			})
			stats.Categorized++
		}

		if len(updates) > 0 {
			if err := r.store.UpsertAnnotations(ctx, updates); err != nil {
				stats.Failed += len(updates)
				stats.Categorized -= len(updates)
				log.WithError(err).WithField("batch", len(updates)).Error("bulk write failed")
			}
		}

		log.WithFields(logrus.Fields{
			"processed":      stats.Processed,
			"categorized":    stats.Categorized,
			"low_confidence": stats.LowConfidence,
			"semantic":       stats.SemanticUsed,
		}).Info("page complete")

		if r.OnPage != nil {
			r.OnPage(stats)
		}
	}

	log.WithFields(logrus.Fields{
		"processed":      stats.Processed,
		"categorized":    stats.Categorized,
		"low_confidence": stats.LowConfidence,
		"failed":         stats.Failed,
		"semantic":       stats.SemanticUsed,
	}).Info("categorization run complete")
	return stats, nil
}

// categorize guards a single document: a panic while scoring or clustering
// one item is turned into an error so it cannot take down the batch.
func (r *Runner) categorize(text string) (res mizan.Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("categorize: %v", p)
		}
	}()
	return r.engine.Categorize(text), nil
}
