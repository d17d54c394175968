// Command categorize runs the batch categorization pipeline against a
// SQLite corpus database.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"github.com/sunnahlabs/mizan/pkg/mizan"
	"github.com/sunnahlabs/mizan/pkg/mizan/cluster"
	"github.com/sunnahlabs/mizan/pkg/mizan/config"
	"github.com/sunnahlabs/mizan/pkg/mizan/pipeline"
	"github.com/sunnahlabs/mizan/pkg/mizan/store/sqlite"
)

func main() {
	// Optional .env for local runs; flags win over environment.
	_ = godotenv.Load()

	var (
		dbPath        = flag.String("db", os.Getenv("MIZAN_DB"), "SQLite database path (required, or MIZAN_DB)")
		taxonomyPath  = flag.String("taxonomy", "configs/taxonomy.yaml", "Taxonomy asset")
		clustersPath  = flag.String("clusters", "configs/clusters.yaml", "Cluster asset")
		stopwordsPath = flag.String("stopwords", "", "Stop-word asset (optional)")
		batchSize     = flag.Int("batch", pipeline.DefaultBatchSize, "Documents per round trip")
		floor         = flag.Int("floor", pipeline.DefaultConfidenceFloor, "Confidence floor for write-back")
		semantic      = flag.Bool("semantic", true, "Enable the cosine-similarity cluster fallback")
		threshold     = flag.Float64("threshold", cluster.DefaultMinSimilarity, "Similarity floor for the fallback")
		verbose       = flag.Bool("verbose", false, "Debug logging")
	)
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *dbPath == "" {
		log.Fatal("--db (or MIZAN_DB) required")
	}

	ctx := context.Background()

	loader := config.Loader{
		TaxonomyPath:  *taxonomyPath,
		ClustersPath:  *clustersPath,
		StopwordsPath: *stopwordsPath,
	}
	components, err := loader.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load taxonomy assets")
	}
	log.WithField("categories", len(components.Set.Categories)).Info("taxonomy loaded")

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	defer st.Close()

	engine := mizan.New(mizan.Options{
		Set:              components.Set,
		Stopwords:        components.Stopwords,
		SemanticFallback: *semantic,
		MinSimilarity:    *threshold,
	})

	runner := pipeline.NewRunner(engine, st, pipeline.Config{
		BatchSize:       *batchSize,
		ConfidenceFloor: *floor,
	}, log)

	var bar *progressbar.ProgressBar
	runner.OnPage = func(s pipeline.Stats) {
		if bar == nil {
			bar = progressbar.Default(s.Total, "categorizing")
		}
		_ = bar.Set(s.Processed + s.Failed)
	}

	stats, err := runner.Run(ctx)
	if err != nil {
		log.WithError(err).Fatal("categorization run failed")
	}
	if bar != nil {
		_ = bar.Finish()
	}

	log.WithFields(logrus.Fields{
		"run_id":         stats.RunID,
		"total":          stats.Total,
		"processed":      stats.Processed,
		"categorized":    stats.Categorized,
		"low_confidence": stats.LowConfidence,
		"failed":         stats.Failed,
		"semantic":       stats.SemanticUsed,
	}).Info("done")
}
