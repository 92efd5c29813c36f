// Package main provides a trace analysis tool for performance record
// sessions. It reads a JSON array of records, runs the analytics engine
// (summary statistics, robust outlier detection, k-means clustering), and
// prints a plain-text report.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/tracelens-data/latency.report/internal/analysis"
	"github.com/tracelens-data/latency.report/internal/config"
	"github.com/tracelens-data/latency.report/internal/idgen"
)

// recordJSON is the wire shape of one input record.
type recordJSON struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	StartTime float64 `json:"start_time"`
	Duration  float64 `json:"duration"`
	Size      float64 `json:"size"`
}

func main() {
	var (
		inputFile  = flag.String("input", "", "JSON file containing an array of records (required)")
		configFile = flag.String("config", "", "optional tuning config JSON file")
		topN       = flag.Int("top", 0, "override outlier limit (0 = config default)")
		clusters   = flag.Int("clusters", 0, "override cluster count (0 = config default)")
		seed       = flag.Int64("seed", -1, "override clustering seed (-1 = config default)")
		verbose    = flag.Bool("verbose", false, "log per-stage progress")
	)
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.EmptyTuningConfig()
	if *configFile != "" {
		loaded, err := config.LoadTuningConfig(*configFile)
		if err != nil {
			log.Fatalf("[TraceAnalyse] %v", err)
		}
		cfg = loaded
	}

	opts := analysis.AnalysisOptions{
		TopN:          cfg.GetOutlierTopN(),
		K:             cfg.GetClusterCount(),
		Seed:          cfg.GetClusterSeed(),
		MaxIterations: cfg.GetMaxIterations(),
	}
	if *topN > 0 {
		opts.TopN = *topN
	}
	if *clusters > 0 {
		opts.K = *clusters
	}
	if *seed >= 0 {
		opts.Seed = uint32(*seed)
	}

	records, err := loadRecords(*inputFile, idgen.UUID(), cfg.GetMaxClusterInputs())
	if err != nil {
		log.Fatalf("[TraceAnalyse] %v", err)
	}
	if *verbose {
		log.Printf("[TraceAnalyse] loaded %d records from %s", len(records), *inputFile)
	}

	result, err := analysis.Analyze(records, opts)
	if err != nil {
		log.Fatalf("[TraceAnalyse] analysis failed: %v", err)
	}

	printReport(result, opts)
}

// loadRecords reads, pre-cleans, and deduplicates the input session. Records
// without an id are assigned one; duplicate ids keep the first occurrence.
// The set is truncated to maxRecords to bound analysis runtime.
func loadRecords(path string, ids idgen.Generator, maxRecords int) ([]analysis.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var raw []recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}

	seen := make(map[string]bool, len(raw))
	records := make([]analysis.Record, 0, len(raw))
	for _, r := range raw {
		id := r.ID
		if id == "" {
			id = ids.NextID()
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		size := r.Size
		if !finite(size) || size < 0 {
			size = 0
		}
		records = append(records, analysis.Record{
			ID:        id,
			Kind:      analysis.RecordKind(r.Kind),
			StartTime: r.StartTime,
			Duration:  r.Duration,
			Size:      size,
		})
		if len(records) == maxRecords {
			break
		}
	}
	return records, nil
}

func printReport(result *analysis.Analysis, opts analysis.AnalysisOptions) {
	s := result.Summary
	fmt.Printf("Session span: %.1fms – %.1fms\n", s.MinTime, s.MaxTime)
	fmt.Printf("Duration p50: %.2fms  p95: %.2fms\n", s.P50Duration, s.P95Duration)

	fmt.Printf("\nOutliers (top %d, robust z > 2.5):\n", opts.TopN)
	if len(result.Outliers) == 0 {
		fmt.Println("  none (or insufficient sample)")
	}
	for _, o := range result.Outliers {
		fmt.Printf("  %-24s %-10s dur=%.1fms z=%.2f\n", o.Record.ID, o.Record.Kind, o.Record.Duration, o.Score)
	}

	if result.Clusters == nil {
		fmt.Println("\nClustering: not performed (too few eligible records)")
		return
	}
	fmt.Printf("\nClusters (k=%d, seed=%d):\n", opts.K, opts.Seed)
	for c, n := range result.ClusterSizes {
		fmt.Printf("  cluster %d: %d records\n", c, n)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
