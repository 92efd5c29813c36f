// Package config holds the tunable knobs of the analytics engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TuningConfig represents the root configuration for analysis parameters.
// Fields are pointers so a partial JSON document only overrides what it
// names; the Get* accessors supply defaults for everything else. The same
// document shape serves startup configuration and runtime updates.
type TuningConfig struct {
	// Outlier detection params
	OutlierTopN *int `json:"outlier_top_n,omitempty"`

	// Clustering params
	ClusterCount     *int   `json:"cluster_count,omitempty"`
	ClusterSeed      *int64 `json:"cluster_seed,omitempty"`
	MaxIterations    *int   `json:"max_iterations,omitempty"`
	MaxClusterInputs *int   `json:"max_cluster_inputs,omitempty"`
}

// EmptyTuningConfig returns a TuningConfig with all fields set to nil.
// Use LoadTuningConfig to load actual values from a file.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig loads a TuningConfig from a JSON file.
// The file is validated to ensure it has a .json extension and is under the
// max file size. Fields omitted from the JSON file retain their default
// values, so partial configs are safe.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *TuningConfig) Validate() error {
	if c.OutlierTopN != nil && *c.OutlierTopN < 1 {
		return fmt.Errorf("outlier_top_n must be at least 1, got %d", *c.OutlierTopN)
	}
	if c.ClusterCount != nil && *c.ClusterCount < 1 {
		return fmt.Errorf("cluster_count must be at least 1, got %d", *c.ClusterCount)
	}
	if c.ClusterSeed != nil {
		if *c.ClusterSeed < 0 || *c.ClusterSeed > 0xFFFFFFFF {
			return fmt.Errorf("cluster_seed must fit an unsigned 32-bit integer, got %d", *c.ClusterSeed)
		}
	}
	if c.MaxIterations != nil && *c.MaxIterations < 1 {
		return fmt.Errorf("max_iterations must be at least 1, got %d", *c.MaxIterations)
	}
	if c.MaxClusterInputs != nil && *c.MaxClusterInputs < 1 {
		return fmt.Errorf("max_cluster_inputs must be at least 1, got %d", *c.MaxClusterInputs)
	}
	return nil
}

// GetOutlierTopN returns the outlier_top_n value or the default.
func (c *TuningConfig) GetOutlierTopN() int {
	if c.OutlierTopN == nil {
		return 10
	}
	return *c.OutlierTopN
}

// GetClusterCount returns the cluster_count value or the default.
func (c *TuningConfig) GetClusterCount() int {
	if c.ClusterCount == nil {
		return 4
	}
	return *c.ClusterCount
}

// GetClusterSeed returns the cluster_seed value or the default.
// Clustering reproducibility depends on this staying fixed between runs.
func (c *TuningConfig) GetClusterSeed() uint32 {
	if c.ClusterSeed == nil {
		return 1337
	}
	return uint32(*c.ClusterSeed)
}

// GetMaxIterations returns the max_iterations value or the default.
func (c *TuningConfig) GetMaxIterations() int {
	if c.MaxIterations == nil {
		return 25
	}
	return *c.MaxIterations
}

// GetMaxClusterInputs returns the max_cluster_inputs value or the default.
// Runtime is bounded by capping input size before invocation rather than by
// cancellation; callers truncate the feature set to this many rows.
func (c *TuningConfig) GetMaxClusterInputs() int {
	if c.MaxClusterInputs == nil {
		return 10000
	}
	return *c.MaxClusterInputs
}
