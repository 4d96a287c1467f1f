// Package config loads and validates the keyed-scalar configuration
// spec.md §6 lists as an external interface: log level, layer count,
// outline dimensions, per-phase cooling factors, per-term cost weights,
// packing iterations, clustering on/off, and random seed.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full annealing-run configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Die      DieConfig      `yaml:"die"`
	Weights  WeightsConfig  `yaml:"weights"`
	Thermal  ThermalConfig  `yaml:"thermal"`
	Cluster  ClusterConfig  `yaml:"cluster"`
	Anneal   AnnealConfig   `yaml:"anneal"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// LoggingConfig controls corblog's output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DieConfig describes the fixed outline every layer shares and the layer
// count.
type DieConfig struct {
	Layers    int     `yaml:"layers"`
	OutlineX  float64 `yaml:"outline_x"`
	OutlineY  float64 `yaml:"outline_y"`
}

// WeightsConfig mirrors cost.Weights with YAML tags; cmd/corblivar's
// weightsFromConfig copies it onto a cost.Weights value so the cost
// package stays free of a config import.
type WeightsConfig struct {
	ARTarget         float64 `yaml:"ar_target"`
	AreaOutline      float64 `yaml:"area_outline"`
	Overall          float64 `yaml:"overall"`
	HPWL             float64 `yaml:"hpwl"`
	RoutingUtil      float64 `yaml:"routing_util"`
	TSV              float64 `yaml:"tsv"`
	Alignment        float64 `yaml:"alignment"`
	Thermal          float64 `yaml:"thermal"`
	DieThickness     float64 `yaml:"die_thickness"`
	BondThickness    float64 `yaml:"bond_thickness"`
	TSVPitch         float64 `yaml:"tsv_pitch"`
	RoutingPerSignal bool    `yaml:"routing_per_signal"`
}

// ThermalConfig mirrors thermal.Config.
type ThermalConfig struct {
	GridX           int     `yaml:"grid_x"`
	GridY           int     `yaml:"grid_y"`
	MaskRadius      int     `yaml:"mask_radius"`
	MaskSigma       float64 `yaml:"mask_sigma"`
	BaseTemp        float64 `yaml:"base_temp"`
	InterlayerDecay float64 `yaml:"interlayer_decay"`
	TSVConductivity float64 `yaml:"tsv_conductivity"`
}

// ClusterConfig mirrors tsvcluster.Config plus the clustering on/off
// switch spec.md §6 names.
type ClusterConfig struct {
	On             bool    `yaml:"on"`
	Quantile       float64 `yaml:"quantile"`
	MaxClusterSize int     `yaml:"max_cluster_size"`
}

// AnnealConfig mirrors anneal.Options.
type AnnealConfig struct {
	LoopLimit               int     `yaml:"loop_limit"`
	SamplingLoopFactor      float64 `yaml:"sampling_loop_factor"`
	LoopFactor              float64 `yaml:"loop_factor"`
	TempInitFactor          float64 `yaml:"temp_init_factor"`
	TempFactorPhase1        float64 `yaml:"temp_factor_phase1"`
	TempFactorPhase1Limit   float64 `yaml:"temp_factor_phase1_limit"`
	TempFactorPhase2        float64 `yaml:"temp_factor_phase2"`
	TempFactorPhase3        float64 `yaml:"temp_factor_phase3"`
	ReheatCostSamples       int     `yaml:"reheat_cost_samples"`
	ReheatStdDevCostLimit   float64 `yaml:"reheat_stddev_cost_limit"`
	MaxInnerAttemptsPerStep int     `yaml:"max_inner_attempts_per_step"`
	MaxChangeT              int     `yaml:"max_change_t"`
	PackIterations          int     `yaml:"pack_iterations"`
	Seed                    int64   `yaml:"seed"`
	Parallel                bool    `yaml:"parallel"`
}

// MetricsConfig controls the Prometheus exporter.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// Default returns the configuration an annealing run uses when no file
// overrides it. It matches the defaults of the packages it mirrors, except
// that Weights.BondThickness and Weights.TSVPitch are 10 here, where
// cost.DefaultWeights uses 5 and 2.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Die:     DieConfig{Layers: 2, OutlineX: 1000, OutlineY: 1000},
		Weights: WeightsConfig{
			ARTarget:      1.0,
			AreaOutline:   1.0,
			Overall:       1.0,
			HPWL:          1.0,
			RoutingUtil:   1.0,
			TSV:           1.0,
			Alignment:     1.0,
			Thermal:       1.0,
			DieThickness:  50.0,
			BondThickness: 10.0,
			TSVPitch:      10.0,
		},
		Thermal: ThermalConfig{
			GridX: 64, GridY: 64,
			MaskRadius: 3, MaskSigma: 1.5,
			BaseTemp: 300.0, InterlayerDecay: 0.6, TSVConductivity: 0.3,
		},
		Cluster: ClusterConfig{On: true, Quantile: 0.9, MaxClusterSize: 4},
		Anneal:  annealDefaults(),
		Metrics: MetricsConfig{Enabled: false, Listen: ":9090"},
	}
}

func annealDefaults() AnnealConfig {
	return AnnealConfig{
		LoopLimit:               100,
		SamplingLoopFactor:      10,
		LoopFactor:              4.0 / 3.0,
		TempInitFactor:          1.0,
		TempFactorPhase1:        0.90,
		TempFactorPhase1Limit:   0.99,
		TempFactorPhase2:        0.95,
		TempFactorPhase3:        1.10,
		ReheatCostSamples:       6,
		ReheatStdDevCostLimit:   1e-3,
		MaxInnerAttemptsPerStep: 5000,
		MaxChangeT:              3,
		PackIterations:          1,
		Seed:                    1,
	}
}

// Load reads and parses a YAML configuration file, starting from Default
// so an omitted key keeps its default value. A missing path returns the
// defaults unchanged, mirroring the "no config file" convenience the
// teacher's Load affords.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg as YAML to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %q: %w", path, err)
	}
	return nil
}
