package main

import (
	"github.com/corblivar3d/corblivar/anneal"
	"github.com/corblivar3d/corblivar/config"
	"github.com/corblivar3d/corblivar/cost"
	"github.com/corblivar3d/corblivar/ops"
	"github.com/corblivar3d/corblivar/thermal"
	"github.com/corblivar3d/corblivar/tsvcluster"
)

func weightsFromConfig(c config.WeightsConfig) cost.Weights {
	return cost.Weights{
		ARTarget:         c.ARTarget,
		WAO:              c.AreaOutline,
		WOT:              c.Overall,
		WWL:              c.HPWL,
		WRU:              c.RoutingUtil,
		WTSV:             c.TSV,
		WAL:              c.Alignment,
		WTH:              c.Thermal,
		DieThickness:     c.DieThickness,
		BondThickness:    c.BondThickness,
		// ClusteringOn is set by the caller from config.ClusterConfig.On.
		TSVPitch:         c.TSVPitch,
		RoutingPerSignal: c.RoutingPerSignal,
	}
}

func thermalConfigFromConfig(c config.ThermalConfig) thermal.Config {
	return thermal.Config{
		NX:              c.GridX,
		NY:              c.GridY,
		MaskRadius:      c.MaskRadius,
		MaskSigma:       c.MaskSigma,
		BaseTemp:        c.BaseTemp,
		InterlayerDecay: c.InterlayerDecay,
		TSVConductivity: c.TSVConductivity,
	}
}

func clusterConfigFromConfig(c config.ClusterConfig, pitch float64) tsvcluster.Config {
	return tsvcluster.Config{Pitch: pitch, Quantile: c.Quantile, MaxClusterSize: c.MaxClusterSize}
}

func annealOptionsFromConfig(c config.AnnealConfig) anneal.Options {
	return anneal.Options{
		LoopLimit:               c.LoopLimit,
		SamplingLoopFactor:      c.SamplingLoopFactor,
		LoopFactor:              c.LoopFactor,
		TempInitFactor:          c.TempInitFactor,
		TempFactorPhase1:        c.TempFactorPhase1,
		TempFactorPhase1Limit:   c.TempFactorPhase1Limit,
		TempFactorPhase2:        c.TempFactorPhase2,
		TempFactorPhase3:        c.TempFactorPhase3,
		ReheatCostSamples:       c.ReheatCostSamples,
		ReheatStdDevCostLimit:   c.ReheatStdDevCostLimit,
		MaxInnerAttemptsPerStep: c.MaxInnerAttemptsPerStep,
		OperatorWeights:         ops.DefaultWeights(),
		MaxChangeT:              c.MaxChangeT,
		PackIterations:          c.PackIterations,
		Seed:                    c.Seed,
	}
}
