package growth

import (
	"fmt"
	"gains/internal/domain"
	"math"

	"github.com/montanaflynn/stats"
)

// SeriesResult compares one leveraged case against the zero-leverage base.
type SeriesResult struct {
	Name        string
	LVR         float64
	Equity      float64
	Performance domain.Percent
	Annualised  domain.Percent
}

// CompareSeries runs every case over the same horizon and reports ending
// equity relative to the base case's ending portfolio.
func CompareSeries(base Params, cases []Params, years int) (float64, []SeriesResult, error) {
	baseSim, err := NewSimulation(base)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid base case: %w", err)
	}
	baseResult, err := baseSim.Run(years)
	if err != nil {
		return 0, nil, err
	}
	baseline := baseResult.Portfolio

	results := make([]SeriesResult, 0, len(cases))
	for i, p := range cases {
		sim, err := NewSimulation(p)
		if err != nil {
			return 0, nil, fmt.Errorf("invalid series case %d: %w", i, err)
		}
		result, err := sim.Run(years)
		if err != nil {
			return 0, nil, err
		}

		equity := result.Equity()
		performance := equity/baseline - 1
		annualised := math.Pow(1+performance, 1/float64(years)) - 1

		results = append(results, SeriesResult{
			Name:        fmt.Sprintf("Series %c", 'A'+i),
			LVR:         p.LVR,
			Equity:      equity,
			Performance: domain.PercentFromFraction(performance),
			Annualised:  domain.PercentFromFraction(annualised),
		})
	}

	return baseline, results, nil
}

// EquitySummary describes the monthly equity path of a single run.
type EquitySummary struct {
	Min  float64
	Max  float64
	Mean float64
}

func (r Result) Summary() (*EquitySummary, error) {
	data := stats.Float64Data(r.MonthlyEquity)

	min, err := stats.Min(data)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return nil, err
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}

	return &EquitySummary{Min: min, Max: max, Mean: mean}, nil
}
