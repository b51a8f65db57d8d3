package main

import (
	"flag"
	"fmt"
	"log"

	"gains/internal/domain"
	"gains/internal/growth"

	"github.com/montanaflynn/stats"
)

func main() {
	years := flag.Int("years", 10, "simulation horizon in years")
	flag.Parse()

	base := growth.DefaultParams()
	base.Deposit = 20000
	base.SavingsPerMonth = 600
	base.Method = growth.MethodHomeLoan
	base.LVR = 0

	cases := []growth.Params{}
	for _, lvr := range []float64{0.33, 0.5, 0.66, 0.75} {
		p := base
		p.LVR = lvr
		cases = append(cases, p)
	}
	slm := base
	slm.LVR = 0.5
	slm.Method = growth.MethodStraightLine
	io := base
	io.LVR = 0.5
	io.Method = growth.MethodInterestOnly
	cases = append(cases, slm, io)

	baseline, results, err := growth.CompareSeries(base, cases, *years)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Baseline: $%.0f\n\n", baseline)

	annualised := domain.PercentData{}
	for _, r := range results {
		fmt.Printf("%s: $%.0f = %+6.2f%% (%.2f%% p.a.) with %.0f%% LVR\n",
			r.Name, r.Equity, r.Performance.AsPercent(), r.Annualised.AsPercent(), r.LVR*100)
		annualised = append(annualised, r.Annualised)
	}

	mean, err := stats.Mean(annualised.ToStatsData())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nmean annualised outperformance: %.2f%%\n", mean)
}
