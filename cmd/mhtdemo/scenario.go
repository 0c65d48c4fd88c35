package main

import "github.com/arfken-labs/mht/model"

// crossingTracksScenario builds the report batch for each of n scans for
// two targets that start apart, converge, and cross at scan 5, where both
// sit at position 5 (§8 scenario 2, "crossing tracks"): position(t) =
// start + slope*t for
// each track, so that around the crossing scan a single-hypothesis
// tracker would confuse which track continues which.
func crossingTracksScenario(n int) [][]model.Report {
	const (
		startA, slopeA = 0.0, 1.0
		startB, slopeB = 10.0, -1.0
		falseAlarmLL   = -8.0
	)

	batches := make([][]model.Report, n)
	for t := 0; t < n; t++ {
		posA := startA + slopeA*float64(t)
		posB := startB + slopeB*float64(t)
		batches[t] = []model.Report{
			demoReport{pos: posA, falseAlarmLL: falseAlarmLL},
			demoReport{pos: posB, falseAlarmLL: falseAlarmLL},
		}
	}
	return batches
}
