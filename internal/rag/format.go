package rag

import (
	"fmt"
	"math"
)

// formatSimple turns relevant ranked results into simple-mode entries,
// preserving rank order. An empty input produces a single synthetic
// "No learnings found" entry; that is a valid empty-state response,
// not an error.
func formatSimple(relevant []RankedLearning) []SimpleResult {
	if len(relevant) == 0 {
		return []SimpleResult{
			{
				Title:       "No learnings found",
				Details:     []string{"Try logging some learnings to see results here."},
				CodeSnippet: "",
			},
		}
	}

	results := make([]SimpleResult, 0, len(relevant))
	for _, r := range relevant {
		result := SimpleResult{
			Title:       r.Learning.Description,
			Details:     []string{},
			CodeSnippet: r.Learning.CodeSnippet,
		}
		if r.Learning.FunctionName != "" {
			result.Details = append(result.Details, fmt.Sprintf("Function: %s", r.Learning.FunctionName))
		}
		if r.Learning.LibraryName != "" {
			result.Details = append(result.Details, fmt.Sprintf("Library: %s", r.Learning.LibraryName))
		}
		result.Details = append(result.Details, fmt.Sprintf("Match: %d%%", matchConfidence(r.Distance)))
		results = append(results, result)
	}

	return results
}

// matchConfidence maps a distance to an integer percentage in [0, 100].
// The transform (1 - distance/2) * 100 is monotonically decreasing in
// distance; it is a display heuristic, not a calibrated probability.
func matchConfidence(distance float32) int {
	confidence := (1 - float64(distance)/2) * 100
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}
	return int(math.Round(confidence))
}
