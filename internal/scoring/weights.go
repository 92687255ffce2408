package scoring

// DefaultWeights returns the stock weight table covering every registered
// criterion. Callers may pass a partial table instead; the composite
// re-normalizes over whatever subset is configured.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		"skill":        0.3,
		"grade":        0.3,
		"size":         0.15,
		"location":     0.05,
		"practice_day": 0.05,
		"first_round":  0.15,
		"top":          0.1,
		"mid":          0.1,
		"bottom":       0.1,
		"teammate":     0.1,
		"goalie":       0.1,
	}
}
