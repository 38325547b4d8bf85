package analyzer

import "github.com/linkvet/linkvet/pkg/features"

// Weights holds the fixed contribution of each suspicious signal to the
// risk score. A single configuration record is passed into the scorer
// rather than scattering literals, so tests can substitute their own.
type Weights struct {
	Phishing           float64
	Shortener          float64
	IPAddress          float64
	AtSymbol           float64
	SuspiciousTLD      float64
	DoubleSlash        float64
	MultipleSubdomains float64
	DashInDomain       float64
}

// DefaultWeights returns the production weight table. Blacklist membership
// dominates; lexical oddities contribute smaller amounts.
func DefaultWeights() Weights {
	return Weights{
		Phishing:           0.9,
		Shortener:          0.3,
		IPAddress:          0.3,
		AtSymbol:           0.3,
		SuspiciousTLD:      0.2,
		DoubleSlash:        0.2,
		MultipleSubdomains: 0.1,
		DashInDomain:       0.1,
	}
}

// Thresholds maps a score onto the three-tier verdict. Boundaries are
// inclusive: a score of exactly High is high risk, exactly Medium is medium.
type Thresholds struct {
	High   float64
	Medium float64
}

// DefaultThresholds returns the production verdict boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{High: 0.7, Medium: 0.4}
}

// Verdict strings produced by Thresholds.Verdict.
const (
	VerdictHigh   = "high risk"
	VerdictMedium = "medium risk"
	VerdictLow    = "low risk"
)

// Verdict returns the categorical verdict for a score.
func (t Thresholds) Verdict(score float64) string {
	switch {
	case score >= t.High:
		return VerdictHigh
	case score >= t.Medium:
		return VerdictMedium
	default:
		return VerdictLow
	}
}

// Score sums the weights of every fired signal and clamps the result to a
// maximum of 1.0 so the score is always bounded.
func Score(w Weights, isShortened, isPhishing bool, set features.Set) float64 {
	score := 0.0

	if isPhishing {
		score += w.Phishing
	}

	if isShortened {
		score += w.Shortener
	}

	if set.Has(features.IPAddress) {
		score += w.IPAddress
	}

	if set.Has(features.AtSymbol) {
		score += w.AtSymbol
	}

	if set.Has(features.SuspiciousTLD) {
		score += w.SuspiciousTLD
	}

	if set.Has(features.DoubleSlash) {
		score += w.DoubleSlash
	}

	if set.Has(features.MultipleSubdomains) {
		score += w.MultipleSubdomains
	}

	if set.Has(features.DashInDomain) {
		score += w.DashInDomain
	}

	if score > 1.0 {
		score = 1.0
	}

	return score
}
