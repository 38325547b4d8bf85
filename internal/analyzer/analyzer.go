// Package analyzer sequences the URL analysis pipeline: normalization,
// blacklist membership, shortener detection, lexical feature extraction,
// and weighted risk scoring.
package analyzer

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/linkvet/linkvet/pkg/blacklist"
	"github.com/linkvet/linkvet/pkg/features"
	"github.com/linkvet/linkvet/pkg/shortener"
)

// Config holds the scoring configuration for an Analyzer.
type Config struct {
	Weights    Weights
	Thresholds Thresholds
}

// DefaultConfig returns the production scoring configuration.
func DefaultConfig() Config {
	return Config{
		Weights:    DefaultWeights(),
		Thresholds: DefaultThresholds(),
	}
}

// Result is the outcome of analyzing one URL. Immutable once constructed.
type Result struct {
	Analysis    map[string]string `json:"analysis"`
	URL         string            `json:"url"`
	RiskScore   float64           `json:"risk_score"`
	IsShortened bool              `json:"is_shortened"`
	IsPhishing  bool              `json:"is_phishing"`
}

// Analyzer runs the analysis pipeline against a set of blacklist sources.
type Analyzer struct {
	sources *blacklist.Registry
	logger  *slog.Logger
	config  Config
}

// New creates an Analyzer consulting the given blacklist sources.
func New(sources *blacklist.Registry, config Config, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Analyzer{
		sources: sources,
		config:  config,
		logger:  logger,
	}
}

// Analyze runs the full pipeline for a raw input that has already passed
// IsValid. The blacklist, shortener, and feature checks are independent and
// run concurrently; their results are combined, never used to short-circuit
// one another. A canceled context discards the in-flight work without
// touching any other request.
func (a *Analyzer) Analyze(ctx context.Context, raw string) (*Result, error) {
	normalized := Normalize(raw)

	var (
		isPhishing  bool
		matched     []string
		isShortened bool
		set         features.Set
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		isPhishing, matched = a.sources.CheckAll(gctx, normalized)
		return nil
	})

	g.Go(func() error {
		isShortened = shortener.IsKnown(normalized)
		return nil
	})

	g.Go(func() error {
		set = features.Extract(normalized)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	score := Score(a.config.Weights, isShortened, isPhishing, set)

	analysis := describeSignals(isShortened, matched, set)
	analysis["verdict"] = a.config.Thresholds.Verdict(score)

	a.logger.Debug("analyzed url",
		"url", normalized,
		"score", score,
		"verdict", analysis["verdict"],
		"blacklists", matched,
	)

	return &Result{
		URL:         normalized,
		IsShortened: isShortened,
		IsPhishing:  isPhishing,
		RiskScore:   score,
		Analysis:    analysis,
	}, nil
}

// featureDescriptions explains each lexical signal in analysis output.
var featureDescriptions = map[string]string{
	features.SuspiciousTLD:      "top-level domain is frequently abused",
	features.DashInDomain:       "registrable domain contains a hyphen",
	features.MultipleSubdomains: "host has an unusually deep subdomain chain",
	features.IPAddress:          "URL is a literal IP address",
	features.AtSymbol:           "URL embeds an @ symbol",
	features.DoubleSlash:        "URL embeds a second authority separator",
}

// describeSignals records which signals fired, for observability only; the
// descriptions never feed back into the score.
func describeSignals(isShortened bool, matched []string, set features.Set) map[string]string {
	analysis := make(map[string]string)

	if len(matched) > 0 {
		analysis["blacklist"] = "flagged by " + strings.Join(matched, ", ") + " blacklist"
	}

	if isShortened {
		analysis["shortener"] = "host belongs to a known link-shortening service"
	}

	for name, description := range featureDescriptions {
		if set.Has(name) {
			analysis[name] = description
		}
	}

	return analysis
}
