// Package measures implements corpus-linguistics association measures:
// statistics that score how strongly two linguistic events cooccur
// compared to chance, given a 2x2 contingency table per item.
//
// See http://www.collocations.de/AM/index.html for the underlying
// formulae.
package measures

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"colloc/domain/contingency"
	"colloc/domain/core"
	"colloc/internal/frequencies"
	"colloc/ports"
)

// AssociationMeasure is implemented by each association measure.
type AssociationMeasure interface {
	Name() string
	Description() string
	// Columns lists the frame columns the measure reads.
	Columns() []string
	// Score computes one score per frame row. Rows with degenerate
	// counts score NaN or ±Inf, never an error; an error means a column
	// the measure reads is missing from the frame.
	Score(f *contingency.Frame) ([]float64, error)
}

// Registry returns every implemented measure in canonical order,
// including experimental ones.
func Registry() []AssociationMeasure {
	return []AssociationMeasure{
		NewZScoreMeasure(),
		NewTScoreMeasure(),
		NewDiceMeasure(),
		NewLogLikelihoodMeasure(true),
		NewMutualInformationMeasure(),
		NewLogRatioMeasure(),
		NewHypergeometricLikelihoodMeasure(),
	}
}

// DefaultMeasures returns the measures evaluated when the caller does
// not select a subset. hypergeometric_likelihood is excluded: its
// output degenerates for realistic corpus sizes.
func DefaultMeasures() []AssociationMeasure {
	return []AssociationMeasure{
		NewZScoreMeasure(),
		NewTScoreMeasure(),
		NewDiceMeasure(),
		NewLogLikelihoodMeasure(true),
		NewMutualInformationMeasure(),
		NewLogRatioMeasure(),
	}
}

// Engine evaluates a selection of association measures over a frame in
// one batch, attaching one score column per measure.
type Engine struct {
	builder  ports.FrequencyBuilder
	registry []AssociationMeasure
	byName   map[string]AssociationMeasure
}

// NewEngine creates an engine backed by the given frequency builder. A
// nil builder falls back to the reference independence-model builder.
func NewEngine(builder ports.FrequencyBuilder) *Engine {
	if builder == nil {
		builder = frequencies.NewBuilder()
	}
	registry := Registry()
	byName := make(map[string]AssociationMeasure, len(registry))
	for _, m := range registry {
		byName[m.Name()] = m
	}
	return &Engine{builder: builder, registry: registry, byName: byName}
}

// ListMeasures returns the names of all registered measures.
func (e *Engine) ListMeasures() []string {
	names := make([]string, len(e.registry))
	for i, m := range e.registry {
		names[i] = m.Name()
	}
	return names
}

// Select resolves measure names against the registry. Names with no
// registered measure are silently skipped, so callers may pass an
// over-inclusive candidate list. A nil selection yields the default
// measure set.
func (e *Engine) Select(names []string) []AssociationMeasure {
	if names == nil {
		return DefaultMeasures()
	}
	selected := make([]AssociationMeasure, 0, len(names))
	for _, name := range names {
		if m, ok := e.byName[name]; ok {
			selected = append(selected, m)
		}
	}
	return selected
}

// Calculate evaluates the named measures over the frame and attaches
// one column per measure, named after it. A nil names slice selects the
// default measure set. When inplace is true the input frame is mutated
// and returned; otherwise an independent copy is returned and the input
// frame is left untouched.
func (e *Engine) Calculate(f *contingency.Frame, names []string, inplace bool) (*contingency.Frame, error) {
	return e.CalculateMeasures(f, e.Select(names), inplace)
}

// CalculateMeasures is Calculate with the selection already resolved.
func (e *Engine) CalculateMeasures(f *contingency.Frame, selected []AssociationMeasure, inplace bool) (*contingency.Frame, error) {
	out := f
	if !inplace {
		out = f.Copy()
	}
	if len(selected) == 0 {
		return out, nil
	}

	// One completion pass before dispatch, so every measure reads the
	// same derived columns. A frame without full observed counts is
	// left as is; a measure that needs the missing columns reports the
	// lookup failure itself.
	if _, err := e.builder.Complete(out, true); err != nil && !core.IsObservedMissing(err) {
		return nil, err
	}

	// Measures only read the frame, so they can score concurrently.
	// Columns are attached afterwards in selection order, keeping the
	// output identical to serial evaluation.
	g := new(errgroup.Group)
	results := make([][]float64, len(selected))
	for i, m := range selected {
		i, m := i, m
		g.Go(func() error {
			scores, err := m.Score(out)
			if err != nil {
				return fmt.Errorf("%s: %w", m.Name(), err)
			}
			results[i] = scores
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, m := range selected {
		if err := out.SetColumn(m.Name(), results[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Standalone per-measure entry points. Each evaluates a single measure,
// completing derived columns on a private copy when the frame lacks
// them; the caller's frame is never modified.

func ZScore(f *contingency.Frame) ([]float64, error) {
	return scoreResolved(NewZScoreMeasure(), f)
}

func TScore(f *contingency.Frame) ([]float64, error) {
	return scoreResolved(NewTScoreMeasure(), f)
}

func MutualInformation(f *contingency.Frame) ([]float64, error) {
	return scoreResolved(NewMutualInformationMeasure(), f)
}

func Dice(f *contingency.Frame) ([]float64, error) {
	return scoreResolved(NewDiceMeasure(), f)
}

func LogLikelihood(f *contingency.Frame, signed bool) ([]float64, error) {
	return scoreResolved(NewLogLikelihoodMeasure(signed), f)
}

func HypergeometricLikelihood(f *contingency.Frame) ([]float64, error) {
	return scoreResolved(NewHypergeometricLikelihoodMeasure(), f)
}

func LogRatio(f *contingency.Frame) ([]float64, error) {
	return scoreResolved(NewLogRatioMeasure(), f)
}

func scoreResolved(m AssociationMeasure, f *contingency.Frame) ([]float64, error) {
	if !f.HasAll(m.Columns()...) {
		// Best effort: if completion itself fails, Score reports the
		// missing column.
		if completed, err := frequencies.NewBuilder().Complete(f, false); err == nil {
			f = completed
		}
	}
	return m.Score(f)
}

// Numeric edge-case helpers shared by the measure implementations.

// nanIfZero maps an exact zero to NaN so a downstream ratio or
// logarithm yields NaN instead of ±Inf.
func nanIfZero(v float64) float64 {
	if v == 0 {
		return math.NaN()
	}
	return v
}

// sign is the conventional signum; sign(NaN) is NaN.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	case v == 0:
		return 0
	}
	return math.NaN()
}
