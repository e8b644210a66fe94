package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/service/cache"
)

// Solver defines the interface for minimum-volume arrangement searches.
type Solver interface {
	// Solve returns the minimum-volume grid arrangement that accommodates
	// exactly quantity units of the given dimensions, with bufferInches of
	// clearance added per axis. Returns nil when quantity is not positive or
	// no feasible candidate exists.
	Solve(quantity int, unit model.Dimensions, bufferInches float64) *model.Arrangement
}

// SolverOption configures an ArrangementSolver.
type SolverOption func(*ArrangementSolver)

// ArrangementSolver implements Solver by enumerating every factor triple of
// the quantity and keeping the candidate with the smallest outer volume.
type ArrangementSolver struct {
	cache cache.Cache
}

// NewArrangementSolver creates a new ArrangementSolver with the given options.
func NewArrangementSolver(opts ...SolverOption) *ArrangementSolver {
	s := &ArrangementSolver{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithSolveCache enables result caching with the specified capacity and TTL.
func WithSolveCache(capacity int, ttl time.Duration) SolverOption {
	return func(s *ArrangementSolver) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) SolverOption {
	return func(s *ArrangementSolver) {
		s.cache = c
	}
}

// Solve enumerates every ordered factor triple (a,b,c) with a·b·c == quantity
// and selects the one whose outer box (count × unit dimension + buffer per
// axis) has minimum volume. On exact volume ties the first candidate in
// enumeration order is kept; this tie-break is stable, not meaningful.
func (s *ArrangementSolver) Solve(quantity int, unit model.Dimensions, bufferInches float64) *model.Arrangement {
	if quantity <= 0 {
		return nil
	}

	var key string
	if s.cache != nil {
		key = solveKey(quantity, unit, bufferInches)
		if result, ok := s.cache.Get(key); ok {
			return result
		}
	}

	result := solveCore(quantity, unit, bufferInches)

	if s.cache != nil && result != nil {
		s.cache.Set(key, result)
	}

	return result
}

// solveCore is the exhaustive divisor-triple search.
func solveCore(quantity int, unit model.Dimensions, bufferInches float64) *model.Arrangement {
	var best *model.Arrangement

	for a := 1; a <= quantity; a++ {
		if quantity%a != 0 {
			continue
		}
		rest := quantity / a
		for b := 1; b <= rest; b++ {
			if rest%b != 0 {
				continue
			}
			c := rest / b

			for _, counts := range distinctPermutations(a, b, c) {
				candidate := evaluate(counts, unit, bufferInches)
				if candidate == nil {
					continue
				}
				if best == nil || candidate.VolumeCubicFeet < best.VolumeCubicFeet {
					best = candidate
				}
			}
		}
	}

	return best
}

// evaluate builds the outer box for one axis assignment, discarding any
// candidate with a non-finite or non-positive dimension.
func evaluate(counts model.AxisCounts, unit model.Dimensions, buffer float64) *model.Arrangement {
	width := float64(counts.Width)*unit.Width + buffer
	depth := float64(counts.Depth)*unit.Depth + buffer
	height := float64(counts.Height)*unit.Height + buffer

	outer := model.Dimensions{Width: width, Depth: depth, Height: height}
	if !outer.Valid() {
		return nil
	}

	volume := width * depth * height / model.CubicInchesPerCubicFoot
	if math.IsNaN(volume) || math.IsInf(volume, 0) {
		return nil
	}

	return &model.Arrangement{
		Counts:          counts,
		Width:           width,
		Depth:           depth,
		Height:          height,
		VolumeCubicFeet: volume,
	}
}

// distinctPermutations returns every distinct axis assignment of the factor
// triple (a,b,c), collapsing duplicates that arise when two or more factors
// are equal: (2,2,1) yields 3 permutations, not 6.
func distinctPermutations(a, b, c int) []model.AxisCounts {
	all := [6][3]int{
		{a, b, c}, {a, c, b},
		{b, a, c}, {b, c, a},
		{c, a, b}, {c, b, a},
	}

	result := make([]model.AxisCounts, 0, 6)
	seen := make(map[[3]int]bool, 6)
	for _, p := range all {
		if seen[p] {
			continue
		}
		seen[p] = true
		result = append(result, model.AxisCounts{Width: p[0], Depth: p[1], Height: p[2]})
	}
	return result
}

// solveKey builds the cache key for a solve input.
func solveKey(quantity int, unit model.Dimensions, buffer float64) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(quantity))
	for _, v := range []float64{unit.Width, unit.Depth, unit.Height, buffer} {
		sb.WriteByte('|')
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return sb.String()
}
