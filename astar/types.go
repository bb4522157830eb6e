package astar

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGrid indicates that a nil *gridmap.Grid was passed in.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilHeuristic indicates that WithHeuristic was given a nil function.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("astar: workers must be at least 1")

	// ErrUnknownHeuristic indicates ParseHeuristic did not recognise a name.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")
)

// State is the phase of a single search run.
//
//	Initialized → Expanding (repeated) → Found | Exhausted
type State int

const (
	// Initialized: constructed, nothing popped yet.
	Initialized State = iota
	// Expanding: at least one cell settled, goal not yet reached.
	Expanding
	// Found: the goal was popped; Result holds the path.
	Found
	// Exhausted: the frontier emptied without reaching the goal.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Expanding:
		return "expanding"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Done reports whether s is terminal.
func (s State) Done() bool { return s == Found || s == Exhausted }

// Result is the outcome of a search.
//
// Path      – start…goal inclusive, consecutive cells 4-adjacent; nil if not Found.
// Cost      – sum of the costs of every path cell except the start.
// Expanded  – number of cells popped and settled (the goal included).
// Found     – false means no path exists (NoPathFound); not an error.
type Result struct {
	Path     []gridmap.Cell `json:"path"`
	Cost     int            `json:"cost"`
	Expanded int            `json:"expanded"`
	Found    bool           `json:"found"`
}

// Options configures a search.
//
// Heuristic – estimate of remaining cost; default Blended.
// Workers   – parallel searches run by FindAll; default runtime.NumCPU().
type Options struct {
	Heuristic Heuristic
	Workers   int
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options{Heuristic: Blended, Workers: runtime.NumCPU()}.
func DefaultOptions() Options {
	return Options{
		Heuristic: Blended,
		Workers:   runtime.NumCPU(),
	}
}

// WithHeuristic selects the heuristic. A nil h makes the search fail with ErrNilHeuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithWorkers bounds how many searches FindAll runs at once.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// buildOptions applies opts over the defaults and validates the result.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Heuristic == nil {
		return cfg, ErrNilHeuristic
	}
	if cfg.Workers < 1 {
		return cfg, ErrBadWorkers
	}
	return cfg, nil
}
