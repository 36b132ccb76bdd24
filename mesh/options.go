package mesh

import (
	"log/slog"

	"github.com/RoaringBitmap/roaring/v2"
)

// Option customizes a Mesh at construction.
// Option constructors panic on meaningless input; New itself never panics.
type Option func(*config)

type config struct {
	active   *roaring.Bitmap
	logger   *slog.Logger
	conn     Connectivity
	interp   Interpretation
	window   int
	rounding Rounding
}

func defaultConfig() config {
	return config{
		logger:   slog.New(slog.DiscardHandler),
		conn:     Face,
		interp:   Spatial,
		window:   1,
		rounding: RoundNearest,
	}
}

// WithActive restricts the node set to the vertices in bm.
// The bitmap is read once during New; later changes have no effect.
// Without this option every vertex is active.
func WithActive(bm *roaring.Bitmap) Option {
	if bm == nil {
		panic("mesh: WithActive(nil)")
	}
	return func(c *config) {
		c.active = bm
	}
}

// WithLogger routes debug output to l. The default logger discards.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("mesh: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithConnectivity sets the initial connectivity model.
func WithConnectivity(conn Connectivity) Option {
	if !conn.valid() {
		panic("mesh: WithConnectivity(" + conn.String() + ")")
	}
	return func(c *config) {
		c.conn = conn
	}
}

// WithInterpretation sets the initial interpretation of the third axis.
func WithInterpretation(i Interpretation) Option {
	if !i.valid() {
		panic("mesh: WithInterpretation(" + i.String() + ")")
	}
	return func(c *config) {
		c.interp = i
	}
}

// WithTemporalWindow sets the TemporalExpanded window radius r ∈ [0, MaxTemporalWindow].
func WithTemporalWindow(r int) Option {
	if r < 0 || r > MaxTemporalWindow {
		panic("mesh: WithTemporalWindow out of range")
	}
	return func(c *config) {
		c.window = r
	}
}

// WithRounding sets how deformed positions snap to the lattice.
func WithRounding(r Rounding) Option {
	if !r.valid() {
		panic("mesh: WithRounding(" + r.String() + ")")
	}
	return func(c *config) {
		c.rounding = r
	}
}
