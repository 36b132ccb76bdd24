package mesh

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
	"github.com/zibamira/filopodia-tool-sub002/scalar"
)

// Mesh is the neighbor graph over the active vertices of a scalar lattice.
// It holds non-owning references to the source values and to any bound
// deformation fields.
type Mesh[T scalar.Scalar] struct {
	dims   lattice.Dims
	voxel  r3.Vec
	values []T

	known    scalar.Range[T]
	hasKnown bool

	// nodeToVertex and vertexToNode form the node ↔ vertex bijection.
	nodeToVertex []int32
	vertexToNode []int32

	conn     Connectivity
	interp   Interpretation
	window   int
	rounding Rounding
	offsets  []Offset

	backward, forward *lattice.VectorField

	global    scalar.Range[T]
	hasGlobal bool

	sorted []int
	cache  *offsetCache

	logger *slog.Logger
}

// New builds a Mesh over f.
// Stage 1 (Validate): non-nil field, positive dims, matching value count, int32-indexable size.
// Stage 2 (Index): materialize the node ↔ vertex arrays from the active set.
// Stage 3 (Configure): compute the offset table for the chosen connectivity.
// Complexity: O(V) time and memory.
func New[T scalar.Scalar](f lattice.Field[T], opts ...Option) (*Mesh[T], error) {
	if f == nil {
		return nil, ErrNilField
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	dims := f.Dims()
	if !dims.Valid() {
		return nil, fmt.Errorf("mesh.New: %w: %s", lattice.ErrEmptyLattice, dims)
	}
	values := f.Values()
	if int64(dims.NX)*int64(dims.NY)*int64(dims.NZ) > math.MaxInt32 {
		return nil, fmt.Errorf("mesh.New: %w: %s", ErrTooLarge, dims)
	}
	if len(values) != dims.Len() {
		return nil, fmt.Errorf("mesh.New: %w: got %d samples for %s", lattice.ErrDataLength, len(values), dims)
	}

	m := &Mesh[T]{
		dims:     dims,
		voxel:    f.VoxelSize(),
		values:   values,
		conn:     cfg.conn,
		interp:   cfg.interp,
		window:   cfg.window,
		rounding: cfg.rounding,
		logger:   cfg.logger,
	}
	m.known, m.hasKnown = f.KnownRange()
	if err := m.indexNodes(cfg); err != nil {
		return nil, err
	}
	m.offsets = buildOffsets(m.conn, m.interp, m.window)

	m.logger.Debug("mesh built",
		"dims", dims.String(),
		"vertices", len(values),
		"nodes", len(m.nodeToVertex),
		"connectivity", m.conn.String(),
		"interpretation", m.interp.String(),
	)
	return m, nil
}

// indexNodes fills nodeToVertex and vertexToNode. Nodes are numbered in
// ascending vertex order.
func (m *Mesh[T]) indexNodes(cfg config) error {
	n := len(m.values)
	m.vertexToNode = make([]int32, n)
	if cfg.active == nil {
		m.nodeToVertex = make([]int32, n)
		for v := range n {
			m.nodeToVertex[v] = int32(v)
			m.vertexToNode[v] = int32(v)
		}
		return nil
	}
	if !cfg.active.IsEmpty() && int(cfg.active.Maximum()) >= n {
		return fmt.Errorf("mesh.New: %w: vertex %d, lattice holds %d", ErrActiveOutOfRange, cfg.active.Maximum(), n)
	}
	for v := range m.vertexToNode {
		m.vertexToNode[v] = NoNode
	}
	m.nodeToVertex = make([]int32, 0, cfg.active.GetCardinality())
	it := cfg.active.Iterator()
	for it.HasNext() {
		v := it.Next()
		m.vertexToNode[v] = int32(len(m.nodeToVertex))
		m.nodeToVertex = append(m.nodeToVertex, int32(v))
	}
	return nil
}

// Logger returns the logger the mesh reports to.
func (m *Mesh[T]) Logger() *slog.Logger { return m.logger }
