package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
	"github.com/zibamira/filopodia-tool-sub002/mesh"
	"github.com/zibamira/filopodia-tool-sub002/rawvol"
	"github.com/zibamira/filopodia-tool-sub002/scalar"
)

// taskKind selects what a run reports.
type taskKind int

const (
	taskInspect taskKind = iota
	taskNeighbors
	taskComponents
)

// task is one subcommand invocation against a loaded mesh.
type task struct {
	kind    taskKind
	at      mesh.Coord
	ord     scalar.Ordering
	side    mesh.Side
	extreme int // entries printed from each end of the sorted order
}

// dispatch instantiates run for the sample type named by the job's volume.
func dispatch(ctx context.Context, job Job, t task, out io.Writer, log *slog.Logger) error {
	h, err := job.Volume.header(r3.Vec{})
	if err != nil {
		return err
	}
	switch h.Type {
	case rawvol.Uint8:
		return run[uint8](ctx, job, h, t, out, log)
	case rawvol.Int8:
		return run[int8](ctx, job, h, t, out, log)
	case rawvol.Uint16:
		return run[uint16](ctx, job, h, t, out, log)
	case rawvol.Int16:
		return run[int16](ctx, job, h, t, out, log)
	case rawvol.Uint32:
		return run[uint32](ctx, job, h, t, out, log)
	case rawvol.Int32:
		return run[int32](ctx, job, h, t, out, log)
	case rawvol.Float32:
		return run[float32](ctx, job, h, t, out, log)
	case rawvol.Float64:
		return run[float64](ctx, job, h, t, out, log)
	}
	return fmt.Errorf("%w: %s", rawvol.ErrUnknownSampleType, h.Type)
}

// load reads the volume and builds a fully configured mesh for job.
func load[T scalar.Scalar](ctx context.Context, job Job, h rawvol.Header, log *slog.Logger) (*mesh.Mesh[T], error) {
	field, err := rawvol.ReadScalarFile[T](job.resolve(job.Volume.Path), h)
	if err != nil {
		return nil, err
	}
	opts, err := job.options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, mesh.WithLogger(log))
	if job.Threshold != nil {
		// Compared in float64, which holds every sample type exactly, so an
		// out-of-range threshold selects all or nothing instead of wrapping.
		thr := *job.Threshold
		opts = append(opts, mesh.WithActive(lattice.ActiveWhere[T](field, func(v T) bool {
			return float64(v) >= thr
		})))
	}
	m, err := mesh.New[T](field, opts...)
	if err != nil {
		return nil, err
	}

	if d := job.Deformation; d != nil {
		back, err := readDeformation(job, d.Backward, h)
		if err != nil {
			return nil, fmt.Errorf("backward deformation: %w", err)
		}
		fwd, err := readDeformation(job, d.Forward, h)
		if err != nil {
			return nil, fmt.Errorf("forward deformation: %w", err)
		}
		if err := m.Bind(back, fwd); err != nil {
			return nil, err
		}
	}
	if job.Range != nil {
		// Validate has checked both bounds against the sample type limits.
		if err := m.SetGlobalRange(scalar.Range[T]{Min: T(job.Range.Min), Max: T(job.Range.Max)}); err != nil {
			return nil, err
		}
	}
	if job.OffsetCache {
		if err := m.EnableOffsetCache(ctx); err != nil {
			return nil, err
		}
	}
	log.Info("mesh loaded",
		"path", job.Volume.Path,
		"dims", h.Dims.String(),
		"type", h.Type.String(),
		"nodes", m.NumNodes(),
		"connectivity", m.Connectivity().String(),
		"interpretation", m.Interpretation().String())
	return m, nil
}

// readDeformation reads a displacement volume sharing the scalar geometry.
func readDeformation(job Job, v VolumeSpec, scalarHeader rawvol.Header) (*lattice.VectorField, error) {
	if v.Dims == ([3]int{}) {
		v.Dims = [3]int{scalarHeader.Dims.NX, scalarHeader.Dims.NY, scalarHeader.Dims.NZ}
	}
	if v.Type == "" {
		v.Type = rawvol.Float32.String()
	}
	h, err := v.header(scalarHeader.Voxel)
	if err != nil {
		return nil, err
	}
	return rawvol.ReadVectorsFile(job.resolve(v.Path), h)
}

func run[T scalar.Scalar](ctx context.Context, job Job, h rawvol.Header, t task, out io.Writer, log *slog.Logger) error {
	m, err := load[T](ctx, job, h, log)
	if err != nil {
		return err
	}
	switch t.kind {
	case taskInspect:
		return inspect(ctx, m, job.Workers, t.extreme, out)
	case taskNeighbors:
		return neighbors(m, t, out)
	case taskComponents:
		return components(m, out)
	}
	return fmt.Errorf("latticemesh: unknown task %d", t.kind)
}

func inspect[T scalar.Scalar](ctx context.Context, m *mesh.Mesh[T], workers, extreme int, out io.Writer) error {
	st := m.Stats()
	fmt.Fprintf(out, "dims            %s\n", st.Dims)
	fmt.Fprintf(out, "vertices        %d\n", st.Vertices)
	fmt.Fprintf(out, "nodes           %d\n", st.Nodes)
	fmt.Fprintf(out, "connectivity    %s (%d offsets)\n", st.Connectivity, st.Offsets)
	fmt.Fprintf(out, "interpretation  %s\n", st.Interpretation)
	fmt.Fprintf(out, "deformed        %t\n", st.Deformed)
	fmt.Fprintf(out, "edges           %d\n", st.Edges)

	// Local extrema: nodes without lower or without upper neighbors.
	lo, hi := bounds(m)
	var minima, maxima atomic.Int64
	err := m.ForEachNode(ctx, workers, func(_ context.Context, n int) error {
		v := m.VertexOf(n)
		var buf [8]int
		if len(m.AppendNeighbors(buf[:0], v, lo, hi, scalar.Ascending, mesh.Lower)) == 0 {
			minima.Add(1)
		}
		if len(m.AppendNeighbors(buf[:0], v, lo, hi, scalar.Descending, mesh.Upper)) == 0 {
			maxima.Add(1)
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "local minima    %d\n", minima.Load())
	fmt.Fprintf(out, "local maxima    %d\n", maxima.Load())

	order := m.SortNodeIndices()
	if len(order) == 0 {
		return nil
	}
	k := min(extreme, len(order))
	fmt.Fprintln(out, "lowest:")
	for _, n := range order[:k] {
		printVertex(out, m, m.VertexOf(n))
	}
	fmt.Fprintln(out, "highest:")
	for _, n := range slices.Backward(order[len(order)-k:]) {
		printVertex(out, m, m.VertexOf(n))
	}
	return nil
}

func neighbors[T scalar.Scalar](m *mesh.Mesh[T], t task, out io.Writer) error {
	v := m.VertexAt(t.at)
	if v == mesh.NoVertex {
		return fmt.Errorf("latticemesh: %v is outside %s", t.at, m.Dims())
	}
	if !m.IsActive(v) {
		return fmt.Errorf("latticemesh: vertex %d at %v is not active", v, t.at)
	}
	fmt.Fprint(out, "source ")
	printVertex(out, m, v)
	lo, hi := bounds(m)
	for _, n := range m.NeighborsOf(v, lo, hi, t.ord, t.side) {
		printVertex(out, m, n)
	}
	return nil
}

func components[T scalar.Scalar](m *mesh.Mesh[T], out io.Writer) error {
	comps := m.ConnectedComponents()
	slices.SortStableFunc(comps, func(a, b []int) int { return len(b) - len(a) })
	fmt.Fprintf(out, "components %d\n", len(comps))
	var verts []int
	for i, c := range comps {
		verts = verts[:0]
		for _, n := range c {
			verts = append(verts, m.VertexOf(n))
		}
		lo, _ := m.MinOf(verts)
		hi, _ := m.MaxOf(verts)
		loVal, _ := m.ValueAt(lo)
		hiVal, _ := m.ValueAt(hi)
		fmt.Fprintf(out, "%4d  size %-8d min %v  max %v\n", i, len(c), loVal, hiVal)
	}
	return nil
}

// bounds returns the query window covering every value of m. A global range
// set on m overrides it inside the query anyway.
func bounds[T scalar.Scalar](m *mesh.Mesh[T]) (lo, hi T) {
	if r, ok := m.GlobalRange(); ok {
		return r.Min, r.Max
	}
	r, _ := m.ValueRange()
	return r.Min, r.Max
}

func printVertex[T scalar.Scalar](out io.Writer, m *mesh.Mesh[T], v int) {
	c, _ := m.CoordOf(v)
	val, _ := m.ValueAt(v)
	fmt.Fprintf(out, "%8d  (%d,%d,%d)  %v\n", v, c.X, c.Y, c.Z, val)
}
