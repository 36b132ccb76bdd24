package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
	"github.com/zibamira/filopodia-tool-sub002/mesh"
	"github.com/zibamira/filopodia-tool-sub002/rawvol"
	"github.com/zibamira/filopodia-tool-sub002/scalar"
)

// app carries the state shared by all subcommands.
type app struct {
	jobPath string
	verbose bool
	log     *slog.Logger
}

// newLogger writes text records to terminals and JSON records to files and pipes.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if f, ok := w.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "latticemesh",
		Short:         "Inspect scalar lattices as neighbor graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = newLogger(cmd.ErrOrStderr(), level)
		},
	}
	root.PersistentFlags().StringVarP(&a.jobPath, "job", "j", "job.yaml", "YAML job file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.inspectCmd(),
		a.neighborsCmd(),
		a.componentsCmd(),
		a.synthCmd(),
	)
	return root
}

func (a *app) inspectCmd() *cobra.Command {
	var extreme int
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print mesh statistics and the lowest and highest nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if extreme < 0 {
				return fmt.Errorf("--extremes: must be >= 0, got %d", extreme)
			}
			job, err := LoadJob(a.jobPath)
			if err != nil {
				return err
			}
			return dispatch(cmd.Context(), job, task{kind: taskInspect, extreme: extreme}, cmd.OutOrStdout(), a.log)
		},
	}
	cmd.Flags().IntVarP(&extreme, "extremes", "n", 5, "nodes listed from each end of the sorted order")
	return cmd
}

func (a *app) neighborsCmd() *cobra.Command {
	var at, order, side string
	cmd := &cobra.Command{
		Use:   "neighbors --at x,y,z",
		Short: "List the ordered neighbors of one vertex",
		Long: `List the neighbors of the vertex at --at, sorted by value.

--order ascending lists lower values first, descending higher values first.
--side both keeps every neighbor with a value different from the source,
lower keeps strictly smaller values and upper strictly greater ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := parseCoord(at)
			if err != nil {
				return err
			}
			ord, err := scalar.ParseOrdering(order)
			if err != nil {
				return err
			}
			s, err := parseSide(side)
			if err != nil {
				return err
			}
			job, err := LoadJob(a.jobPath)
			if err != nil {
				return err
			}
			t := task{kind: taskNeighbors, at: c, ord: ord, side: s}
			return dispatch(cmd.Context(), job, t, cmd.OutOrStdout(), a.log)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "vertex coordinate x,y,z")
	cmd.Flags().StringVar(&order, "order", scalar.Ascending.String(), "ascending or descending")
	cmd.Flags().StringVar(&side, "side", "both", "both, lower or upper")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}

func (a *app) componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "Count connected components of the active nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			job, err := LoadJob(a.jobPath)
			if err != nil {
				return err
			}
			return dispatch(cmd.Context(), job, task{kind: taskComponents}, cmd.OutOrStdout(), a.log)
		},
	}
}

func (a *app) synthCmd() *cobra.Command {
	var (
		out, dims, sampleType, compression, pattern string
		wavelength                                  float64
		writeJob                                    bool
	)
	cmd := &cobra.Command{
		Use:   "synth --out FILE",
		Short: "Write a synthetic volume and, optionally, a job file for it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !(wavelength > 0) || math.IsInf(wavelength, 0) {
				return fmt.Errorf("--wavelength: must be a positive finite number, got %g", wavelength)
			}
			d, err := parseTriple(dims)
			if err != nil {
				return fmt.Errorf("--dims: %w", err)
			}
			v := VolumeSpec{
				Path:        out,
				Type:        sampleType,
				Compression: compression,
				Dims:        [3]int{d.X, d.Y, d.Z},
				Voxel:       [3]float64{1, 1, 1},
			}
			h, err := v.header(lattice.UnitVoxel)
			if err != nil {
				return err
			}
			if err := synthesize(out, h, pattern, wavelength); err != nil {
				return err
			}
			a.log.Info("volume written", "path", out, "dims", h.Dims.String(), "type", h.Type.String(), "pattern", pattern)
			if !writeJob {
				return nil
			}
			job := DefaultJob()
			job.Volume = v
			if rel, err := filepath.Rel(filepath.Dir(a.jobPath), out); err == nil && !filepath.IsAbs(out) {
				job.Volume.Path = rel
			}
			if err := SaveJob(a.jobPath, job); err != nil {
				return err
			}
			a.log.Info("job written", "path", a.jobPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output volume path")
	cmd.Flags().StringVar(&dims, "dims", "32,32,8", "lattice extent nx,ny,nz")
	cmd.Flags().StringVar(&sampleType, "type", rawvol.Uint8.String(), "sample type")
	cmd.Flags().StringVar(&compression, "compression", rawvol.None.String(), "none, gzip, zstd or lz4")
	cmd.Flags().StringVar(&pattern, "pattern", patternWaves, "ramp or waves")
	cmd.Flags().Float64Var(&wavelength, "wavelength", 8, "waves period in voxels")
	cmd.Flags().BoolVar(&writeJob, "write-job", false, "also write --job referencing the volume")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// parseCoord parses "x,y,z".
func parseCoord(s string) (mesh.Coord, error) {
	c, err := parseTriple(s)
	if err != nil {
		return mesh.Coord{}, fmt.Errorf("--at: %w", err)
	}
	return c, nil
}

func parseTriple(s string) (mesh.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mesh.Coord{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return mesh.Coord{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		v[i] = n
	}
	return mesh.Coord{X: v[0], Y: v[1], Z: v[2]}, nil
}

func parseSide(s string) (mesh.Side, error) {
	switch strings.ToLower(s) {
	case "both", "":
		return mesh.Both, nil
	case "lower":
		return mesh.Lower, nil
	case "upper":
		return mesh.Upper, nil
	}
	return mesh.Both, fmt.Errorf("latticemesh: unknown side %q", s)
}
