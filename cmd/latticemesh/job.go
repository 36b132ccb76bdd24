package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/zibamira/filopodia-tool-sub002/lattice"
	"github.com/zibamira/filopodia-tool-sub002/mesh"
	"github.com/zibamira/filopodia-tool-sub002/rawvol"
)

// ErrJob reports an unusable job file.
var ErrJob = errors.New("latticemesh: invalid job")

// jobValidate checks the struct tags of Job and its nested specs.
var jobValidate = validator.New()

// VolumeSpec names one raw volume on disk.
type VolumeSpec struct {
	Path        string     `yaml:"path" validate:"required"`
	Type        string     `yaml:"type"`
	Compression string     `yaml:"compression,omitempty"`
	BigEndian   bool       `yaml:"big_endian,omitempty"`
	Dims        [3]int     `yaml:"dims,flow"`
	Voxel       [3]float64 `yaml:"voxel,flow,omitempty"`
}

// DeformationSpec names the backward/forward displacement volumes. Dims and
// voxel size are taken from the scalar volume.
type DeformationSpec struct {
	Backward VolumeSpec `yaml:"backward"`
	Forward  VolumeSpec `yaml:"forward"`
}

// RangeSpec is an inclusive value window.
type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max" validate:"gtefield=Min"`
}

// Job is the YAML document driving every subcommand.
type Job struct {
	Volume         VolumeSpec       `yaml:"volume"`
	Deformation    *DeformationSpec `yaml:"deformation,omitempty"`
	Threshold      *float64         `yaml:"threshold,omitempty"`
	Connectivity   string           `yaml:"connectivity,omitempty"`
	Interpretation string           `yaml:"interpretation,omitempty"`
	TemporalWindow int              `yaml:"temporal_window" validate:"gte=0,lte=3"`
	Rounding       string           `yaml:"rounding,omitempty"`
	Range          *RangeSpec       `yaml:"range,omitempty"`
	OffsetCache    bool             `yaml:"offset_cache,omitempty"`
	Workers        int              `yaml:"workers,omitempty" validate:"gte=0"`

	dir string
}

// DefaultJob returns the settings used for fields a job file leaves out.
func DefaultJob() Job {
	return Job{
		Connectivity:   mesh.Face.String(),
		Interpretation: mesh.Spatial.String(),
		TemporalWindow: 1,
		Rounding:       mesh.RoundNearest.String(),
	}
}

// LoadJob reads and validates a YAML job file. Relative volume paths are
// resolved against the directory of the job file.
func LoadJob(path string) (Job, error) {
	job := DefaultJob()
	data, err := os.ReadFile(path)
	if err != nil {
		return job, fmt.Errorf("read job: %w", err)
	}
	if err := yaml.Unmarshal(data, &job); err != nil {
		return job, fmt.Errorf("parse job %s: %w", path, err)
	}
	job.dir = filepath.Dir(path)
	if err := job.Validate(); err != nil {
		return job, err
	}
	return job, nil
}

// SaveJob writes job as YAML to path.
func SaveJob(path string, job Job) error {
	data, err := yaml.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the struct constraints, every enumerated field and the
// volume header.
func (j Job) Validate() error {
	if err := jobValidate.Struct(j); err != nil {
		return fmt.Errorf("%w: %v", ErrJob, err)
	}
	h, err := j.Volume.header(r3.Vec{})
	if err != nil {
		return fmt.Errorf("%w: volume: %v", ErrJob, err)
	}
	if j.Range != nil {
		lo, hi := h.Type.Limits()
		for _, b := range [2]float64{j.Range.Min, j.Range.Max} {
			if math.IsNaN(b) || b < lo || b > hi {
				return fmt.Errorf("%w: range bound %g outside %s limits [%g, %g]", ErrJob, b, h.Type, lo, hi)
			}
		}
	}
	if _, err := j.options(); err != nil {
		return fmt.Errorf("%w: %v", ErrJob, err)
	}
	return nil
}

// header converts the spec into a rawvol header. voxel overrides Voxel when non-zero.
func (v VolumeSpec) header(voxel r3.Vec) (rawvol.Header, error) {
	st, err := rawvol.ParseSampleType(v.Type)
	if err != nil {
		return rawvol.Header{}, err
	}
	c, err := rawvol.ParseCompression(v.Compression)
	if err != nil {
		return rawvol.Header{}, err
	}
	dims := lattice.Dims{NX: v.Dims[0], NY: v.Dims[1], NZ: v.Dims[2]}
	if !dims.Valid() {
		return rawvol.Header{}, fmt.Errorf("%w: %s", lattice.ErrEmptyLattice, dims)
	}
	if voxel == (r3.Vec{}) {
		voxel = r3.Vec{X: v.Voxel[0], Y: v.Voxel[1], Z: v.Voxel[2]}
	}
	return rawvol.Header{Dims: dims, Voxel: voxel, Type: st, BigEndian: v.BigEndian, Compression: c}, nil
}

// resolve makes p relative to the job file directory.
func (j Job) resolve(p string) string {
	if filepath.IsAbs(p) || j.dir == "" {
		return p
	}
	return filepath.Join(j.dir, p)
}

// options maps the enumerated job fields onto mesh options.
func (j Job) options() ([]mesh.Option, error) {
	conn, err := mesh.ParseConnectivity(j.Connectivity)
	if err != nil {
		return nil, err
	}
	interp, err := mesh.ParseInterpretation(j.Interpretation)
	if err != nil {
		return nil, err
	}
	rounding, err := mesh.ParseRounding(j.Rounding)
	if err != nil {
		return nil, err
	}
	if j.TemporalWindow < 0 || j.TemporalWindow > mesh.MaxTemporalWindow {
		return nil, fmt.Errorf("%w: %d", mesh.ErrTemporalWindow, j.TemporalWindow)
	}
	return []mesh.Option{
		mesh.WithConnectivity(conn),
		mesh.WithInterpretation(interp),
		mesh.WithTemporalWindow(j.TemporalWindow),
		mesh.WithRounding(rounding),
	}, nil
}
