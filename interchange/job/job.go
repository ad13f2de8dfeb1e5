// Package job decodes streams of render jobs. A stream is a sequence of YAML
// documents separated by "---", one job per document:
//
//	config: koch.lsys
//	level: 4
//	output: koch.svg
//	size: 800
package job

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/aabizri/lindraw"
	"github.com/aabizri/lindraw/interchange"
)

// DefaultSize is the side of the square output, in pixels, when a job sets none
const DefaultSize = 800

var ensureInterfaceCompliance interchange.Source = &Job{}

type Job struct {
	// Config is the path of the text configuration
	Config string `yaml:"config"`
	Level  uint   `yaml:"level"`
	// Output is the file to write, its extension selects the format
	Output string `yaml:"output"`
	Size   int    `yaml:"size"`

	// Relative paths are resolved against Dir
	Dir string `yaml:"-"`
}

func (j *Job) path(p string) string {
	if p == "" || filepath.IsAbs(p) || j.Dir == "" {
		return p
	}
	return filepath.Join(j.Dir, p)
}

func (j *Job) ConfigPath() string {
	return j.path(j.Config)
}

func (j *Job) OutputPath() string {
	return j.path(j.Output)
}

// Load reads the job's configuration and builds it
func (j *Job) Load() (lindraw.LSystem, error) {
	if j.Config == "" {
		return lindraw.LSystem{}, errors.New("job has no config")
	}
	f, err := os.Open(j.ConfigPath())
	if err != nil {
		return lindraw.LSystem{}, errors.Wrap(err, "opening config")
	}
	defer f.Close()

	b := lindraw.NewBuilder()
	if err := b.Configure(f); err != nil {
		return lindraw.LSystem{}, errors.Wrapf(err, "configuring from %s", j.ConfigPath())
	}
	return b.Build(), nil
}

type Decoder struct {
	dir         string
	yamlDecoder *yaml.Decoder
}

// NewDecoder reads jobs from in. Relative paths in the jobs are resolved
// against dir.
func NewDecoder(in io.Reader, dir string) *Decoder {
	return &Decoder{
		dir:         dir,
		yamlDecoder: yaml.NewDecoder(in),
	}
}

// Decode returns the next job, or io.EOF once the stream is exhausted
func (dec *Decoder) Decode() (*Job, error) {
	j := &Job{}
	// Read until yaml multi-document delimiter and/or until EOF
	if err := dec.yamlDecoder.Decode(j); err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, errors.Wrap(err, "decoding job")
	}
	j.Dir = dec.dir
	if j.Size == 0 {
		j.Size = DefaultSize
	}
	return j, nil
}
