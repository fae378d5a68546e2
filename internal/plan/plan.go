// Package plan validates a multi-stage pipeline description in one pass.
//
// A plan lists stage steps in execution order. Each step names its stage and
// carries the stage arguments under the same keys as the command line flags;
// absent keys take the stage defaults. Switches take true/false or the 0/1
// form of their flag, and giving preemptive_feature_count enables preemptive
// matching as the flag does.
//
//	name: castle
//	steps:
//	  - id: features
//	    stage: features
//	    args:
//	      input_file: out/sfm_data.json
//	      outdir: out/matches
//	  - stage: matching
//	    args:
//	      input_file: out/sfm_data.json
//	      output_file: out/matches/matches.putative.bin
package plan

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/provide-io/mvg/go/mvg/internal/workdir"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/errors"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/stage"
)

// Plan is a parsed pipeline description.
type Plan struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one stage invocation of a plan.
type Step struct {
	ID    string     `yaml:"id"`
	Stage stage.Name `yaml:"stage"`
	Args  yaml.Node  `yaml:"args"`
}

var knownStages = map[stage.Name]bool{
	stage.StageListing:         true,
	stage.StageFeatures:        true,
	stage.StagePairs:           true,
	stage.StageMatching:        true,
	stage.StageGeometricFilter: true,
	stage.StageSfM:             true,
}

// Parse decodes and checks a plan document. Steps without an id are named
// after their position and stage.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPlanInvalid, err)
	}
	if len(p.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", errors.ErrPlanInvalid)
	}

	seen := make(map[string]bool, len(p.Steps))
	for i := range p.Steps {
		s := &p.Steps[i]
		if !knownStages[s.Stage] {
			return nil, fmt.Errorf("%w: step %d has unknown stage %q", errors.ErrPlanInvalid, i+1, s.Stage)
		}
		if s.ID == "" {
			s.ID = fmt.Sprintf("%d-%s", i+1, s.Stage)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("%w: duplicate step id %q", errors.ErrPlanInvalid, s.ID)
		}
		seen[s.ID] = true
	}
	return &p, nil
}

// FileLoader loads a plan from a file.
type FileLoader struct {
	fs   workdir.FileSystem
	path string
}

// NewFileLoader creates a FileLoader for path.
func NewFileLoader(fsys workdir.FileSystem, path string) *FileLoader {
	if fsys == nil {
		fsys = workdir.OSFileSystem{}
	}
	return &FileLoader{fs: fsys, path: path}
}

// Load reads and parses the plan file.
func (l *FileLoader) Load(ctx context.Context) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	return Parse(data)
}

// build decodes the step arguments over the stage defaults and runs the
// builder.
func (s Step) build(b *stage.Builder) (stage.Record, error) {
	switch s.Stage {
	case stage.StageListing:
		in := stage.DefaultListingInputs()
		if err := s.normalizeSwitch("group_camera_model"); err != nil {
			return nil, err
		}
		if err := s.decode(&in); err != nil {
			return nil, err
		}
		return b.Listing(in)
	case stage.StageFeatures:
		in := stage.DefaultFeaturesInputs()
		if err := s.decode(&in); err != nil {
			return nil, err
		}
		return b.Features(in)
	case stage.StagePairs:
		in := stage.DefaultPairsInputs()
		if err := s.decode(&in); err != nil {
			return nil, err
		}
		return b.Pairs(in)
	case stage.StageMatching:
		in := stage.DefaultMatchingInputs()
		if err := s.decode(&in); err != nil {
			return nil, err
		}
		in.UsePreemptive = s.arg("preemptive_feature_count") != nil
		return b.Matching(in)
	case stage.StageGeometricFilter:
		in := stage.DefaultGeometricFilterInputs()
		if err := s.decode(&in); err != nil {
			return nil, err
		}
		return b.GeometricFilter(in)
	case stage.StageSfM:
		in := stage.DefaultSfMInputs()
		if err := s.decode(&in); err != nil {
			return nil, err
		}
		return b.SfM(in)
	default:
		return nil, fmt.Errorf("%w: unknown stage %q", errors.ErrPlanInvalid, s.Stage)
	}
}

func (s Step) decode(in any) error {
	if s.Args.IsZero() {
		return nil
	}
	if err := s.Args.Decode(in); err != nil {
		return fmt.Errorf("%w: step %s arguments: %v", errors.ErrPlanInvalid, s.ID, err)
	}
	return nil
}

// arg returns the value node of the named argument, or nil when absent.
func (s Step) arg(name string) *yaml.Node {
	if s.Args.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(s.Args.Content); i += 2 {
		if s.Args.Content[i].Value == name {
			return s.Args.Content[i+1]
		}
	}
	return nil
}

// normalizeSwitch rewrites an integer argument to a boolean, non-zero being
// true, so switches accept the 0/1 form of their command line flag.
func (s Step) normalizeSwitch(name string) error {
	v := s.arg(name)
	if v == nil || v.Kind != yaml.ScalarNode || v.ShortTag() != "!!int" {
		return nil
	}
	var n int
	if err := v.Decode(&n); err != nil {
		return fmt.Errorf("%w: step %s argument %s: %v", errors.ErrPlanInvalid, s.ID, name, err)
	}
	v.Tag = "!!bool"
	v.Value = strconv.FormatBool(n != 0)
	v.Style = 0
	return nil
}

// outputDir returns the directory the step creates or writes into.
func (s Step) outputDir() string {
	var out struct {
		OutputDirectory string `yaml:"outputDirectory"`
		OutDir          string `yaml:"outdir"`
		OutputDir       string `yaml:"output_dir"`
		OutputFile      string `yaml:"output_file"`
	}
	if s.Args.IsZero() || s.Args.Decode(&out) != nil {
		return ""
	}
	switch {
	case out.OutputDirectory != "":
		return out.OutputDirectory
	case out.OutDir != "":
		return out.OutDir
	case out.OutputDir != "":
		return out.OutputDir
	case out.OutputFile != "":
		return filepath.Dir(out.OutputFile)
	default:
		return ""
	}
}
