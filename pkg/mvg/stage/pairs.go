package stage

import (
	"bufio"
	"fmt"
	"io"

	"github.com/provide-io/mvg/go/mvg/pkg/mvg/options"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/validate"
)

// Pair is an unordered view pair, stored with I < J.
type Pair struct {
	I, J int
}

// ExhaustivePairs returns every pair of n views, sorted.
func ExhaustivePairs(n int) []Pair {
	if n < 2 {
		return nil
	}
	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{I: i, J: j})
		}
	}
	return pairs
}

// ContiguousPairs links every view to its next k views, as for a video
// sequence.
func ContiguousPairs(n, k int) []Pair {
	if n < 2 || k < 1 {
		return nil
	}
	if k > n-1 {
		k = n - 1
	}
	var pairs []Pair
	for i := 0; i < n; i++ {
		for j := i + 1; j-i <= k && j < n; j++ {
			pairs = append(pairs, Pair{I: i, J: j})
		}
	}
	return pairs
}

// WritePairs writes one "i j" line per pair.
func WritePairs(w io.Writer, pairs []Pair) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		if _, err := fmt.Fprintf(bw, "%d %d\n", p.I, p.J); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// PairsInputs are the raw arguments of the pair generation stage.
type PairsInputs struct {
	InputFile       string `yaml:"input_file"`
	OutputFile      string `yaml:"output_file"`
	PairMode        string `yaml:"pair_mode"`
	ContiguousCount int    `yaml:"contiguous_count"` // DefaultContiguousCount when unset
}

// DefaultPairsInputs returns inputs holding every pair generation default.
func DefaultPairsInputs() PairsInputs {
	return PairsInputs{
		PairMode:        DefaultPairMode,
		ContiguousCount: DefaultContiguousCount,
	}
}

// PairsRecord is the validated pair generation configuration.
type PairsRecord struct {
	inputFile       string
	outputFile      string
	mode            options.PairMode
	contiguousCount int
}

func (PairsRecord) Stage() Name { return StagePairs }

func (r PairsRecord) InputFile() string      { return r.inputFile }
func (r PairsRecord) OutputFile() string     { return r.outputFile }
func (r PairsRecord) Mode() options.PairMode { return r.mode }
func (r PairsRecord) ContiguousCount() int   { return r.contiguousCount }

// Generate returns the pairs of n views for the configured mode.
func (r PairsRecord) Generate(n int) []Pair {
	if r.mode == options.PairModeContiguous {
		return ContiguousPairs(n, r.contiguousCount)
	}
	return ExhaustivePairs(n)
}

// Pairs validates in and builds the pair generation record.
func (b *Builder) Pairs(in PairsInputs) (PairsRecord, error) {
	mode := options.ParsePairMode(in.PairMode)

	checks := []check{
		required("input_file", in.InputFile),
		required("output_file", in.OutputFile),
		verdict("pair_mode", func() validate.Verdict { return validate.PairMode(mode) }),
		verdict("contiguous_count", func() validate.Verdict {
			return validate.ContiguousCount(mode, in.ContiguousCount)
		}),
	}
	if err := b.runChecks(StagePairs, checks); err != nil {
		return PairsRecord{}, err
	}

	rec := PairsRecord{
		inputFile:       in.InputFile,
		outputFile:      in.OutputFile,
		mode:            mode,
		contiguousCount: in.ContiguousCount,
	}
	b.logger.Info("📷 You called pair generation",
		"input_file", rec.inputFile,
		"output_file", rec.outputFile,
		"pair_mode", rec.mode.String(),
		"contiguous_count", rec.contiguousCount,
	)
	return rec, nil
}
