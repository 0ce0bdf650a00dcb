// Package plan describes array constructions as YAML documents and
// runs them with the fixed package. A plan names the number of slots,
// the integer sequences to zip (none for a counter-driven
// construction), how each candidate is reduced to a value, and the
// conditions a candidate has to meet.
//
//	size: 3
//	sources:
//	  - count: 1
//	  - count: 2
//	combine: sum
//	where:
//	  - {of: product, is: gt, value: 10}
package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tychoish/fixed/ers"
	"github.com/tychoish/fixed/irt"
)

// Plan is a complete construction.
type Plan struct {
	Size    int          `yaml:"size"`
	Sources []SourceSpec `yaml:"sources,omitempty"`
	Combine string       `yaml:"combine,omitempty"`
	Where   []Condition  `yaml:"where,omitempty"`
}

// SourceSpec describes one integer sequence. Exactly one of Count,
// Range and Values must be set.
type SourceSpec struct {
	// Count starts an unbounded sequence at the given value.
	Count *int `yaml:"count,omitempty"`
	// Step is the increment for Count; zero means one.
	Step   int     `yaml:"step,omitempty"`
	Range  *Bounds `yaml:"range,omitempty"`
	Values []int   `yaml:"values,omitempty"`
	// Cycle repeats the sequence forever.
	Cycle bool `yaml:"cycle,omitempty"`
	// Take limits the sequence to this many values, when positive.
	Take int `yaml:"take,omitempty"`
}

// Bounds is a half-open interval.
type Bounds struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Condition tests one operand of a candidate. Of names the operand: a
// reducer name (first, last, sum, product, min, max, diff) or the
// zero-based index of a source; it defaults to first. Is names the
// comparison and Value is its argument.
type Condition struct {
	Of    string `yaml:"of,omitempty"`
	Is    string `yaml:"is"`
	Value int    `yaml:"value,omitempty"`
}

// Load reads and validates the plan stored in the file at path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ers.Wrapf(err, "reading plan %q", path)
	}

	return Parse(data)
}

// LoadReader reads and validates a plan from r, usually standard
// input.
func LoadReader(r io.Reader) (*Plan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ers.Wrap(err, "reading plan")
	}

	return Parse(data)
}

// Parse decodes and validates a plan. Unknown fields are rejected.
func Parse(data []byte) (*Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	p := &Plan{}
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ers.ErrMalformedConfiguration, err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate reports every problem with the plan. All returned errors
// are rooted in ers.ErrMalformedConfiguration.
func (p *Plan) Validate() error {
	var errs []error
	add := func(tmpl string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ers.ErrMalformedConfiguration, fmt.Sprintf(tmpl, args...)))
	}

	if p.Size < 0 {
		add("size %d is negative", p.Size)
	}

	for idx, src := range p.Sources {
		if err := src.validate(); err != nil {
			add("source %d: %v", idx, err)
		}
	}

	if _, ok := reducers[p.combine()]; !ok {
		add("unknown combiner %q", p.Combine)
	}

	for idx, cond := range p.Where {
		if err := cond.validate(p.width()); err != nil {
			add("condition %d: %v", idx, err)
		}
	}

	return errors.Join(errs...)
}

// Mode reports whether the plan enumerates a counter or zips
// sequences.
func (p *Plan) Mode() string {
	if len(p.Sources) == 0 {
		return "enumerate"
	}
	return "zip"
}

func (p *Plan) combine() string {
	if p.Combine == "" {
		return "first"
	}
	return p.Combine
}

// width is the number of values in each candidate.
func (p *Plan) width() int { return max(1, len(p.Sources)) }

func (p *Plan) sequences() []iter.Seq[int] {
	out := make([]iter.Seq[int], 0, len(p.Sources))
	for _, src := range p.Sources {
		out = append(out, src.Seq())
	}
	return out
}

func (s SourceSpec) validate() error {
	set := 0
	for _, ok := range []bool{s.Count != nil, s.Range != nil, s.Values != nil} {
		if ok {
			set++
		}
	}

	return errors.Join(
		ers.Whenf(set != 1, "exactly one of count, range, or values is required, found %d", set),
		ers.Whenf(s.Step != 0 && s.Count == nil, "step is only valid with count"),
		ers.Whenf(s.Take < 0, "take %d is negative", s.Take),
	)
}

// Seq builds the sequence described by s.
func (s SourceSpec) Seq() iter.Seq[int] {
	var seq iter.Seq[int]
	switch {
	case s.Count != nil:
		step := s.Step
		if step == 0 {
			step = 1
		}
		seq = irt.Step(*s.Count, step)
	case s.Range != nil:
		seq = irt.Range(s.Range.Start, s.Range.End)
	default:
		seq = irt.Slice(s.Values)
	}

	if s.Cycle {
		seq = irt.Cycle(seq)
	}
	if s.Take > 0 {
		seq = irt.Take(seq, s.Take)
	}

	return seq
}

func (c Condition) validate(width int) error {
	if _, err := operand(c.Of, width); err != nil {
		return err
	}

	if c.Is == "" {
		return errors.New("comparison is required")
	}

	_, known := comparisons[c.Is]
	return errors.Join(
		ers.Whenf(!known, "unknown comparison %q", c.Is),
		ers.Whenf(c.Is == "divisible" && c.Value == 0, "divisible requires a non-zero value"),
	)
}

func (c Condition) check(width int) func([]int) bool {
	of, _ := operand(c.Of, width)
	cmp := comparisons[c.Is]
	return func(cand []int) bool { return cmp(of(cand), c.Value) }
}

func operand(name string, width int) (func([]int) int, error) {
	if name == "" {
		name = "first"
	}

	if op, ok := reducers[name]; ok {
		return op, nil
	}

	idx, err := strconv.Atoi(name)
	if err != nil {
		return nil, fmt.Errorf("unknown operand %q", name)
	}
	if idx < 0 || idx >= width {
		return nil, fmt.Errorf("operand index %d out of range [0, %d)", idx, width)
	}

	return func(cand []int) int { return cand[idx] }, nil
}
