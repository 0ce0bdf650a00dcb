package plan

import (
	"go.uber.org/zap"

	"github.com/tychoish/fixed"
)

var reducers = map[string]func([]int) int{
	"first": func(in []int) int { return in[0] },
	"last":  func(in []int) int { return in[len(in)-1] },
	"sum": func(in []int) (out int) {
		for _, v := range in {
			out += v
		}
		return out
	},
	"product": func(in []int) int {
		out := 1
		for _, v := range in {
			out *= v
		}
		return out
	},
	"min": func(in []int) int {
		out := in[0]
		for _, v := range in[1:] {
			out = min(out, v)
		}
		return out
	},
	"max": func(in []int) int {
		out := in[0]
		for _, v := range in[1:] {
			out = max(out, v)
		}
		return out
	},
	// diff subtracts every later value from the first.
	"diff": func(in []int) int {
		out := in[0]
		for _, v := range in[1:] {
			out -= v
		}
		return out
	},
}

var comparisons = map[string]func(v, arg int) bool{
	"odd":       func(v, _ int) bool { return v%2 != 0 },
	"even":      func(v, _ int) bool { return v%2 == 0 },
	"eq":        func(v, arg int) bool { return v == arg },
	"ne":        func(v, arg int) bool { return v != arg },
	"gt":        func(v, arg int) bool { return v > arg },
	"gte":       func(v, arg int) bool { return v >= arg },
	"lt":        func(v, arg int) bool { return v < arg },
	"lte":       func(v, arg int) bool { return v <= arg },
	"divisible": func(v, arg int) bool { return v%arg == 0 },
}

// WithSize returns a copy of the plan with a different size. The copy
// is not revalidated, so callers should check it with Validate.
func (p *Plan) WithSize(n int) *Plan {
	out := *p
	out.Size = n
	return &out
}

// Run constructs the array the plan describes. Plans without sources
// enumerate a counter and cannot fail, although a plan whose
// conditions never hold will never return. Plans with sources zip
// them, and return an error rooted in fixed.ErrExhausted when any of
// them runs out.
//
// Every committed slot and every rejected candidate is logged at debug
// level.
func (p *Plan) Run(logger *zap.Logger) ([]int, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	logger = logger.With(zap.String("mode", p.Mode()), zap.Int("size", p.Size))
	logger.Info("constructing array", zap.Int("sources", len(p.Sources)), zap.String("combine", p.combine()))

	width := p.width()
	conds := make([]func([]int) bool, 0, len(p.Where))
	for _, cond := range p.Where {
		conds = append(conds, cond.check(width))
	}
	check := fixed.Where(conds...)
	combine := reducers[p.combine()]

	var slot int
	where := func(cand []int) bool {
		if check.Check(cand) {
			return true
		}
		logger.Debug("rejected candidate", zap.Int("slot", slot), zap.Ints("candidate", cand))
		return false
	}
	op := func(cand []int) int {
		val := combine(cand)
		logger.Debug("committed slot", zap.Int("slot", slot), zap.Ints("candidate", cand), zap.Int("value", val))
		slot++
		return val
	}

	if len(p.Sources) == 0 {
		out := fixed.Enumerate(p.Size,
			func(x int) int { return op([]int{x}) },
			func(x int) bool { return where([]int{x}) },
		)
		logger.Info("constructed array", zap.Ints("values", out))
		return out, nil
	}

	out, err := fixed.ZipAll(p.Size, p.sequences(), op, where)
	if err != nil {
		logger.Warn("construction failed", zap.Int("filled", slot), zap.Error(err))
		return nil, err
	}

	logger.Info("constructed array", zap.Ints("values", out))
	return out, nil
}
