package resolver

import "go.trai.ch/recipe/internal/core/domain"

// Rule is a named cross-option constraint. Apply must be a pure function.
type Rule struct {
	Name  string
	Apply func(domain.OptionSet) domain.OptionSet
}

// normalizationRules are applied in order. Each rule must be idempotent.
//
//  1. shared-drops-fpic: a shared artifact has no static PIC flag.
var normalizationRules = []Rule{
	{Name: "shared-drops-fpic", Apply: sharedDropsFPIC},
}

// Rules returns the normalization rules in application order.
func Rules() []Rule {
	out := make([]Rule, len(normalizationRules))
	copy(out, normalizationRules)
	return out
}

// Normalize applies every normalization rule in order.
func Normalize(opts domain.OptionSet) domain.OptionSet {
	for _, rule := range normalizationRules {
		opts = rule.Apply(opts)
	}
	return opts
}

func sharedDropsFPIC(opts domain.OptionSet) domain.OptionSet {
	if opts.Enabled(domain.OptionShared) {
		return opts.Without(domain.OptionFPIC)
	}
	return opts
}
