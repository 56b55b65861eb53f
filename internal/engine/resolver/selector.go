package resolver

import "go.trai.ch/recipe/internal/core/domain"

// Condition restricts a table entry to a platform and/or an enabled option.
// Empty fields match everything.
type Condition struct {
	OS     domain.OS
	Option domain.OptionName
}

// Matches reports whether the condition holds for the platform and option set.
func (c Condition) Matches(platform domain.Platform, opts domain.OptionSet) bool {
	if c.OS != "" && c.OS != platform.OS {
		return false
	}
	if c.Option != "" && !opts.Enabled(c.Option) {
		return false
	}
	return true
}

// DependencyRule adds Dependency to the plan when When matches.
type DependencyRule struct {
	When       Condition
	Dependency domain.DependencySpec
}

// dependencyRules are evaluated in order; the order of the resulting list follows this table.
// The native audio libraries are only packaged for Linux, so their rules are Linux-only
// even though the options exist on other platforms.
var dependencyRules = []DependencyRule{
	{
		Dependency: domain.MustDependencySpec("fftw", "3.3.10", domain.LinkHeadersAndLibs),
	},
	{
		When:       Condition{OS: domain.OSLinux, Option: domain.OptionWithALSA},
		Dependency: domain.MustDependencySpec("libalsa", "1.2.10", domain.LinkHeadersAndLibs),
	},
	{
		When:       Condition{OS: domain.OSLinux, Option: domain.OptionWithPulseAudio},
		Dependency: domain.MustDependencySpec("pulseaudio", "17.0", domain.LinkHeadersAndLibs),
	},
	{
		When:       Condition{OS: domain.OSLinux, Option: domain.OptionWithSndfile},
		Dependency: domain.MustDependencySpec("libsndfile", "1.2.2", domain.LinkHeadersAndLibs),
	},
}

// DependencyRules returns the dependency table in evaluation order.
func DependencyRules() []DependencyRule {
	out := make([]DependencyRule, len(dependencyRules))
	copy(out, dependencyRules)
	return out
}

// SelectDependencies returns the dependencies required by the platform and option set.
func SelectDependencies(platform domain.Platform, opts domain.OptionSet) []domain.DependencySpec {
	return selectDependencies(dependencyRules, platform, opts)
}

func selectDependencies(
	rules []DependencyRule,
	platform domain.Platform,
	opts domain.OptionSet,
) []domain.DependencySpec {
	deps := make([]domain.DependencySpec, 0, len(rules))
	for _, rule := range rules {
		if rule.When.Matches(platform, opts) {
			deps = append(deps, rule.Dependency)
		}
	}
	return deps
}
