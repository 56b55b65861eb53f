package resolver

import "go.trai.ch/recipe/internal/core/domain"

// VariableRule emits Variable on platforms matching OS (any when empty).
// The value mirrors Source, or is Constant when Source is empty.
// An absent Source option yields false.
type VariableRule struct {
	Variable string
	OS       domain.OS
	Source   domain.OptionName
	Constant bool
}

// variableRules drive the toolchain variable emitter. Variables are never omitted
// because of their own value, only because of the platform.
var variableRules = []VariableRule{
	{Variable: domain.VarUseALSA, OS: domain.OSLinux, Source: domain.OptionWithALSA},
	{Variable: domain.VarUsePulseAudio, OS: domain.OSLinux, Source: domain.OptionWithPulseAudio},
	{Variable: domain.VarUseSndfile, OS: domain.OSLinux, Source: domain.OptionWithSndfile},
	{Variable: domain.VarUseBenchmarks, Source: domain.OptionWithBenchmarks},
	// Reserved: sndio output is not supported yet and has no option.
	{Variable: domain.VarUseSndio, Constant: false},
}

// VariableRules returns the variable table in evaluation order.
func VariableRules() []VariableRule {
	out := make([]VariableRule, len(variableRules))
	copy(out, variableRules)
	return out
}

// EmitVariables maps the platform and option set to toolchain cache variables.
func EmitVariables(platform domain.Platform, opts domain.OptionSet) domain.ToolchainVariables {
	values := make(map[string]bool, len(variableRules))
	for _, rule := range variableRules {
		if rule.OS != "" && rule.OS != platform.OS {
			continue
		}
		if rule.Source == "" {
			values[rule.Variable] = rule.Constant
			continue
		}
		values[rule.Variable] = opts.Enabled(rule.Source)
	}
	return domain.NewToolchainVariables(values)
}
