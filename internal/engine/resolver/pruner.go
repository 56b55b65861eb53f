package resolver

import "go.trai.ch/recipe/internal/core/domain"

// inapplicableOptions lists, per operating system, the options that have no meaning there.
// Pruned options are removed from the set rather than set to false.
var inapplicableOptions = map[domain.OS][]domain.OptionName{
	domain.OSWindows: {
		domain.OptionFPIC,
		domain.OptionWithALSA,
		domain.OptionWithSndfile,
		domain.OptionWithPulseAudio,
	},
}

// PruneOptions removes the options that are inapplicable on the platform's operating system.
func PruneOptions(platform domain.Platform, opts domain.OptionSet) domain.OptionSet {
	return opts.Without(inapplicableOptions[platform.OS]...)
}

// PruneSettings removes platform settings that do not affect this package.
// The project is plain C, so the C++ standard library is dropped.
func PruneSettings(platform domain.Platform) domain.Platform {
	return platform.WithoutLibcxx()
}
