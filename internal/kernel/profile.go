package kernel

import "fmt"

// Profile selects a BLIMP quality preset.
type Profile int

const (
	// ProfileOnline is a short kernel cheap enough to evaluate per output
	// sample at audio rate.
	ProfileOnline Profile = iota
	// ProfileOffline is a long, self-convolved kernel used to precompute
	// resampled tables.
	ProfileOffline
	// ProfileCustom marks caller-supplied Params.
	ProfileCustom
)

// String returns the profile name.
func (p Profile) String() string {
	switch p {
	case ProfileOnline:
		return "online"
	case ProfileOffline:
		return "offline"
	case ProfileCustom:
		return "custom"
	default:
		return fmt.Sprintf("Profile(%d)", int(p))
	}
}

// ProfileParams returns the parameters of a preset profile. ProfileCustom
// has no preset; build it from explicit Params instead.
func ProfileParams(p Profile) (Params, error) {
	base := Params{
		Resolution:      profileRes,
		SampleRate:      profileSampleRate,
		Beta:            profileBeta,
		ApodizationGain: profileApodization,
		ApodizationBeta: profileApodizingBeta,
	}

	switch p {
	case ProfileOnline:
		base.Intervals = onlineIntervals
		base.Cutoff = onlineCutoff
	case ProfileOffline:
		base.Intervals = offlineIntervals
		base.Cutoff = offlineCutoff
		base.SelfConvolve = true
	default:
		return Params{}, fmt.Errorf("%w: profile %s has no preset parameters", ErrInvalidConfig, p)
	}
	return base, nil
}

// BuildProfile builds the BLIMP of a preset profile.
func BuildProfile(p Profile) (Blimp, error) {
	params, err := ProfileParams(p)
	if err != nil {
		return Blimp{}, err
	}
	return BuildBlimp(params)
}
