package models

// LifetimeMode distinguishes how a lifetime value was configured
type LifetimeMode string

const (
	// LifetimeModePreset means the value was picked from the preset catalog
	LifetimeModePreset LifetimeMode = "preset"
	// LifetimeModeCustom means the value was entered as a custom seconds amount
	LifetimeModeCustom LifetimeMode = "custom"
)

// Lifetime sentinel values shared by presets and custom entries
const (
	// LifetimePermanent means "valid until explicitly invalidated by tag"
	LifetimePermanent int64 = -1
	// LifetimeNone means "never cache"
	LifetimeNone int64 = 0
)

// LifetimeSpec is a validated lifetime configuration for one slot
// (results or output). Seconds is -1 for permanent or >= 0 otherwise.
type LifetimeSpec struct {
	Mode    LifetimeMode `json:"mode" yaml:"mode"`
	Seconds int64        `json:"seconds" yaml:"seconds"`
}

// PresetLifetime builds a spec holding a catalog seconds value
func PresetLifetime(seconds int64) LifetimeSpec {
	return LifetimeSpec{Mode: LifetimeModePreset, Seconds: seconds}
}

// CustomLifetime builds a spec holding a user-entered seconds value
func CustomLifetime(seconds int64) LifetimeSpec {
	return LifetimeSpec{Mode: LifetimeModeCustom, Seconds: seconds}
}

// IsPermanent reports whether the spec never expires by elapsed time
func (s LifetimeSpec) IsPermanent() bool {
	return s.Seconds == LifetimePermanent
}
