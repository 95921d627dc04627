package mapview

// Tier is the fill intensity bucket for a region on the map
type Tier string

const (
	TierEmpty  Tier = "empty"
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// TextTier selects label contrast for a region's fill
type TextTier string

const (
	// TextLight is used on light fills and takes a dark label
	TextLight TextTier = "light"
	// TextDark is used on dark fills and takes a white label
	TextDark TextTier = "dark"
)

const (
	lowMax    = 5
	mediumMax = 15
)

// TierFor maps a mall count to its tier. Negative counts are treated as 0.
func TierFor(count int) Tier {
	switch {
	case count <= 0:
		return TierEmpty
	case count <= lowMax:
		return TierLow
	case count <= mediumMax:
		return TierMedium
	default:
		return TierHigh
	}
}

// TextTierFor picks the label contrast for a count
func TextTierFor(count int) TextTier {
	if count > lowMax {
		return TextDark
	}
	return TextLight
}

// ShowLabel reports whether a count label is drawn at all
func ShowLabel(count int) bool {
	return count > 0
}

// Fill returns the SVG fill color for a tier
func (t Tier) Fill() string {
	switch t {
	case TierLow:
		return "#93c5fd"
	case TierMedium:
		return "#3b82f6"
	case TierHigh:
		return "#1d4ed8"
	default:
		return "#d1d5db"
	}
}

// Color returns the label color for a text tier
func (t TextTier) Color() string {
	if t == TextDark {
		return "#ffffff"
	}
	return "#1f2937"
}
