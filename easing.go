package polyui

import "github.com/tanema/gween/ease"

// EasingByName resolves a theme easing name to its function. Returns nil
// for unknown names so callers can fall back to their current easing.
func EasingByName(name string) ease.TweenFunc {
	switch name {
	case "linear":
		return ease.Linear
	case "in-quad":
		return ease.InQuad
	case "out-quad":
		return ease.OutQuad
	case "in-out-quad":
		return ease.InOutQuad
	case "in-cubic":
		return ease.InCubic
	case "out-cubic":
		return ease.OutCubic
	case "in-out-cubic":
		return ease.InOutCubic
	case "out-quart":
		return ease.OutQuart
	case "out-expo":
		return ease.OutExpo
	case "out-back":
		return ease.OutBack
	case "out-elastic":
		return ease.OutElastic
	case "out-bounce":
		return ease.OutBounce
	}
	return nil
}
