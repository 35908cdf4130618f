package dashboard

// Urgency badge classes.
const (
	UrgencyCritical = "bg-red-500"
	UrgencyHigh     = "bg-orange-500"
	UrgencyMedium   = "bg-yellow-500"
	UrgencyOther    = "bg-green-500"
)

// Risk colors.
const (
	RiskLow      = "#22c55e"
	RiskModerate = "#f59e0b"
	RiskHigh     = "#ef4444"
)

// UrgencyColor maps an urgency label to its badge class. Matching is exact.
func UrgencyColor(urgency string) string {
	switch urgency {
	case "Critical":
		return UrgencyCritical
	case "High":
		return UrgencyHigh
	case "Medium":
		return UrgencyMedium
	default:
		return UrgencyOther
	}
}

// RiskColor maps a probability in [0,1] to a color.
func RiskColor(p float64) string {
	switch {
	case p < 0.3:
		return RiskLow
	case p < 0.6:
		return RiskModerate
	default:
		return RiskHigh
	}
}
