package Client

// BadgeClass maps a severity label to its badge style. Unknown labels,
// including "None" for normal studies, fall back to the neutral style.
func BadgeClass(severity string) string {
	switch severity {
	case "Severe":
		return "danger"
	case "Moderate":
		return "warning"
	case "Mild":
		return "success"
	default:
		return "info"
	}
}
