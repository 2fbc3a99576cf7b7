package layout

import "fmt"

// WarningKind classifies recoverable layout anomalies.
type WarningKind int

const (
	// WarnDegenerateClustering means the page's fragments could not be
	// clustered spatially and the description's hint order was used instead.
	WarnDegenerateClustering WarningKind = iota

	// WarnWordDropped means two extracted words overlapped and the narrower
	// one was discarded as an extraction artifact.
	WarnWordDropped
)

// String returns a short identifier for the kind.
func (k WarningKind) String() string {
	switch k {
	case WarnWordDropped:
		return "overlapping word dropped"
	default:
		return "degenerate clustering"
	}
}

// Warning records a recoverable anomaly encountered during resolution.
// Warnings never abort rendering; they surface as a status indicator.
type Warning struct {
	Kind   WarningKind
	Detail string
}

// String formats the warning for logs and status display.
func (w Warning) String() string {
	if w.Detail == "" {
		return w.Kind.String()
	}
	return fmt.Sprintf("%s: %s", w.Kind, w.Detail)
}
