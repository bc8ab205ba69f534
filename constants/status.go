package constants

// ProbeStatus is the canonical status for one (file, backend) probe.
type ProbeStatus string

// Stable values (store these exact strings in DB and reports).
const (
	StatusSuccess     ProbeStatus = "SUCCESS"      // parsed cleanly, no warnings
	StatusSuccessWarn ProbeStatus = "SUCCESS_WARN" // parsed with warnings
	StatusFailed      ProbeStatus = "FAILED"       // backend reported a parse failure
	StatusTimedOut    ProbeStatus = "TIMED_OUT"    // probe did not return within the deadline
	StatusCrashed     ProbeStatus = "CRASHED"      // probe faulted (panic or unreadable file)
)

// OK reports whether the probe produced usable output.
func (s ProbeStatus) OK() bool {
	return s == StatusSuccess || s == StatusSuccessWarn
}
