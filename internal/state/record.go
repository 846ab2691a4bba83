// Package state persists which of the two sharing steps a certificate
// session has completed. Records survive page reloads, migrate from the
// legacy persisted shape on first rewrite, and expire the recent-activity
// banner on a fixed window.
package state

// Step names for the two sharing actions.
const (
	StepProfile = "step1" // added the certification to the profile
	StepPost    = "step2" // shared a post
)

// StepState records one sharing step. Timestamp is milliseconds since
// epoch and is set exactly when the step transitions to completed.
type StepState struct {
	Completed bool   `json:"completed"`
	Timestamp *int64 `json:"timestamp"`
}

// Record is the completion state of one certificate session.
type Record struct {
	Step1 StepState `json:"step1"`
	Step2 StepState `json:"step2"`
}

// Step returns a pointer to the named step, or nil for an unknown name.
func (r *Record) Step(name string) *StepState {
	switch name {
	case StepProfile:
		return &r.Step1
	case StepPost:
		return &r.Step2
	default:
		return nil
	}
}

// IsValidStep reports whether name is one of the two known steps.
func IsValidStep(name string) bool {
	return name == StepProfile || name == StepPost
}

// HasRecentActivity reports whether at least one step is completed and the
// most recent completion is still within windowMs of nowMs. Elapsed time
// strictly greater than the window means stale.
func HasRecentActivity(r Record, nowMs, windowMs int64) bool {
	var latest int64
	found := false
	for _, st := range []StepState{r.Step1, r.Step2} {
		if st.Completed && st.Timestamp != nil {
			if !found || *st.Timestamp > latest {
				latest = *st.Timestamp
			}
			found = true
		}
	}
	if !found {
		return false
	}
	return nowMs-latest <= windowMs
}
