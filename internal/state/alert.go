package state

// Severity grades an alert for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Alert is a transient single-slot message, displayed once and cleared.
type Alert struct {
	Message  string
	Severity Severity
}

// ShowAlert replaces the current alert, if any. There is no stacking; the
// next call overwrites.
func (s *Store) ShowAlert(message string, severity Severity) {
	s.mu.Lock()
	s.alert = &Alert{Message: message, Severity: severity}
	s.mu.Unlock()

	s.notify(SliceAlert)
}

// ConsumeAlert returns the pending alert and clears the slot, so an alert
// is displayed exactly once.
func (s *Store) ConsumeAlert() (Alert, bool) {
	s.mu.Lock()
	a := s.alert
	s.alert = nil
	s.mu.Unlock()

	if a == nil {
		return Alert{}, false
	}
	s.notify(SliceAlert)
	return *a, true
}
