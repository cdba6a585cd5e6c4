package state

// LoadingState is the global single-slot loading indicator. Only one
// message is displayed at a time; the last ShowLoading wins.
type LoadingState struct {
	IsLoading bool
	Message   string
}

// Loading returns a snapshot of the loading slice.
func (s *Store) Loading() LoadingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ShowLoading turns the indicator on with the given message, replacing any
// previous one.
func (s *Store) ShowLoading(message string) {
	s.mu.Lock()
	s.loading = LoadingState{IsLoading: true, Message: message}
	s.mu.Unlock()

	s.notify(SliceLoading)
}

// HideLoading clears the indicator unconditionally. It is not reference
// counted: one hide clears any number of prior shows.
func (s *Store) HideLoading() {
	s.mu.Lock()
	s.loading = LoadingState{}
	s.mu.Unlock()

	s.notify(SliceLoading)
}
