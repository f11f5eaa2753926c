package docsearch

import "context"

// ListState is what a search list view renders.
type ListState struct {
	Entries []SearchEntry

	// Loading is true until the first Load completes.
	Loading bool

	// ErrorMessage is set when loading failed. The view should show it in
	// its empty state instead of an empty list.
	ErrorMessage string
}

// NewListState returns a state that is still loading.
func NewListState() *ListState {
	return &ListState{Loading: true}
}

// Load fetches metadata, flattens it and drops blank titles.
// On failure the entries are cleared and the error message is kept.
func (s *ListState) Load(ctx context.Context, svc MetadataService) error {
	s.Loading = true
	defer func() { s.Loading = false }()

	metadata, err := svc.GetMetadata(ctx)
	if err != nil {
		s.Entries = nil
		s.ErrorMessage = ErrorMessage(err)
		return err
	}

	s.Entries = VisibleEntries(Transform(metadata))
	s.ErrorMessage = ""
	return nil
}
