package models

// SyncStatus reports whether a batch commit is in flight. It drives user
// feedback only; correctness never depends on it.
type SyncStatus int

const (
	StatusIdle SyncStatus = iota
	StatusPatching
	StatusError
)

func (s SyncStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPatching:
		return "patching"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// FetchResult is the outcome of a single paginated fetch call.
type FetchResult int

const (
	// FetchResultNone means nothing was fetched: the caller is not signed in
	// or the same page was already retrieved.
	FetchResultNone FetchResult = iota
	// FetchResultPage means a page was delivered to the callback.
	FetchResultPage
	// FetchResultFetchedAll means the collection is exhausted.
	FetchResultFetchedAll
)

func (r FetchResult) String() string {
	switch r {
	case FetchResultNone:
		return "none"
	case FetchResultPage:
		return "page"
	case FetchResultFetchedAll:
		return "fetchedAll"
	default:
		return "unknown"
	}
}
