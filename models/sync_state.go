package models

// SyncStatus is the active variant of a [SyncState].
type SyncStatus int

const (
	SyncLoading SyncStatus = iota
	SyncLoaded
	SyncFailed
)

func (s SyncStatus) String() string {
	switch s {
	case SyncLoading:
		return "loading"
	case SyncLoaded:
		return "loaded"
	case SyncFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SyncState is the view of the last refresh handed to the display layer.
// Exactly one variant is active: PrivateGroups and SharedGroups are only
// meaningful when Status is SyncLoaded, Err only when Status is SyncFailed.
//
// Generation identifies the refresh cycle that produced the state.
type SyncState struct {
	Status        SyncStatus
	PrivateGroups []RecordGroup
	SharedGroups  []RecordGroup
	Err           error
	Generation    uint64
}

// LoadingState returns the state shown while a refresh is in flight.
func LoadingState() SyncState {
	return SyncState{Status: SyncLoading}
}

// LoadedState returns the state of a successful refresh.
func LoadedState(privateGroups, sharedGroups []RecordGroup) SyncState {
	return SyncState{
		Status:        SyncLoaded,
		PrivateGroups: privateGroups,
		SharedGroups:  sharedGroups,
	}
}

// FailedState returns the state of a failed refresh.
func FailedState(err error) SyncState {
	return SyncState{Status: SyncFailed, Err: err}
}
