package tui

import (
	"github.com/MKhiriev/go-zone-keeper/models"
)

// stateMsg carries a published sync state into the update loop.
type stateMsg struct {
	state models.SyncState
}

type refreshDoneMsg struct {
	err error
}

type contactAddedMsg struct {
	contact models.Contact
	err     error
}

type shareReadyMsg struct {
	group    string
	share    models.Share
	metadata models.ShareMetadata
	err      error
}

type shareAcceptedMsg struct {
	zone models.Zone
	err  error
}

type clearStatusMsg struct{}
