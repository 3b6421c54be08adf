package models

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ShareRecordType is the record type of zone-wide share records.
	ShareRecordType = "cloudkit.share"

	// ShareFieldTitle holds the human-readable share title.
	ShareFieldTitle = "title"

	// ShareFieldParticipants holds the comma-separated logins that accepted
	// the share.
	ShareFieldParticipants = "participants"

	shareURLScheme = "zoneshare://"
)

// ErrMalformedShareURL is returned by [ParseShareURL].
var ErrMalformedShareURL = errors.New("malformed share url")

// Share is the capability record that grants other principals access to one
// zone. A zone has at most one share.
type Share struct {
	RecordID     RecordID `json:"record_id"`
	ZoneID       ZoneID   `json:"zone_id"`
	Title        string   `json:"title"`
	ChangeTag    string   `json:"change_tag,omitempty"`
	Participants []string `json:"participants,omitempty"`
}

// ShareFromRecord decodes a share from a fetched record. It returns false if
// the record is not a share.
func ShareFromRecord(record Record) (Share, bool) {
	if record.RecordType != ShareRecordType {
		return Share{}, false
	}
	title, _ := record.Field(ShareFieldTitle)

	var participants []string
	if raw, ok := record.Field(ShareFieldParticipants); ok && raw != "" {
		participants = strings.Split(raw, ",")
	}

	return Share{
		RecordID:     record.ID,
		ZoneID:       record.ID.ZoneID,
		Title:        title,
		ChangeTag:    record.ChangeTag,
		Participants: participants,
	}, true
}

// ShareMetadata is the connection context a remote principal needs to accept
// a share: which container to talk to and which share record to accept.
type ShareMetadata struct {
	ContainerID   string   `json:"container_id"`
	ShareRecordID RecordID `json:"share_record_id"`
}

// URL renders metadata as zoneshare://<container>/<owner>/<zone>/<record>.
func (m ShareMetadata) URL() string {
	id := m.ShareRecordID
	return shareURLScheme + strings.Join([]string{
		m.ContainerID,
		id.ZoneID.OwnerName,
		id.ZoneID.ZoneName,
		id.RecordName,
	}, "/")
}

// ParseShareURL is the inverse of [ShareMetadata.URL].
func ParseShareURL(raw string) (ShareMetadata, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, shareURLScheme) {
		return ShareMetadata{}, fmt.Errorf("%w: missing %s prefix", ErrMalformedShareURL, shareURLScheme)
	}

	parts := strings.Split(strings.TrimPrefix(raw, shareURLScheme), "/")
	if len(parts) != 4 {
		return ShareMetadata{}, fmt.Errorf("%w: expected 4 segments, got %d", ErrMalformedShareURL, len(parts))
	}
	for _, p := range parts {
		if p == "" {
			return ShareMetadata{}, fmt.Errorf("%w: empty segment", ErrMalformedShareURL)
		}
	}

	return ShareMetadata{
		ContainerID: parts[0],
		ShareRecordID: RecordID{
			RecordName: parts[3],
			ZoneID:     ZoneID{ZoneName: parts[2], OwnerName: parts[1]},
		},
	}, nil
}

// SaveShareRequest asks the store to create the share of a zone.
type SaveShareRequest struct {
	ZoneID ZoneID `json:"zone_id"`
	Title  string `json:"title"`
}

// AcceptShareRequest asks the store to add the caller as a participant.
type AcceptShareRequest struct {
	Metadata ShareMetadata `json:"metadata"`
}
