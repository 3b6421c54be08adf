package models

import "github.com/google/uuid"

// ContactRecordType is the record type contacts are stored under.
const ContactRecordType = "SharedContact"

// Contact record fields.
const (
	ContactFieldName        = "name"
	ContactFieldPhoneNumber = "phoneNumber"
)

// Contact is the domain view of a contact record. ID and AssociatedRecord are
// assigned by the store and never change for the lifetime of the record.
type Contact struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	PhoneNumber      string `json:"phone_number"`
	AssociatedRecord Record `json:"-"`
}

// ContactFromRecord decodes a contact from a generic record. It returns false
// for records of another type and for records without a name, which is how
// malformed entries get filtered out of a changeset.
func ContactFromRecord(record Record) (Contact, bool) {
	if record.RecordType != ContactRecordType {
		return Contact{}, false
	}
	name, ok := record.Field(ContactFieldName)
	if !ok || name == "" {
		return Contact{}, false
	}
	phone, _ := record.Field(ContactFieldPhoneNumber)

	return Contact{
		ID:               record.ID.RecordName,
		Name:             name,
		PhoneNumber:      phone,
		AssociatedRecord: record,
	}, true
}

// NewContactRecord builds an unsaved contact record in zoneID. The record
// name is a fresh UUID, as the store expects clients to name new records.
func NewContactRecord(zoneID ZoneID, name, phoneNumber string) Record {
	return Record{
		ID: RecordID{
			RecordName: uuid.NewString(),
			ZoneID:     zoneID,
		},
		RecordType: ContactRecordType,
		Fields: map[string]string{
			ContactFieldName:        name,
			ContactFieldPhoneNumber: phoneNumber,
		},
	}
}
