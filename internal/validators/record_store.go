package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-zone-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldZoneName targets the zone name of a zone or zone identifier.
	FieldZoneName = "zone_name"

	// FieldRecordName targets the record name of a record or record identifier.
	FieldRecordName = "record_name"

	// FieldRecordType targets the record type of a record.
	FieldRecordType = "record_type"

	// FieldFields targets the key-value payload of a record.
	FieldFields = "fields"

	// FieldTitle targets the title of a share request.
	FieldTitle = "title"

	// FieldContainerID targets the container of share metadata.
	FieldContainerID = "container_id"

	// FieldLogin and FieldPassword target principal credentials.
	FieldLogin    = "login"
	FieldPassword = "password"
)

const (
	maxNameLength  = 255
	maxFieldCount  = 64
	maxFieldLength = 4096

	// identifierSeparators may not appear in zone names, record names or
	// logins: they delimit change tokens and share URLs.
	identifierSeparators = "|/"
)

// RecordStoreValidator validates the values accepted by the record store.
type RecordStoreValidator struct{}

func NewRecordStoreValidator() Validator {
	return &RecordStoreValidator{}
}

// Validate implements [Validator]. With no fields every applicable rule runs.
func (v *RecordStoreValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ZoneID:
		return v.validateZoneID(value, fields...)
	case models.Zone:
		return v.validateZoneID(value.ID, fields...)
	case models.RecordID:
		return v.validateRecordID(value, fields...)
	case models.Record:
		return v.validateRecord(value, fields...)
	case *models.Record:
		return v.validateRecord(*value, fields...)
	case models.SaveShareRequest:
		return v.validateSaveShareRequest(value, fields...)
	case models.ShareMetadata:
		return v.validateShareMetadata(value, fields...)
	case models.User:
		return v.validateUser(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordStoreValidator) validateZoneID(zoneID models.ZoneID, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldZoneName}
	}
	for _, field := range fields {
		switch field {
		case FieldZoneName:
			if err := validateName(zoneID.ZoneName, ErrEmptyZoneName, ErrInvalidZoneName); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RecordStoreValidator) validateRecordID(recordID models.RecordID, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldZoneName, FieldRecordName}
	}
	for _, field := range fields {
		switch field {
		case FieldZoneName:
			if err := v.validateZoneID(recordID.ZoneID); err != nil {
				return err
			}
		case FieldRecordName:
			if err := validateName(recordID.RecordName, ErrEmptyRecordName, ErrInvalidRecordName); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RecordStoreValidator) validateRecord(record models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldZoneName, FieldRecordName, FieldRecordType, FieldFields}
	}
	for _, field := range fields {
		switch field {
		case FieldZoneName, FieldRecordName:
			if err := v.validateRecordID(record.ID, field); err != nil {
				return err
			}
		case FieldRecordType:
			if strings.TrimSpace(record.RecordType) == "" {
				return ErrEmptyRecordType
			}
			if record.RecordType == models.ShareRecordType {
				return fmt.Errorf("%w: %s", ErrReservedRecordType, record.RecordType)
			}
		case FieldFields:
			if len(record.Fields) > maxFieldCount {
				return ErrTooManyFields
			}
			for key, value := range record.Fields {
				if len(value) > maxFieldLength {
					return fmt.Errorf("%w: %s", ErrFieldTooLong, key)
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RecordStoreValidator) validateSaveShareRequest(req models.SaveShareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldZoneName, FieldTitle}
	}
	for _, field := range fields {
		switch field {
		case FieldZoneName:
			if err := v.validateZoneID(req.ZoneID); err != nil {
				return err
			}
		case FieldTitle:
			if strings.TrimSpace(req.Title) == "" {
				return ErrEmptyShareTitle
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RecordStoreValidator) validateShareMetadata(metadata models.ShareMetadata, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContainerID, FieldZoneName, FieldRecordName}
	}
	for _, field := range fields {
		switch field {
		case FieldContainerID:
			if metadata.ContainerID == "" {
				return ErrEmptyContainerID
			}
		case FieldZoneName, FieldRecordName:
			if err := v.validateRecordID(metadata.ShareRecordID, field); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RecordStoreValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}
	for _, field := range fields {
		switch field {
		case FieldLogin:
			if err := validateName(user.Login, ErrEmptyLogin, ErrInvalidLogin); err != nil {
				return err
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func validateName(name string, errEmpty, errInvalid error) error {
	if strings.TrimSpace(name) == "" {
		return errEmpty
	}
	if utf8.RuneCountInString(name) > maxNameLength || !utf8.ValidString(name) {
		return errInvalid
	}
	if strings.ContainsAny(name, identifierSeparators) {
		return fmt.Errorf("%w: must not contain any of %q", errInvalid, identifierSeparators)
	}
	return nil
}
