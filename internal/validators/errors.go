package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyZoneName      = errors.New("zone name is required")
	ErrInvalidZoneName    = errors.New("invalid zone name")
	ErrEmptyRecordName    = errors.New("record name is required")
	ErrInvalidRecordName  = errors.New("invalid record name")
	ErrEmptyRecordType    = errors.New("record type is required")
	ErrReservedRecordType = errors.New("record type is reserved")
	ErrTooManyFields      = errors.New("too many record fields")
	ErrFieldTooLong       = errors.New("record field value is too long")
	ErrEmptyShareTitle    = errors.New("share title is required")
	ErrEmptyContainerID   = errors.New("container identifier is required")
	ErrEmptyLogin         = errors.New("login is required")
	ErrInvalidLogin       = errors.New("invalid login")
	ErrEmptyPassword      = errors.New("password is required")
)
