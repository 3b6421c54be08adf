package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-zone-keeper/internal/service"
	"github.com/MKhiriev/go-zone-keeper/internal/store"
	"github.com/MKhiriev/go-zone-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrInvalidChangeToken:      http.StatusBadRequest,
	service.ErrDefaultZoneNotShareable: http.StatusBadRequest,
	models.ErrUnknownScope:             http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNoPrincipal:             http.StatusUnauthorized,
	service.ErrInvalidScopeOperation:   http.StatusForbidden,
	service.ErrZoneNotFound:            http.StatusNotFound,
	service.ErrContainerMismatch:       http.StatusPreconditionFailed,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrVersionConflict:    http.StatusConflict,
	store.ErrShareAlreadyExists: http.StatusConflict,
	store.ErrRecordTypeMismatch: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrZoneNotFound:       http.StatusNotFound,
	store.ErrRecordNotFound:     http.StatusNotFound,
	store.ErrShareNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Internal failures are
// not described to the caller.
func writeError(w http.ResponseWriter, err error) int {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return status
	}
	http.Error(w, err.Error(), status)
	return status
}
