package http

import (
	"net/http"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/models"
)

// checkContainer rejects requests addressed to a container other than the
// one this server hosts with 412 Precondition Failed.
func (h *Handler) checkContainer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		containerID := r.Header.Get(models.HeaderContainerID)

		switch containerID {
		case h.containerID:
			next.ServeHTTP(w, r)
		case "":
			logger.FromRequest(r).Warn().Msg(ErrMissingContainerID.Error())
			http.Error(w, ErrMissingContainerID.Error(), http.StatusPreconditionFailed)
		default:
			logger.FromRequest(r).Warn().Str("container", containerID).Msg(ErrUnknownContainer.Error())
			http.Error(w, ErrUnknownContainer.Error(), http.StatusPreconditionFailed)
		}
	})
}
