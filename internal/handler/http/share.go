package http

import (
	"net/http"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/internal/utils"
	"github.com/MKhiriev/go-zone-keeper/models"
)

func (h *Handler) acceptShare(w http.ResponseWriter, r *http.Request) {
	var req models.AcceptShareRequest
	if !decodeBody(w, r, &req) {
		return
	}

	zone, err := h.services.RecordStoreService.AcceptShare(r.Context(), req.Metadata)
	if err != nil {
		logger.FromRequest(r).Err(err).
			Str("container", req.Metadata.ContainerID).
			Str("share", req.Metadata.ShareRecordID.RecordName).
			Msg("error accepting share")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, zone, http.StatusOK)
}
