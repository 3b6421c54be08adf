package http

import (
	"net/http"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/internal/utils"
	"github.com/MKhiriev/go-zone-keeper/models"
)

// decodeBody decodes the JSON request body into dst and answers 400 on
// failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) allZones(w http.ResponseWriter, r *http.Request) {
	scope := scopeFromRequest(r)

	zones, err := h.services.RecordStoreService.AllZones(r.Context(), scope)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("scope", scope.String()).Msg("error listing zones")
		writeError(w, err)
		return
	}
	if zones == nil {
		zones = []models.Zone{}
	}

	utils.WriteJSON(w, models.ZonesResponse{Zones: zones, Length: len(zones)}, http.StatusOK)
}

func (h *Handler) fetchZone(w http.ResponseWriter, r *http.Request) {
	var req models.FetchZoneRequest
	if !decodeBody(w, r, &req) {
		return
	}

	zone, err := h.services.RecordStoreService.FetchZone(r.Context(), scopeFromRequest(r), req.ZoneID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("zone", req.ZoneID.String()).Msg("error fetching zone")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, zone, http.StatusOK)
}

func (h *Handler) saveZone(w http.ResponseWriter, r *http.Request) {
	var zone models.Zone
	if !decodeBody(w, r, &zone) {
		return
	}

	saved, err := h.services.RecordStoreService.SaveZone(r.Context(), scopeFromRequest(r), zone)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("zone", zone.ID.String()).Msg("error saving zone")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) zoneChanges(w http.ResponseWriter, r *http.Request) {
	var req models.ZoneChangesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	changes, err := h.services.RecordStoreService.ZoneChanges(r.Context(), scopeFromRequest(r), req)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("zone", req.ZoneID.String()).Msg("error reading zone changes")
		writeError(w, err)
		return
	}
	if changes.Modifications == nil {
		changes.Modifications = []models.RecordResult{}
	}

	utils.WriteJSON(w, changes, http.StatusOK)
}

func (h *Handler) saveRecord(w http.ResponseWriter, r *http.Request) {
	var record models.Record
	if !decodeBody(w, r, &record) {
		return
	}

	saved, err := h.services.RecordStoreService.SaveRecord(r.Context(), scopeFromRequest(r), record)
	if err != nil {
		logger.FromRequest(r).Err(err).
			Str("zone", record.ID.ZoneID.String()).
			Str("record", record.ID.RecordName).
			Msg("error saving record")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) fetchRecord(w http.ResponseWriter, r *http.Request) {
	var req models.FetchRecordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	record, err := h.services.RecordStoreService.FetchRecord(r.Context(), scopeFromRequest(r), req.RecordID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("record", req.RecordID.RecordName).Msg("error fetching record")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) saveShare(w http.ResponseWriter, r *http.Request) {
	var req models.SaveShareRequest
	if !decodeBody(w, r, &req) {
		return
	}

	share, err := h.services.RecordStoreService.SaveShare(r.Context(), scopeFromRequest(r), req)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("zone", req.ZoneID.String()).Msg("error saving share")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, share, http.StatusCreated)
}
