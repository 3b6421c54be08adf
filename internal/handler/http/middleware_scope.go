package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/models"
)

type scopeCtxKey struct{}

// withScope parses the {scope} URL parameter once for every database route.
func (h *Handler) withScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, err := models.ParseScope(chi.URLParam(r, "scope"))
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("bad database scope")
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), scopeCtxKey{}, scope)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func scopeFromRequest(r *http.Request) models.Scope {
	scope, _ := r.Context().Value(scopeCtxKey{}).(models.Scope)
	return scope
}
