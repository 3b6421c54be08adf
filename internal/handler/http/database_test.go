package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-zone-keeper/internal/service"
	"github.com/MKhiriev/go-zone-keeper/internal/store"
	"github.com/MKhiriev/go-zone-keeper/internal/utils"
	"github.com/MKhiriev/go-zone-keeper/models"
)

var family = models.ZoneID{OwnerName: "alice", ZoneName: "Family"}

// authorized expects one token check that resolves to alice.
func authorized(m handlerMocks) {
	token := models.Token{Claims: models.Claims{Login: "alice"}, UserID: 1}
	m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(token, nil)
}

func storeRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(models.HeaderAuthorization, "Bearer good")
	req.Header.Set(models.HeaderContainerID, testContainerID)
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestAllZones_PassesPrincipalAndScope(t *testing.T) {
	h, m := newTestHandler(t)
	authorized(m)

	m.store.EXPECT().AllZones(gomock.Any(), models.ScopeShared).
		DoAndReturn(func(ctx context.Context, _ models.Scope) ([]models.Zone, error) {
			login, ok := utils.GetLoginFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, "alice", login)
			return []models.Zone{{ID: family}}, nil
		})

	rec := serve(h, storeRequest(http.MethodGet, "/api/databases/shared/zones", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ZonesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Length)
	assert.Equal(t, family, resp.Zones[0].ID)
}

func TestAllZones_EmptyListIsArray(t *testing.T) {
	h, m := newTestHandler(t)
	authorized(m)
	m.store.EXPECT().AllZones(gomock.Any(), models.ScopePrivate).Return(nil, nil)

	rec := serve(h, storeRequest(http.MethodGet, "/api/databases/private/zones", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"zones":[],"length":0}`, rec.Body.String())
}

func TestDatabaseRoutes_UnknownScope(t *testing.T) {
	h, m := newTestHandler(t)
	authorized(m)

	rec := serve(h, storeRequest(http.MethodGet, "/api/databases/public/zones", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDatabaseRoutes_ContainerCheck(t *testing.T) {
	for _, containerID := range []string{"", "iCloud.other"} {
		t.Run(fmt.Sprintf("container %q", containerID), func(t *testing.T) {
			h, m := newTestHandler(t)
			authorized(m)

			req := storeRequest(http.MethodGet, "/api/databases/private/zones", "")
			req.Header.Set(models.HeaderContainerID, containerID)

			rec := serve(h, req)
			assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
		})
	}
}

func TestDatabaseRoutes_RejectedToken(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	rec := serve(h, storeRequest(http.MethodGet, "/api/databases/private/zones", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestZoneChanges(t *testing.T) {
	h, m := newTestHandler(t)
	authorized(m)

	req := models.ZoneChangesRequest{ZoneID: family, Since: models.ChangeToken("abc")}
	m.store.EXPECT().ZoneChanges(gomock.Any(), models.ScopePrivate, req).
		Return(models.ZoneChanges{MoreComing: true, ChangeToken: models.ChangeToken("def")}, nil)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	rec := serve(h, storeRequest(http.MethodPost, "/api/databases/private/changes", string(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var changes models.ZoneChanges
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &changes))
	assert.True(t, changes.MoreComing)
	assert.Equal(t, models.ChangeToken("def"), changes.ChangeToken)
	assert.NotNil(t, changes.Modifications)
}

func TestDatabaseRoutes_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		expect     func(m handlerMocks, err error)
		err        error
		wantStatus int
	}{
		{
			name: "zone outside view",
			path: "/api/databases/shared/zones/lookup",
			body: `{"zone_id":{"zone_name":"Family","owner_name":"carol"}}`,
			expect: func(m handlerMocks, err error) {
				m.store.EXPECT().FetchZone(gomock.Any(), models.ScopeShared, gomock.Any()).Return(models.Zone{}, err)
			},
			err:        fmt.Errorf("%w: carol/Family", service.ErrZoneNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name: "stale change tag",
			path: "/api/databases/private/records",
			body: `{"id":{"record_name":"r1","zone_id":{"zone_name":"Family"}},"record_type":"SharedContact"}`,
			expect: func(m handlerMocks, err error) {
				m.store.EXPECT().SaveRecord(gomock.Any(), models.ScopePrivate, gomock.Any()).Return(models.Record{}, err)
			},
			err:        fmt.Errorf("error saving record: %w", store.ErrVersionConflict),
			wantStatus: http.StatusConflict,
		},
		{
			name: "missing record",
			path: "/api/databases/private/records/lookup",
			body: `{"record_id":{"record_name":"r1","zone_id":{"zone_name":"Family"}}}`,
			expect: func(m handlerMocks, err error) {
				m.store.EXPECT().FetchRecord(gomock.Any(), models.ScopePrivate, gomock.Any()).Return(models.Record{}, err)
			},
			err:        store.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "share exists",
			path: "/api/databases/private/shares",
			body: `{"zone_id":{"zone_name":"Family"},"title":"Contact Group: Family"}`,
			expect: func(m handlerMocks, err error) {
				m.store.EXPECT().SaveShare(gomock.Any(), models.ScopePrivate, gomock.Any()).Return(models.Record{}, err)
			},
			err:        store.ErrShareAlreadyExists,
			wantStatus: http.StatusConflict,
		},
		{
			name: "zone saved in shared scope",
			path: "/api/databases/shared/zones",
			body: `{"id":{"zone_name":"Family","owner_name":"carol"}}`,
			expect: func(m handlerMocks, err error) {
				m.store.EXPECT().SaveZone(gomock.Any(), models.ScopeShared, gomock.Any()).Return(models.Zone{}, err)
			},
			err:        service.ErrInvalidScopeOperation,
			wantStatus: http.StatusForbidden,
		},
		{
			name: "forged change token",
			path: "/api/databases/private/changes",
			body: `{"zone_id":{"zone_name":"Family"},"since":"Zm9v"}`,
			expect: func(m handlerMocks, err error) {
				m.store.EXPECT().ZoneChanges(gomock.Any(), models.ScopePrivate, gomock.Any()).Return(models.ZoneChanges{}, err)
			},
			err:        service.ErrInvalidChangeToken,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid json",
			path:       "/api/databases/private/records",
			body:       `{"id":`,
			expect:     func(handlerMocks, error) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			authorized(m)
			tt.expect(m, tt.err)

			rec := serve(h, storeRequest(http.MethodPost, tt.path, tt.body))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSaveShare_Created(t *testing.T) {
	h, m := newTestHandler(t)
	authorized(m)

	share := models.Record{
		ID:         models.RecordID{RecordName: "s1", ZoneID: family},
		RecordType: models.ShareRecordType,
		Fields:     map[string]string{models.ShareFieldTitle: "Contact Group: Family"},
	}
	m.store.EXPECT().SaveShare(gomock.Any(), models.ScopePrivate, models.SaveShareRequest{
		ZoneID: models.ZoneID{ZoneName: "Family"},
		Title:  "Contact Group: Family",
	}).Return(share, nil)

	rec := serve(h, storeRequest(http.MethodPost, "/api/databases/private/shares",
		`{"zone_id":{"zone_name":"Family"},"title":"Contact Group: Family"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, share.ID, got.ID)
}

func TestAcceptShare(t *testing.T) {
	metadata := models.ShareMetadata{
		ContainerID:   testContainerID,
		ShareRecordID: models.RecordID{RecordName: "s1", ZoneID: family},
	}
	body, err := json.Marshal(models.AcceptShareRequest{Metadata: metadata})
	require.NoError(t, err)

	t.Run("joined", func(t *testing.T) {
		h, m := newTestHandler(t)
		authorized(m)
		m.store.EXPECT().AcceptShare(gomock.Any(), metadata).Return(models.Zone{ID: family, Share: &metadata.ShareRecordID}, nil)

		rec := serve(h, storeRequest(http.MethodPost, "/api/shares/accept", string(body)))

		require.Equal(t, http.StatusOK, rec.Code)
		var zone models.Zone
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &zone))
		assert.Equal(t, family, zone.ID)
	})

	t.Run("other container", func(t *testing.T) {
		h, m := newTestHandler(t)
		authorized(m)
		m.store.EXPECT().AcceptShare(gomock.Any(), metadata).Return(models.Zone{}, service.ErrContainerMismatch)

		rec := serve(h, storeRequest(http.MethodPost, "/api/shares/accept", string(body)))
		assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	})
}
