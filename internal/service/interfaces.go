package service

import (
	"context"

	"github.com/MKhiriev/go-zone-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RecordStoreService serves the record store to authenticated principals.
// The principal is taken from the request context; scope selects whether
// zones are addressed as the owner (private) or as a participant (shared).
type RecordStoreService interface {
	AllZones(ctx context.Context, scope models.Scope) ([]models.Zone, error)
	FetchZone(ctx context.Context, scope models.Scope, zoneID models.ZoneID) (models.Zone, error)

	// SaveZone creates the zone if needed. Only allowed in the private scope.
	SaveZone(ctx context.Context, scope models.Scope, zone models.Zone) (models.Zone, error)

	// ZoneChanges returns one page of the zone changeset after the change
	// token in req; an empty token starts from the beginning.
	ZoneChanges(ctx context.Context, scope models.Scope, req models.ZoneChangesRequest) (models.ZoneChanges, error)

	SaveRecord(ctx context.Context, scope models.Scope, record models.Record) (models.Record, error)
	FetchRecord(ctx context.Context, scope models.Scope, recordID models.RecordID) (models.Record, error)

	// SaveShare creates the share record of a private zone.
	SaveShare(ctx context.Context, scope models.Scope, req models.SaveShareRequest) (models.Record, error)

	// AcceptShare adds the principal as a participant of the shared zone.
	AcceptShare(ctx context.Context, metadata models.ShareMetadata) (models.Zone, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
