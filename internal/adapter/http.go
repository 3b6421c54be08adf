package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-zone-keeper/internal/config"
	"github.com/MKhiriev/go-zone-keeper/internal/logger"
	"github.com/MKhiriev/go-zone-keeper/internal/utils"
	"github.com/MKhiriev/go-zone-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type httpContainer struct {
	client      *utils.HTTPClient
	containerID string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPContainer constructs an HTTP/REST implementation of [Container].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL, or if appCfg.ContainerID is empty.
func NewHTTPContainer(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (Container, error) {
	if appCfg.ContainerID == "" {
		return nil, fmt.Errorf("empty container identifier")
	}

	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, map[string]string{
		models.HeaderContainerID: appCfg.ContainerID,
	})

	return &httpContainer{client: client, containerID: appCfg.ContainerID, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ID implements [Container].
func (c *httpContainer) ID() string {
	return c.containerID
}

// Database implements [Container]. The returned database shares the
// container's HTTP client and bearer token.
func (c *httpContainer) Database(scope models.Scope) Database {
	return &httpDatabase{container: c, scope: scope}
}

// SetToken implements [Container]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (c *httpContainer) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token implements [Container].
func (c *httpContainer) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register implements [Container]. It POSTs the credentials to
// POST /api/auth/register and keeps the bearer token from the Authorization
// response header.
func (c *httpContainer) Register(ctx context.Context, user models.User) (models.User, error) {
	return c.authenticate(ctx, "/api/auth/register", user)
}

// Login implements [Container]. It POSTs the credentials to
// POST /api/auth/login and keeps the bearer token from the Authorization
// response header.
func (c *httpContainer) Login(ctx context.Context, user models.User) (models.User, error) {
	return c.authenticate(ctx, "/api/auth/login", user)
}

func (c *httpContainer) authenticate(ctx context.Context, path string, user models.User) (models.User, error) {
	var foundUser models.User

	resp, err := c.request(ctx).
		SetBody(user).
		SetResult(&foundUser).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get(models.HeaderAuthorization))
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}
	c.SetToken(token)

	if foundUser.Login == "" {
		foundUser.Login = user.Login
	}
	return foundUser, nil
}

// AcceptShare implements [Container]. It POSTs the share metadata to
// POST /api/shares/accept.
func (c *httpContainer) AcceptShare(ctx context.Context, metadata models.ShareMetadata) (models.Zone, error) {
	var zone models.Zone

	resp, err := c.authedRequest(ctx).
		SetBody(models.AcceptShareRequest{Metadata: metadata}).
		SetResult(&zone).
		Post("/api/shares/accept")
	if err != nil {
		return models.Zone{}, fmt.Errorf("accept share request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Zone{}, err
	}

	return zone, nil
}

// request returns a JSON request tagged with a fresh trace ID. The trace ID is
// logged so client entries can be matched with the server's.
func (c *httpContainer) request(ctx context.Context) *resty.Request {
	traceID := uuid.NewString()
	logger.FromContext(ctx).Debug().Str("trace_id", traceID).Msg("outgoing record store request")

	return c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(models.HeaderTraceID, traceID)
}

func (c *httpContainer) authedRequest(ctx context.Context) *resty.Request {
	req := c.request(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader(models.HeaderAuthorization, "Bearer "+token)
	}
	return req
}
