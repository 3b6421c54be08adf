package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a.example", 0, nil)
	client2 := NewHTTPClient("http://b.example", 0, nil)

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
	assert.Equal(t, "http://a.example", client1.BaseURL)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	assert.Equal(t, time.Duration(0), NewHTTPClient("http://a.example", 0, nil).GetClient().Timeout)
	assert.Equal(t, time.Second, NewHTTPClient("http://a.example", time.Second, nil).GetClient().Timeout)
}

func TestNewHTTPClient_SendsDefaultHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, map[string]string{"X-Container-ID": "iCloud.test"})
	resp, err := client.R().Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())

	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, UserAgent, got.Get("User-Agent"))
	assert.Equal(t, "iCloud.test", got.Get("X-Container-ID"))
}
