package proxy

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_Disabled(t *testing.T) {
	s := Settings{Hostname: "proxy.local", Port: 3128}

	assert.False(t, s.HasProxy())
	assert.Empty(t, s.HostPort())
	assert.Nil(t, s.URL())
	assert.Equal(t, http.DefaultTransport, s.Transport())
}

func TestSettings_WithCredentials(t *testing.T) {
	s := Settings{Enabled: true, Hostname: "proxy.local", Port: 3128, Username: "u", Password: "p"}

	require.True(t, s.HasProxy())
	assert.Equal(t, "http://proxy.local:3128", s.HostPort())
	assert.Equal(t, "http://u:p@proxy.local:3128", s.URL().String())

	tr, ok := s.Transport().(*http.Transport)
	require.True(t, ok)
	req, _ := http.NewRequest(http.MethodGet, "http://backend.test/api/product", nil)
	proxyURL, err := tr.Proxy(req)
	require.NoError(t, err)
	assert.Equal(t, "proxy.local:3128", proxyURL.Host)
}
