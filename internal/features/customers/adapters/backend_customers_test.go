package adapters

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop-admin/internal/core/backend"
	"shop-admin/internal/core/httpclient"
	"shop-admin/internal/core/proxy"
	"shop-admin/internal/features/customers/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

func newAdapter(url, token string) *BackendCustomerAdapter {
	tokens := staticTokens(token)
	return NewBackendCustomerAdapter(backend.NewClient(url, httpclient.NewClient(time.Second, proxy.Settings{}, tokens), tokens))
}

func TestBackendCustomerAdapter_CRUD(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/customer":
			w.Write([]byte(`[{"id":"01C","name":"Budi","email":"budi@example.com","phone":"0812","address":"Bandung"}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/customer":
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"name":"Sari","email":"sari@example.com","password":"pw","phone":"","address":""}`, string(body))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"01D","name":"Sari","email":"sari@example.com"}`))
		case r.Method == http.MethodPatch && r.URL.Path == "/customer/01D":
			w.Write([]byte(`{"id":"01D","name":"Sari","address":"Medan"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/customer/01D":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	adapter := newAdapter(server.URL, "tok")
	ctx := context.Background()

	customers, err := adapter.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Budi", customers[0].Name)

	created, err := adapter.Create(ctx, domain.CustomerInput{Name: "Sari", Email: "sari@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "01D", created.ID.String())

	addr := "Medan"
	updated, err := adapter.Update(ctx, "01D", domain.CustomerPatch{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, "Medan", updated.Address)

	assert.NoError(t, adapter.Delete(ctx, "01D"))
}

func TestBackendCustomerAdapter_UpdateWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called without a token")
	}))
	defer server.Close()

	addr := "Medan"
	_, err := newAdapter(server.URL, "").Update(context.Background(), "01D", domain.CustomerPatch{Address: &addr})
	assert.ErrorIs(t, err, backend.ErrMissingToken)
}
