package metal_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/alejandrodnm/metalbot/internal/adapters/metal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *metal.Client {
	return metal.NewClient(srv.URL, "", "test-key")
}

func TestListMerchantTokens_FiltersAndSkips(t *testing.T) {
	data, err := os.ReadFile("../../../testdata/fixtures/merchant_all_tokens.json")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/merchant/all-tokens", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}))
	defer srv.Close()

	client := newTestClient(srv)
	tokens := client.ListMerchantTokens(context.Background(), "0xmerchant")

	// 4 entradas: una de otro merchant, una sin address → quedan 2, en orden
	require.Len(t, tokens, 2)

	first := tokens[0]
	assert.Equal(t, "tok-001", first.ID)
	assert.Equal(t, "0xaaa111", first.Address)
	assert.Equal(t, "Acme Consolidated", first.Name)
	assert.Equal(t, "AC", first.Symbol)
	assert.Equal(t, uint64(1000000000), first.TotalSupply)
	assert.Equal(t, uint64(420000000), first.RemainingAppSupply)
	assert.Equal(t, uint64(100000000), first.MerchantSupply)
	assert.InDelta(t, 0.00042, first.Price, 1e-9)

	// Entrada sin name/symbol se conserva con zero values
	second := tokens[1]
	assert.Equal(t, "0xddd444", second.Address)
	assert.Empty(t, second.Name)
	assert.Zero(t, second.TotalSupply)
}

func TestListMerchantTokens_NoMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"address":"0x1","merchantAddress":"0xother"}]`))
	}))
	defer srv.Close()

	client := newTestClient(srv)
	tokens := client.ListMerchantTokens(context.Background(), "0xmerchant")
	assert.Empty(t, tokens)
}

func TestListMerchantTokens_NonArrayResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":"not an array"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)
	assert.Empty(t, client.ListMerchantTokens(context.Background(), "0xmerchant"))
}

func TestListMerchantTokens_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv)
	assert.Empty(t, client.ListMerchantTokens(context.Background(), "0xmerchant"))
}

func TestListMerchantTokens_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // conexión rechazada

	client := newTestClient(srv)
	assert.Empty(t, client.ListMerchantTokens(context.Background(), "0xmerchant"))
}
