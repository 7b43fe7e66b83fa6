package vault

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
)

func TestNewVaultClient(t *testing.T) {
	mockVaultClient := &api.Client{}

	client := NewVaultClient(mockVaultClient, "secret/data/portal")

	assert.NotNil(t, client)
	assert.Equal(t, mockVaultClient, client.client)
	assert.Equal(t, "secret/data/portal", client.path)
}

func TestNewClient_ValidConfig(t *testing.T) {
	client, err := NewClient("http://localhost:8200", "test-token", "secret/data/portal")

	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.NotNil(t, client.client)
}

func TestNewClient_EmptyToken(t *testing.T) {
	// Vault client creation succeeds even with empty token.
	// Token is set after client creation.
	client, err := NewClient("http://localhost:8200", "", "secret/data/portal")

	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.NotNil(t, client.client)
}

func TestNewClient_DefaultPath(t *testing.T) {
	client, err := NewClient("http://localhost:8200", "test-token", "")

	assert.NoError(t, err)
	assert.Equal(t, "secret/data/portal", client.path)
}

func TestGetKeyValue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/secret/data/portal", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"data": map[string]interface{}{
					"routeros_username": "portal-api",
				},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-token", "secret/data/portal")
	assert.NoError(t, err)

	value, err := client.GetKeyValue("routeros_username")

	assert.NoError(t, err)
	assert.Equal(t, "portal-api", value)
}

func TestGetKeyValue_MissingKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"data": map[string]interface{}{},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-token", "secret/data/portal")
	assert.NoError(t, err)

	_, err = client.GetKeyValue("routeros_password")

	assert.Error(t, err)
}
