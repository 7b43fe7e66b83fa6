// Package vault implements secrets.Storager against HashiCorp Vault KV v2.
package vault

import (
	"context"
	"fmt"

	"github.com/hashicorp/vault/api"

	"github.com/gym-network-toolkit/portal/pkg/secrets"
)

// Client implements the secrets.Storager interface for HashiCorp Vault.
type Client struct {
	client *api.Client
	path   string
}

var _ secrets.Storager = (*Client)(nil)

// NewVaultClient wraps an existing Vault API client (for testing).
func NewVaultClient(vaultClient *api.Client, path string) *Client {
	return &Client{client: vaultClient, path: path}
}

// NewClient creates a Vault client from address/token configuration.
func NewClient(address, token, path string) (*Client, error) {
	vaultConfig := api.DefaultConfig()
	vaultConfig.Address = address

	client, err := api.NewClient(vaultConfig)
	if err != nil {
		return nil, err
	}

	client.SetToken(token)

	if path == "" {
		path = "secret/data/portal"
	}

	return &Client{client: client, path: path}, nil
}

// GetKeyValue reads a single key from the configured secret path.
func (c *Client) GetKeyValue(key string) (string, error) {
	ctx := context.Background()

	secret, err := c.client.Logical().ReadWithContext(ctx, c.path)
	if err != nil {
		return "", err
	}

	if secret == nil {
		return "", fmt.Errorf("secret not found at path: %s", c.path)
	}

	// KV v2 nests the payload under "data"
	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected secret data format at %s", c.path)
	}

	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("key %s not found in secret at path %s", key, c.path)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("value for key %s is not a string", key)
	}

	return strValue, nil
}

// SetKeyValue writes a single key-value pair, preserving other keys at the path.
func (c *Client) SetKeyValue(key, value string) error {
	ctx := context.Background()

	secret, err := c.client.Logical().ReadWithContext(ctx, c.path)
	data := make(map[string]interface{})

	if err == nil && secret != nil {
		if d, ok := secret.Data["data"].(map[string]interface{}); ok {
			data = d
		}
	}

	data[key] = value

	_, err = c.client.Logical().WriteWithContext(ctx, c.path, map[string]interface{}{
		"data": data,
	})

	return err
}
