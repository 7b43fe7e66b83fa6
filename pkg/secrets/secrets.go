// Package secrets provides key-value secret storage for credentials the
// portal must not keep in plain config (the router management account).
package secrets

// Storager reads and writes string secrets by key.
type Storager interface {
	GetKeyValue(key string) (string, error)
	SetKeyValue(key, value string) error
}
