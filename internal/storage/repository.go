// Package storage is the durable client-side store. It keeps the auth token,
// the cached user record and the transient pending email between screens,
// in a small sqlite key/value table.
package storage

import (
	"context"
)

// Keys used by the rest of the client. The values are opaque to this package.
const (
	KeyAuthToken = "authToken"
	KeyUserData  = "userData"
	KeyTempEmail = "tempEmail"
)

// Repository is a key/value view over the local store. Get returns nil
// (not an error) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
