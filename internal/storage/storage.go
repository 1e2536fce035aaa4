// Package storage defines the key-value blob substrate the document state
// store persists to, together with in-memory, file-backed, and S3-backed
// implementations.
package storage

import "context"

// Substrate is a minimal keyed blob store. Get returns
// common.ErrorNotFound when the key is absent; callers decide whether
// absence is an error (for document collections it means "empty").
type Substrate interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
