package ports

import (
	"context"
	"io"
)

// AttachmentStore is the outbound contract for binary attachment storage.
// Implementations return a URL under which the stored object is reachable;
// that URL is what gets recorded on the status history entry.
type AttachmentStore interface {
	// Put stores the attachment under the given key and returns its URL.
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}
