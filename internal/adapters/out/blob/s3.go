// Package blob implements attachment storage on S3-compatible object stores.
package blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	"workshop/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the subset of the S3 client used by the store.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3AttachmentStore stores status attachments as S3 objects and returns
// their public URLs.
type S3AttachmentStore struct {
	client    s3API
	bucket    string
	publicURL string
}

// NewS3AttachmentStore creates a store writing into the given bucket.
// publicURL is the prefix under which stored objects are reachable, for
// example a CDN or the bucket endpoint itself.
func NewS3AttachmentStore(client s3API, bucket, publicURL string) (*S3AttachmentStore, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if bucket == "" {
		return nil, errs.NewValueIsRequiredError("bucket")
	}
	if publicURL == "" {
		return nil, errs.NewValueIsRequiredError("publicURL")
	}

	return &S3AttachmentStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Put uploads the attachment body under key and returns the URL it is
// reachable at. Keys are slash-separated paths scoped per order.
func (s *S3AttachmentStore) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if key == "" {
		return "", errs.NewValueIsRequiredError("key")
	}
	if body == nil {
		return "", errs.NewValueIsRequiredError("body")
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put attachment %q: %w", key, err)
	}

	return s.publicURL + "/" + key, nil
}
