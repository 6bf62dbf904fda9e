package testutils

import (
	"context"
	"fmt"
	"io"
)

// FakeFileStore records nothing and answers with deterministic references.
type FakeFileStore struct{}

func (FakeFileStore) UploadChangeFile(ctx context.Context, trackingNumber, changeID, filename string, r io.Reader, size int64, contentType string) (string, error) {
	return fmt.Sprintf("test://changes/%s/%s/%s", trackingNumber, changeID, filename), nil
}

func (FakeFileStore) UploadRequirementFile(ctx context.Context, trackingNumber, requirementID, filename string, r io.Reader, size int64, contentType string) (string, error) {
	return fmt.Sprintf("test://requirements/%s/%s/%s", trackingNumber, requirementID, filename), nil
}
