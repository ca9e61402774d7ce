package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riod94/pitaya-store-sub001/internal/config"
)

func TestNewDefaultsToLocal(t *testing.T) {
	s, err := New(context.Background(), config.StorageConfig{
		Local: config.LocalStorageConfig{Dir: t.TempDir(), URLPrefix: "/uploads"},
	})
	require.NoError(t, err)
	assert.IsType(t, &Local{}, s)
}

func TestNewS3RequiresRegionBucketAndBaseURL(t *testing.T) {
	_, err := New(context.Background(), config.StorageConfig{
		Driver: "s3",
		S3:     config.S3StorageConfig{Bucket: "media"},
	})
	require.Error(t, err)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(context.Background(), config.StorageConfig{Driver: "ftp"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}
