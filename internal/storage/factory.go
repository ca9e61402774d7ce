package storage

import (
	"context"
	"fmt"

	"github.com/riod94/pitaya-store-sub001/internal/config"
)

// New builds the upload backend selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocal(cfg.Local.Dir, cfg.Local.URLPrefix), nil

	case "s3":
		if cfg.S3.Region == "" || cfg.S3.Bucket == "" || cfg.S3.PublicBaseURL == "" {
			return nil, fmt.Errorf("s3 storage needs S3_REGION, S3_BUCKET and S3_PUBLIC_BASE_URL")
		}
		return NewS3(ctx, S3Config{
			Region:        cfg.S3.Region,
			Bucket:        cfg.S3.Bucket,
			Prefix:        cfg.S3.Prefix,
			PublicBaseURL: cfg.S3.PublicBaseURL,
		})

	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
