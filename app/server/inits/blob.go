package inits

import (
	"class-website/app/server/assets"
	"class-website/app/server/config"
	"context"
	"fmt"
	"time"
)

func Blob(cfg *config.Config) (assets.Blob, error) {
	switch cfg.Storage.AssetBackend {
	case config.AssetBackendDisk:
		disk, err := assets.NewDisk(cfg.Storage.UploadDir)
		if err != nil {
			return nil, err
		}
		return disk, nil
	case config.AssetBackendMinIO:
		// 启动时检查桶是否存在
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		blob, err := assets.NewMinIO(ctx, cfg.Storage.S3Endpoint, cfg.Storage.S3AccessKey, cfg.Storage.S3SecretKey, cfg.Storage.S3Bucket)
		if err != nil {
			return nil, err
		}
		return blob, nil
	default:
		return nil, fmt.Errorf("unknown asset backend: %s", cfg.Storage.AssetBackend)
	}
}
