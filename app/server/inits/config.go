package inits

import (
	"class-website/app/server/config"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
)

func Config() (*config.Config, error) {
	var cfg config.Config

	// 可选的配置文件，环境变量的优先级更高
	if cfgFile, exist := os.LookupEnv("CONFIG_FILE"); exist && cfgFile != "" {
		data, err := os.ReadFile(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if mode, exist := os.LookupEnv("MODE"); exist {
		cfg.System.IsProd = strings.HasPrefix(strings.ToLower(mode), "p")
	}

	envOrDefault(&cfg.System.Listen, "LISTEN", ":3055") // 默认监听地址
	envOrDefault(&cfg.System.PublicDir, "PUBLIC_DIR", "public")
	envOrDefault(&cfg.System.RedisConnectionString, "REDIS_CONN", "")

	// 内容存储
	envOrDefault(&cfg.Storage.Backend, "STORE_BACKEND", config.StoreBackendDB)
	switch cfg.Storage.Backend {
	case config.StoreBackendDB:
		envOrDefault(&cfg.Storage.DBDriver, "DB_DRIVER", config.DBDriverPostgres)
		if cfg.Storage.DBDriver != config.DBDriverPostgres && cfg.Storage.DBDriver != config.DBDriverSQLite {
			return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.Storage.DBDriver)
		}
		envOrDefault(&cfg.Storage.DBConnectionString, "DB_CONN", "")
		if cfg.Storage.DBConnectionString == "" {
			return nil, fmt.Errorf("DB_CONN environment variable not set")
		}
	case config.StoreBackendFile:
		envOrDefault(&cfg.Storage.DataDir, "DATA_DIR", "data")
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND: %s", cfg.Storage.Backend)
	}

	// 图片存储
	envOrDefault(&cfg.Storage.AssetBackend, "ASSET_BACKEND", config.AssetBackendDisk)
	switch cfg.Storage.AssetBackend {
	case config.AssetBackendDisk:
		envOrDefault(&cfg.Storage.UploadDir, "UPLOAD_DIR", "public/assets/images/gallery")
	case config.AssetBackendMinIO:
		envOrDefault(&cfg.Storage.S3Endpoint, "S3_ENDPOINT", "")
		envOrDefault(&cfg.Storage.S3AccessKey, "S3_ACCESS_KEY", "")
		envOrDefault(&cfg.Storage.S3SecretKey, "S3_SECRET_KEY", "")
		envOrDefault(&cfg.Storage.S3Bucket, "S3_BUCKET", "")
		if cfg.Storage.S3Endpoint == "" || cfg.Storage.S3AccessKey == "" || cfg.Storage.S3SecretKey == "" || cfg.Storage.S3Bucket == "" {
			return nil, fmt.Errorf("S3_ENDPOINT, S3_ACCESS_KEY, S3_SECRET_KEY and S3_BUCKET are required for minio asset backend")
		}
	default:
		return nil, fmt.Errorf("unknown ASSET_BACKEND: %s", cfg.Storage.AssetBackend)
	}

	// 安全
	envOrDefault(&cfg.Security.SignatureSecretKey, "SIGNATURE_SECRET_KEY", "")
	if cfg.Security.SignatureSecretKey == "" {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	}

	// 初始管理员
	envOrDefault(&cfg.Admin.Username, "ADMIN_USERNAME", "admin")
	envOrDefault(&cfg.Admin.Password, "ADMIN_PASSWORD", "")
	if cfg.Admin.Password == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD environment variable not set")
	}

	return &cfg, nil
}

// envOrDefault 环境变量存在时覆盖，否则在字段为空时使用默认值
func envOrDefault(field *string, key string, def string) {
	if v, exist := os.LookupEnv(key); exist {
		*field = v
	} else if *field == "" {
		*field = def
	}
}
