package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	FileSystemDriverLocal  = "local"
	FileSystemDriverObject = "object"
)

var ErrMissingStorageBucket = errors.New("a storage bucket is required when using the object file system driver")

type Config struct {
	DataPath               string `validate:"required"`
	Debug                  bool
	Env                    string `validate:"oneof=development production test"`
	FakeObjectStorage      bool
	FileSystemDriver       string `validate:"oneof=local object"`
	StorageAccessKeyId     string
	StorageBucket          string
	StorageEndpoint        string
	StorageRegion          string
	StorageSecretAccessKey string
}

var validate = validator.New()

func env(key string, defaultValue string) any {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}

	return defaultValue
}

func NewConfig() *Config {
	return &Config{
		DataPath:               env("PAGER_DATA_PATH", ".").(string),
		Debug:                  env("PAGER_DEBUG", "false") == "true",
		Env:                    env("PAGER_ENV", EnvProduction).(string),
		FakeObjectStorage:      env("PAGER_FAKE_OBJECT_STORAGE", "false") == "true",
		FileSystemDriver:       env("PAGER_FILESYSTEM_DRIVER", FileSystemDriverLocal).(string),
		StorageAccessKeyId:     env("PAGER_STORAGE_ACCESS_KEY_ID", "").(string),
		StorageBucket:          env("PAGER_STORAGE_BUCKET", "").(string),
		StorageEndpoint:        env("PAGER_STORAGE_ENDPOINT", "").(string),
		StorageRegion:          env("PAGER_STORAGE_REGION", "us-east-1").(string),
		StorageSecretAccessKey: env("PAGER_STORAGE_SECRET_ACCESS_KEY", "").(string),
	}
}

// Validate checks the configuration before any storage is touched.
func (c *Config) Validate() error {
	err := validate.Struct(c)

	if err != nil {
		var validationErrors validator.ValidationErrors

		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))

			for _, fieldError := range validationErrors {
				fields = append(fields, fmt.Sprintf("%s (%s=%v)", fieldError.Field(), fieldError.Tag(), fieldError.Value()))
			}

			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}

		return err
	}

	if c.FileSystemDriver == FileSystemDriverObject && c.StorageBucket == "" {
		return ErrMissingStorageBucket
	}

	return nil
}

func (c *Config) IsObjectStorage() bool {
	return c.FileSystemDriver == FileSystemDriverObject
}
