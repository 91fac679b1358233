package test

import (
	"context"
	"crypto/rand"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/joho/godotenv"
	"github.com/litebase/pager/internal/test/minio"
	"github.com/litebase/pager/pkg/config"
	"github.com/litebase/pager/pkg/storage"
)

func CreateHash(length int) string {
	randomBytes := make([]byte, length)
	io.ReadFull(rand.Reader, randomBytes)
	hash := sha1.New()
	hash.Write(randomBytes)
	hashBytes := hash.Sum(nil)

	return fmt.Sprintf("%x", hashBytes)
}

// Path of the .env.test file at the root of the module.
func envFilePath() string {
	_, filename, _, _ := runtime.Caller(0)

	return filepath.Join(filepath.Dir(filename), "..", "..", ".env.test")
}

// Setup prepares an isolated data path and returns a configuration pointing
// at it.
func Setup(t testing.TB) *config.Config {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	err := godotenv.Load(envFilePath())

	if err != nil {
		t.Fatalf("failed to load test environment: %v", err)
	}

	setTestEnvVariable(t)

	dataPath := filepath.Join(t.TempDir(), CreateHash(32))

	if err := os.MkdirAll(dataPath, 0750); err != nil {
		t.Fatalf("failed to create test data path: %v", err)
	}

	t.Setenv("PAGER_DATA_PATH", dataPath)

	return config.NewConfig()
}

func Teardown(t testing.TB, c *config.Config) {
	err := os.RemoveAll(c.DataPath)

	if err != nil {
		t.Errorf("failed to remove test data path: %v", err)
	}
}

// Run executes the callback with a configuration using the local driver.
func Run(t testing.TB, callback func(c *config.Config)) {
	c := Setup(t)
	defer Teardown(t, c)

	callback(c)
}

// RunWithObjectStorage executes the callback with a configuration using the
// object driver against the embedded minio server. Each call gets its own
// bucket. The test binary must start the server with SetupObjectStorage.
func RunWithObjectStorage(t testing.TB, callback func(c *config.Config)) {
	endpoint := minio.Endpoint()

	if endpoint == "" {
		t.Fatal("object storage is not running, call test.SetupObjectStorage from TestMain")
	}

	setTestEnvVariable(t)

	t.Setenv("PAGER_FILESYSTEM_DRIVER", config.FileSystemDriverObject)
	t.Setenv("PAGER_FAKE_OBJECT_STORAGE", "true")
	t.Setenv("PAGER_STORAGE_BUCKET", fmt.Sprintf("pager-test-%s", CreateHash(8)[:16]))
	t.Setenv("PAGER_STORAGE_ENDPOINT", endpoint)

	c := Setup(t)
	defer Teardown(t, c)

	driver := objectDriver(t, c)

	_, err := driver.S3Client.CreateBucket(context.Background(), &s3.CreateBucketInput{
		Bucket: aws.String(c.StorageBucket),
	})

	if err != nil {
		t.Fatalf("failed to create bucket %s: %v", c.StorageBucket, err)
	}

	defer removeBucket(t, driver, c.StorageBucket)

	callback(c)
}

// SetupObjectStorage starts the embedded object storage server around the
// tests of a package.
func SetupObjectStorage(m *testing.M, callback func()) {
	minio.SetupObjectStorage(m, callback)
}

// RunWithEachDriver runs the callback once per file system driver as a
// subtest named after the driver.
func RunWithEachDriver(t *testing.T, callback func(t *testing.T, c *config.Config)) {
	t.Run(config.FileSystemDriverLocal, func(t *testing.T) {
		Run(t, func(c *config.Config) {
			callback(t, c)
		})
	})

	t.Run(config.FileSystemDriverObject, func(t *testing.T) {
		RunWithObjectStorage(t, func(c *config.Config) {
			callback(t, c)
		})
	})
}

// FileSystem returns the file system selected by the configuration.
func FileSystem(t testing.TB, c *config.Config) *storage.FileSystem {
	fs, err := storage.NewFileSystemFromConfig(c)

	if err != nil {
		t.Fatalf("failed to create file system: %v", err)
	}

	return fs
}

// ReadObject returns the stored bytes of an object as the object store holds
// them, without decompression.
func ReadObject(t testing.TB, c *config.Config, key string) ([]byte, bool) {
	output, err := objectDriver(t, c).S3Client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(c.StorageBucket),
		Key:    aws.String(key),
	})

	if err != nil {
		var noKey *s3types.NoSuchKey

		if errors.As(err, &noKey) {
			return nil, false
		}

		t.Fatalf("failed to read object %s: %v", key, err)
	}

	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)

	if err != nil {
		t.Fatalf("failed to read object %s: %v", key, err)
	}

	return data, true
}

func objectDriver(t testing.TB, c *config.Config) *storage.ObjectFileSystemDriver {
	driver, err := storage.NewObjectFileSystemDriver(c)

	if err != nil {
		t.Fatalf("failed to create object driver: %v", err)
	}

	return driver
}

func removeBucket(t testing.TB, driver *storage.ObjectFileSystemDriver, bucket string) {
	if err := driver.RemoveAll(""); err != nil {
		t.Errorf("failed to empty bucket %s: %v", bucket, err)
		return
	}

	_, err := driver.S3Client.DeleteBucket(context.Background(), &s3.DeleteBucketInput{
		Bucket: aws.String(bucket),
	})

	if err != nil {
		t.Errorf("failed to remove bucket %s: %v", bucket, err)
	}
}
