package minio

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/minio/madmin-go/v3"
	minio "github.com/minio/minio/cmd"
)

var objectStorageEndpoint string

// Path of the .env.test file at the root of the module.
func envFilePath() string {
	_, filename, _, _ := runtime.Caller(0)

	return filepath.Join(filepath.Dir(filename), "..", "..", "..", ".env.test")
}

// Endpoint returns the URL of the running object storage server, or an empty
// string when SetupObjectStorage was not called by the test binary.
func Endpoint() string {
	return objectStorageEndpoint
}

// SetupObjectStorage starts an embedded minio server for the lifetime of the
// test binary and runs the callback, which is expected to call m.Run.
func SetupObjectStorage(m *testing.M, callback func()) {
	err := godotenv.Load(envFilePath())

	if err != nil {
		log.Fatal(err)
	}

	directory, err := os.MkdirTemp("", "pager-object-storage-")

	if err != nil {
		log.Fatal(err)
	}

	address, err := StartMinioServer(directory)

	if err != nil {
		log.Fatal(err)
	}

	objectStorageEndpoint = fmt.Sprintf("http://%s", address)

	callback()

	// The server goroutine ends with the test binary. Stopping it through
	// the admin API exits the process with its own status.
	os.RemoveAll(directory)
}

func StartMinioServer(directory string) (string, error) {
	l, err := net.Listen("tcp", "localhost:0")

	if err != nil {
		return "", err
	}

	addr := l.Addr().String()

	err = l.Close()

	if err != nil {
		return "", err
	}

	accessKeyID := os.Getenv("MINIO_ROOT_USER")
	secretAccessKey := os.Getenv("MINIO_ROOT_PASSWORD")

	madm, err := madmin.New(addr, accessKeyID, secretAccessKey, false)

	if err != nil {
		log.Println("Error creating Minio admin client", err)
		return "", err
	}

	go func() {
		minio.Main([]string{
			"minio",
			"server",
			"--quiet",
			"--address",
			addr,
			directory,
		})
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for {
		_, err := madm.ServerInfo(ctx)

		if err == nil {
			return addr, nil
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("minio did not start at %s: %w", addr, err)
		case <-time.After(500 * time.Millisecond):
		}
	}
}
