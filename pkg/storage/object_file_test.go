package storage_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/litebase/pager/internal/test"
	"github.com/litebase/pager/pkg/config"
	"github.com/litebase/pager/pkg/storage"
)

func newObjectDriver(t *testing.T, c *config.Config) *storage.ObjectFileSystemDriver {
	driver, err := storage.NewObjectFileSystemDriver(c)

	if err != nil {
		t.Fatalf("NewObjectFileSystemDriver() returned an error: %v", err)
	}

	return driver
}

func TestNewObjectFile(t *testing.T) {
	test.RunWithObjectStorage(t, func(c *config.Config) {
		driver := newObjectDriver(t, c)

		t.Run("Create", func(t *testing.T) {
			of, err := storage.NewObjectFile(driver, "create.db", os.O_CREATE|os.O_RDWR)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if of.Key != "create.db" {
				t.Errorf("Key is unexpected: %v", of.Key)
			}

			if of.OpenFlags != os.O_CREATE|os.O_RDWR {
				t.Errorf("OpenFlags is unexpected: %v", of.OpenFlags)
			}

			if _, err := driver.Stat("create.db"); err != nil {
				t.Errorf("expected the object to exist after create, got %v", err)
			}
		})

		t.Run("MissingWithoutCreate", func(t *testing.T) {
			_, err := storage.NewObjectFile(driver, "missing.db", os.O_RDWR)

			if !errors.Is(err, os.ErrNotExist) {
				t.Errorf("expected os.ErrNotExist, got %v", err)
			}
		})

		t.Run("Truncate", func(t *testing.T) {
			if err := driver.WriteFile("truncate.db", []byte("existing"), 0600); err != nil {
				t.Fatal(err)
			}

			of, err := storage.NewObjectFile(driver, "truncate.db", os.O_RDWR|os.O_TRUNC)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			info, _ := of.Stat()

			if info.Size() != 0 {
				t.Errorf("expected a truncated file, got size %d", info.Size())
			}
		})
	})
}

func TestObjectFileReadWrite(t *testing.T) {
	test.RunWithObjectStorage(t, func(c *config.Config) {
		driver := newObjectDriver(t, c)

		of, err := storage.NewObjectFile(driver, "rw.db", os.O_CREATE|os.O_RDWR)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		t.Run("WriteAtKeepsTrailingBytes", func(t *testing.T) {
			if _, err := of.WriteAt([]byte("0123456789"), 0); err != nil {
				t.Fatal(err)
			}

			if _, err := of.WriteAt([]byte("ab"), 2); err != nil {
				t.Fatal(err)
			}

			buffer := make([]byte, 10)

			if _, err := of.ReadAt(buffer, 0); err != nil {
				t.Fatal(err)
			}

			if string(buffer) != "01ab456789" {
				t.Errorf("ReadAt() = %q, want %q", buffer, "01ab456789")
			}
		})

		t.Run("WriteAtPastEndZeroFills", func(t *testing.T) {
			if _, err := of.WriteAt([]byte("z"), 12); err != nil {
				t.Fatal(err)
			}

			buffer := make([]byte, 3)

			if _, err := of.ReadAt(buffer, 10); err != nil {
				t.Fatal(err)
			}

			if !bytes.Equal(buffer, []byte{0, 0, 'z'}) {
				t.Errorf("ReadAt() = %v, want zero fill before the write", buffer)
			}
		})

		t.Run("ReadAtShort", func(t *testing.T) {
			buffer := make([]byte, 8)

			n, err := of.ReadAt(buffer, 9)

			if n != 4 || err != io.EOF {
				t.Errorf("ReadAt() = %d, %v, want 4, io.EOF", n, err)
			}
		})

		t.Run("SeekAndRead", func(t *testing.T) {
			position, err := of.Seek(-3, io.SeekEnd)

			if err != nil || position != 10 {
				t.Fatalf("Seek() = %d, %v, want 10", position, err)
			}

			data, err := io.ReadAll(of)

			if err != nil {
				t.Fatal(err)
			}

			if !bytes.Equal(data, []byte{0, 0, 'z'}) {
				t.Errorf("ReadAll() = %v", data)
			}

			if _, err := of.Seek(-1, io.SeekStart); err == nil {
				t.Error("expected an error for a negative position")
			}
		})

		t.Run("SyncUploads", func(t *testing.T) {
			if err := of.Sync(); err != nil {
				t.Fatal(err)
			}

			data, err := driver.ReadFile("rw.db")

			if err != nil {
				t.Fatal(err)
			}

			if len(data) != 13 || string(data[:10]) != "01ab456789" {
				t.Errorf("ReadFile() = %q", data)
			}

			info, err := driver.Stat("rw.db")

			if err != nil {
				t.Fatal(err)
			}

			if info.Size() != 13 {
				t.Errorf("Stat().Size() = %d, want the uncompressed size 13", info.Size())
			}
		})

		t.Run("TruncateExtends", func(t *testing.T) {
			if err := of.Truncate(16); err != nil {
				t.Fatal(err)
			}

			info, _ := of.Stat()

			if info.Size() != 16 {
				t.Errorf("Size() = %d, want 16", info.Size())
			}
		})

		t.Run("Close", func(t *testing.T) {
			if err := of.Close(); err != nil {
				t.Fatal(err)
			}

			if err := of.Close(); !errors.Is(err, os.ErrClosed) {
				t.Errorf("second Close() = %v, want os.ErrClosed", err)
			}

			if _, err := of.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
				t.Errorf("Write() after Close = %v, want os.ErrClosed", err)
			}

			info, err := driver.Stat("rw.db")

			if err != nil {
				t.Fatal(err)
			}

			if info.Size() != 16 {
				t.Errorf("expected Close to upload pending changes, got size %d", info.Size())
			}
		})
	})
}

func TestObjectFileReadOnly(t *testing.T) {
	test.RunWithObjectStorage(t, func(c *config.Config) {
		driver := newObjectDriver(t, c)

		if err := driver.WriteFile("readonly.db", []byte("data"), 0600); err != nil {
			t.Fatal(err)
		}

		of, err := storage.NewObjectFile(driver, "readonly.db", os.O_RDONLY)

		if err != nil {
			t.Fatal(err)
		}

		if _, err := of.Write([]byte("x")); !errors.Is(err, os.ErrPermission) {
			t.Errorf("Write() = %v, want os.ErrPermission", err)
		}

		if err := of.Close(); err != nil {
			t.Errorf("Close() of an unchanged file = %v, want nil", err)
		}
	})
}
