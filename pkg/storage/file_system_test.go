package storage_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/litebase/pager/internal/test"
	"github.com/litebase/pager/pkg/config"
	"github.com/litebase/pager/pkg/storage"
)

func TestNewFileSystemFromConfig(t *testing.T) {
	test.Run(t, func(c *config.Config) {
		t.Run("Local", func(t *testing.T) {
			fs, err := storage.NewFileSystemFromConfig(c)

			if err != nil {
				t.Fatalf("NewFileSystemFromConfig() returned an error: %v", err)
			}

			if _, ok := fs.Driver().(*storage.LocalFileSystemDriver); !ok {
				t.Errorf("expected a local driver, got %T", fs.Driver())
			}
		})

		t.Run("UnknownDriver", func(t *testing.T) {
			unknown := *c
			unknown.FileSystemDriver = "tape"

			if _, err := storage.NewFileSystemFromConfig(&unknown); err == nil {
				t.Error("expected an error for an unknown driver")
			}
		})
	})

	test.RunWithObjectStorage(t, func(c *config.Config) {
		fs, err := storage.NewFileSystemFromConfig(c)

		if err != nil {
			t.Fatalf("NewFileSystemFromConfig() returned an error: %v", err)
		}

		if _, ok := fs.Driver().(*storage.ObjectFileSystemDriver); !ok {
			t.Errorf("expected an object driver, got %T", fs.Driver())
		}
	})
}

func TestFileSystem(t *testing.T) {
	test.RunWithEachDriver(t, func(t *testing.T, c *config.Config) {
		fs := test.FileSystem(t, c)

		t.Run("WriteFileAndReadFile", func(t *testing.T) {
			if err := fs.MkdirAll("pages", 0750); err != nil {
				t.Fatalf("MkdirAll() returned an error: %v", err)
			}

			if err := fs.WriteFile("pages/write.db", []byte("page data"), 0600); err != nil {
				t.Fatalf("WriteFile() returned an error: %v", err)
			}

			data, err := fs.ReadFile("pages/write.db")

			if err != nil {
				t.Fatalf("ReadFile() returned an error: %v", err)
			}

			if string(data) != "page data" {
				t.Errorf("ReadFile() = %q, want %q", data, "page data")
			}
		})

		t.Run("MkdirAllAndStat", func(t *testing.T) {
			if err := fs.MkdirAll("nested/dir", 0750); err != nil {
				t.Fatalf("MkdirAll() returned an error: %v", err)
			}

			if err := fs.WriteFile("nested/dir/stat.db", make([]byte, 42), 0600); err != nil {
				t.Fatalf("WriteFile() returned an error: %v", err)
			}

			info, err := fs.Stat("nested/dir/stat.db")

			if err != nil {
				t.Fatalf("Stat() returned an error: %v", err)
			}

			if info.Size() != 42 {
				t.Errorf("Size() = %d, want 42", info.Size())
			}
		})

		t.Run("StatMissing", func(t *testing.T) {
			_, err := fs.Stat("missing.db")

			if !os.IsNotExist(err) {
				t.Errorf("Stat() error = %v, want not exist", err)
			}
		})

		t.Run("OpenFileMissingWithoutCreate", func(t *testing.T) {
			file, err := fs.OpenFile("missing.db", os.O_RDWR, 0600)

			if !os.IsNotExist(err) {
				t.Errorf("OpenFile() error = %v, want not exist", err)
			}

			if file != nil {
				t.Error("OpenFile() returned a file, expected nil")
			}
		})

		t.Run("OpenFileSeekWrite", func(t *testing.T) {
			file, err := fs.OpenFile("seek.db", os.O_RDWR|os.O_CREATE, 0600)

			if err != nil {
				t.Fatalf("OpenFile() returned an error: %v", err)
			}

			if _, err := file.Seek(8, io.SeekStart); err != nil {
				t.Fatalf("Seek() returned an error: %v", err)
			}

			if _, err := file.Write([]byte("tail")); err != nil {
				t.Fatalf("Write() returned an error: %v", err)
			}

			if _, err := file.Seek(0, io.SeekStart); err != nil {
				t.Fatalf("Seek() returned an error: %v", err)
			}

			if _, err := file.Write([]byte("head")); err != nil {
				t.Fatalf("Write() returned an error: %v", err)
			}

			length, err := file.Seek(0, io.SeekEnd)

			if err != nil {
				t.Fatalf("Seek() returned an error: %v", err)
			}

			if length != 12 {
				t.Errorf("length = %d, want 12", length)
			}

			if err := file.Close(); err != nil {
				t.Fatalf("Close() returned an error: %v", err)
			}

			data, err := fs.ReadFile("seek.db")

			if err != nil {
				t.Fatalf("ReadFile() returned an error: %v", err)
			}

			want := append([]byte("head\x00\x00\x00\x00"), []byte("tail")...)

			if !bytes.Equal(data, want) {
				t.Errorf("ReadFile() = %q, want %q", data, want)
			}
		})

		t.Run("Remove", func(t *testing.T) {
			if err := fs.WriteFile("remove.db", []byte("x"), 0600); err != nil {
				t.Fatalf("WriteFile() returned an error: %v", err)
			}

			if err := fs.Remove("remove.db"); err != nil {
				t.Fatalf("Remove() returned an error: %v", err)
			}

			if _, err := fs.Stat("remove.db"); !os.IsNotExist(err) {
				t.Errorf("Stat() error = %v, want not exist", err)
			}
		})

		t.Run("RemoveAll", func(t *testing.T) {
			if err := fs.MkdirAll("tree", 0750); err != nil {
				t.Fatalf("MkdirAll() returned an error: %v", err)
			}

			for _, name := range []string{"tree/a.db", "tree/b.db"} {
				if err := fs.WriteFile(name, []byte(name), 0600); err != nil {
					t.Fatalf("WriteFile() returned an error: %v", err)
				}
			}

			if err := fs.RemoveAll("tree"); err != nil {
				t.Fatalf("RemoveAll() returned an error: %v", err)
			}

			for _, name := range []string{"tree/a.db", "tree/b.db"} {
				if _, err := fs.Stat(name); !os.IsNotExist(err) {
					t.Errorf("Stat(%s) error = %v, want not exist", name, err)
				}
			}
		})
	})
}
