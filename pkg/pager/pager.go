package pager

import (
	"errors"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	internalStorage "github.com/litebase/pager/internal/storage"
	"github.com/litebase/pager/pkg/file"
	"github.com/litebase/pager/pkg/storage"
)

/*
A Pager maps page numbers onto fixed size ranges of a single backing file.
Pages are read lazily into a fixed table of slots and stay there until the
pager is closed. Callers mutate the returned pages in place and write them
back with Flush; nothing is written implicitly.

The backing file has no header: page n occupies bytes
[n*PageSize, n*PageSize+PageSize).

A Pager is not safe for concurrent use.
*/

const (
	PageSize = 4096
	MaxPages = 100
)

// noPage marks errors that do not refer to a single page.
const noPage = -1

type Page [PageSize]byte

type Pager struct {
	closed     bool
	dirty      [MaxPages]bool
	file       internalStorage.File
	fileLength int64
	pages      [MaxPages]*Page
	path       string
}

// Open opens or creates the backing file at path. The file is created with
// owner only read and write permissions.
func Open(fs *storage.FileSystem, path string) (*Pager, error) {
	createdDirectory := false

tryOpen:
	f, err := fs.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)

	if err != nil {
		if os.IsNotExist(err) && !createdDirectory {
			err = fs.MkdirAll(filepath.Dir(path), 0750)

			if err != nil {
				log.Println("Error creating pager directory", err)
				return nil, newError("open", path, noPage, ErrOpenFailed, err)
			}

			createdDirectory = true

			goto tryOpen
		}

		log.Println("Error opening pager file", err)

		return nil, newError("open", path, noPage, ErrOpenFailed, err)
	}

	fileLength, err := f.Seek(0, io.SeekEnd)

	if err != nil {
		log.Println("Error seeking to end of pager file", err)
		f.Close()

		return nil, newError("open", path, noPage, ErrSeekFailed, err)
	}

	p := &Pager{
		file:       f,
		fileLength: fileLength,
		path:       path,
	}

	if p.HasPartialPage() {
		slog.Warn(
			"Pager file has a trailing partial page",
			"path", path,
			"length", fileLength,
			"partialBytes", p.PartialPageBytes(),
		)
	}

	return p, nil
}

// Close closes the backing file. Pages are not flushed; any page still marked
// dirty is reported and its changes are lost.
func (p *Pager) Close() error {
	if p.closed {
		return newError("close", p.path, noPage, ErrPagerClosed, nil)
	}

	if dirtyPages := p.DirtyPages(); len(dirtyPages) > 0 {
		slog.Warn("Closing pager with unflushed pages", "path", p.path, "pages", dirtyPages)
	}

	p.closed = true

	if err := p.file.Close(); err != nil {
		log.Println("Error closing pager file", err)
		return newError("close", p.path, noPage, ErrCloseFailed, err)
	}

	return nil
}

// DirtyPages returns the numbers of every page marked dirty, in ascending order.
func (p *Pager) DirtyPages() []uint32 {
	dirtyPages := []uint32{}

	for pageNumber, dirty := range p.dirty {
		if dirty {
			dirtyPages = append(dirtyPages, uint32(pageNumber))
		}
	}

	return dirtyPages
}

// FileLength is the length of the backing file in bytes when it was opened.
func (p *Pager) FileLength() int64 {
	return p.fileLength
}

// Flush writes the first size bytes of a loaded page to its offset in the
// backing file. The page stays loaded.
func (p *Pager) Flush(pageNumber uint32, size int) error {
	if err := p.check("flush", pageNumber); err != nil {
		return err
	}

	if size < 0 || size > PageSize {
		return newError("flush", p.path, int64(pageNumber), ErrInvalidFlushSize, nil)
	}

	page := p.pages[pageNumber]

	if page == nil {
		return newError("flush", p.path, int64(pageNumber), ErrFlushOfUnloadedPage, nil)
	}

	_, err := p.file.Seek(file.PageOffset(int64(pageNumber), PageSize), io.SeekStart)

	if err != nil {
		log.Println("Error seeking", err)
		return newError("flush", p.path, int64(pageNumber), ErrSeekFailed, err)
	}

	n, err := p.file.Write(page[:size])

	if err == nil && n < size {
		err = io.ErrShortWrite
	}

	if err != nil {
		log.Println("Error writing", err)
		return newError("flush", p.path, int64(pageNumber), ErrWriteFailed, err)
	}

	p.dirty[pageNumber] = false

	slog.Debug("Flushed page", "path", p.path, "page", pageNumber, "bytes", size)

	return nil
}

// FlushAll writes every dirty page in full, stopping at the first failure.
func (p *Pager) FlushAll() error {
	if p.closed {
		return newError("flush", p.path, noPage, ErrPagerClosed, nil)
	}

	for _, pageNumber := range p.DirtyPages() {
		if err := p.Flush(pageNumber, PageSize); err != nil {
			return err
		}
	}

	return nil
}

// HasPartialPage reports whether the backing file ended in the middle of a
// page when it was opened.
func (p *Pager) HasPartialPage() bool {
	return p.PartialPageBytes() > 0
}

// IsDirty reports whether the page was marked dirty and not flushed since.
func (p *Pager) IsDirty(pageNumber uint32) bool {
	return pageNumber < MaxPages && p.dirty[pageNumber]
}

// Load returns the page with the given number, reading it from the backing
// file on first access. Pages past the end of the file start zeroed. The
// returned page is owned by the pager and remains valid until Close.
func (p *Pager) Load(pageNumber uint32) (*Page, error) {
	if err := p.check("load", pageNumber); err != nil {
		return nil, err
	}

	if page := p.pages[pageNumber]; page != nil {
		return page, nil
	}

	page := &Page{}

	// A trailing partial page is read as far as it goes and zero padded.
	pagesWithData := file.PagesWithData(p.fileLength, PageSize)

	if int64(pageNumber) < pagesWithData {
		_, err := p.file.Seek(file.PageOffset(int64(pageNumber), PageSize), io.SeekStart)

		if err != nil {
			log.Println("Error seeking", err)
			return nil, newError("load", p.path, int64(pageNumber), ErrSeekFailed, err)
		}

		n, err := io.ReadFull(p.file, page[:])

		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			log.Println("Error reading file", err)
			return nil, newError("load", p.path, int64(pageNumber), ErrReadFailed, err)
		}

		slog.Debug("Loaded page from file", "path", p.path, "page", pageNumber, "bytes", n)
	}

	p.pages[pageNumber] = page

	return page, nil
}

// Loaded reports whether the page occupies a slot.
func (p *Pager) Loaded(pageNumber uint32) bool {
	return pageNumber < MaxPages && p.pages[pageNumber] != nil
}

// MarkDirty records that a loaded page was modified and needs flushing.
func (p *Pager) MarkDirty(pageNumber uint32) error {
	if err := p.check("mark dirty", pageNumber); err != nil {
		return err
	}

	if p.pages[pageNumber] == nil {
		return newError("mark dirty", p.path, int64(pageNumber), ErrPageNotLoaded, nil)
	}

	p.dirty[pageNumber] = true

	return nil
}

// PageCount is the number of whole pages in the backing file when it was
// opened. A trailing partial page is not counted.
func (p *Pager) PageCount() uint32 {
	return uint32(file.PageCount(p.fileLength, PageSize))
}

// PartialPageBytes is the number of bytes after the last whole page.
func (p *Pager) PartialPageBytes() int64 {
	return file.PartialPageBytes(p.fileLength, PageSize)
}

// Path is the path the pager was opened with.
func (p *Pager) Path() string {
	return p.path
}

// Sync asks the backing file to persist flushed pages.
func (p *Pager) Sync() error {
	if p.closed {
		return newError("sync", p.path, noPage, ErrPagerClosed, nil)
	}

	if err := p.file.Sync(); err != nil {
		log.Println("Error syncing pager file", err)
		return newError("sync", p.path, noPage, ErrSyncFailed, err)
	}

	return nil
}

func (p *Pager) check(op string, pageNumber uint32) error {
	if p.closed {
		return newError(op, p.path, int64(pageNumber), ErrPagerClosed, nil)
	}

	if pageNumber >= MaxPages {
		return newError(op, p.path, int64(pageNumber), ErrPageIndexOutOfRange, nil)
	}

	return nil
}
