package file

// Page numbers are zero based: page 0 starts at offset 0 of the file.

// Calculate the offset of the page within the file.
func PageOffset(pageNumber, pageSize int64) int64 {
	return pageNumber * pageSize
}

// Calculate how many whole pages fit in a file of the given length.
func PageCount(length, pageSize int64) int64 {
	return length / pageSize
}

// Calculate how many bytes trail the last whole page of a file.
func PartialPageBytes(length, pageSize int64) int64 {
	return length % pageSize
}

// Calculate how many pages hold any data, counting a trailing partial page.
func PagesWithData(length, pageSize int64) int64 {
	count := PageCount(length, pageSize)

	if PartialPageBytes(length, pageSize) > 0 {
		count++
	}

	return count
}
