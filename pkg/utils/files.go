// Package utils provides helpers shared by the command line
// runner and the loaders of the emulator.
package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// ErrEmptyArchive is returned when an archive holds no file.
var ErrEmptyArchive = errors.New("empty archive")

// LoadFile loads the given file and performs decompression if
// necessary. The compression is asserted from the file extension
// (.gz, .zip, .7z); any other file is returned as is. Archives
// are expected to hold the image as their first file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var decoder io.ReadCloser
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".zip":
		var r *zip.Reader
		if r, err = zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
			break
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("%s: %w", filename, ErrEmptyArchive)
		}
		decoder, err = r.File[0].Open()
	case ".7z":
		var r *sevenzip.Reader
		if r, err = sevenzip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
			break
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("%s: %w", filename, ErrEmptyArchive)
		}
		decoder, err = r.File[0].Open()
	default:
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	defer decoder.Close()

	// read the decompressed data into a byte slice
	if data, err = io.ReadAll(decoder); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}
