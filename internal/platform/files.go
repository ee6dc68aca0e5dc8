package platform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/ytget/character-browser/internal/model"
)

// MaxImageSize is the largest image accepted by the creation form
const MaxImageSize = 5 << 20

// Image picking errors
var (
	ErrNotImage      = errors.New("file is not an image")
	ErrImageTooLarge = errors.New("image is too large")
)

// ReadImageFile loads the file at path and checks that it is an image
func ReadImageFile(path string) (*model.ImageFile, error) {
	if path == "" {
		return nil, fmt.Errorf("file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	return ReadImage(filepath.Base(path), file)
}

// ReadImage reads an image from r, enforcing MaxImageSize and an image/* content type
func ReadImage(name string, r io.Reader) (*model.ImageFile, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrImageTooLarge, MaxImageSize)
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, fmt.Errorf("%w: detected %s", ErrNotImage, detected.String())
	}

	return &model.ImageFile{Name: name, Data: data}, nil
}
