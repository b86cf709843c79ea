package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotPDF is returned when the uploaded file does not carry a .pdf
// extension. Content is not sniffed; a mismatched file fails later at
// text extraction instead.
var ErrNotPDF = errors.New("uploaded file is not a PDF")

// StorageService materializes an uploaded resume to a temporary file
// for the duration of text extraction.
type StorageService interface {
	SaveTemp(file *multipart.FileHeader) (string, error)
	Remove(path string) error
	EnsureTempDir() error
}

type storageService struct {
	tempDir string
}

func NewStorageService(tempDir string) StorageService {
	return &storageService{tempDir: tempDir}
}

func (s *storageService) EnsureTempDir() error {
	if err := os.MkdirAll(s.tempDir, 0755); err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	return nil
}

func (s *storageService) SaveTemp(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return "", ErrNotPDF
	}

	path := filepath.Join(s.tempDir, fmt.Sprintf("resume_%s%s", uuid.New().String(), ext))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}

	return path, nil
}

func (s *storageService) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove temp file: %w", err)
	}
	return nil
}
