package i18n

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
)

// TranslationAdapter loads message catalogs keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map. It is the adapter of
// choice for catalogs compiled into the binary, such as EnglishMessages.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface.
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads translations from a single catalog file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a new FileAdapter instance.
// Returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface.
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil {
		return nil, fmt.Errorf("parser is nil")
	}
	if a.path == "" {
		return nil, fmt.Errorf("file path is empty")
	}

	content, err := readFileCtx(ctx, a.path)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("translation file '%s' is empty", a.path)
	}

	translations, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	if translations == nil {
		return nil, fmt.Errorf("parser returned nil translations for file '%s'", a.path)
	}

	return translations, nil
}

// DirectoryAdapter loads and merges every supported catalog file in a
// directory. A single broken file fails the whole load so that deployments
// cannot silently lose part of their catalog.
type DirectoryAdapter struct {
	parser Parser
	path   string
}

// NewDirectoryAdapter creates a new DirectoryAdapter instance.
// Returns nil if parser is nil or path is empty.
func NewDirectoryAdapter(parser Parser, path string) *DirectoryAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &DirectoryAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface.
func (a *DirectoryAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil {
		return nil, fmt.Errorf("parser is nil")
	}
	if a.path == "" {
		return nil, fmt.Errorf("directory path is empty")
	}

	fileInfo, err := os.Stat(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path '%s' is not a directory", a.path)
	}

	entries, err := readDirCtx(ctx, a.path)
	if err != nil {
		return nil, err
	}

	allTranslations := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		if len(ext) > 0 && ext[0] == '.' {
			ext = ext[1:]
		}
		if !a.parser.SupportsFileExtension(ext) {
			continue
		}

		if ctx.Err() != nil {
			return nil, errors.Join(ErrContextCancelledDuringProcessing, ctx.Err())
		}

		filePath := filepath.Join(a.path, entry.Name())
		if err := a.mergeFile(ctx, filePath, allTranslations); err != nil {
			return nil, fmt.Errorf("processing file '%s': %w", filePath, err)
		}
	}

	if len(allTranslations) == 0 {
		return nil, fmt.Errorf("no valid translation files found in directory '%s'", a.path)
	}

	return allTranslations, nil
}

// mergeFile reads and parses a single catalog file, merging its translations
// into the accumulated result. Later files win on key collisions.
func (a *DirectoryAdapter) mergeFile(ctx context.Context, filePath string, allTranslations map[string]map[string]any) error {
	content, err := readFileCtx(ctx, filePath)
	if err != nil {
		return err
	}
	if len(content) == 0 {
		return fmt.Errorf("translation file is empty")
	}

	fileTranslations, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(ErrFailedToParseFile, err)
	}
	if fileTranslations == nil {
		return fmt.Errorf("parser returned nil translations")
	}

	for lang, translations := range fileTranslations {
		if allTranslations[lang] == nil {
			allTranslations[lang] = make(map[string]any)
		}
		maps.Copy(allTranslations[lang], translations)
	}

	return nil
}

// readFileCtx reads a file in a goroutine so the caller can be released when
// the context is cancelled mid-read.
func readFileCtx(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = os.ReadFile(path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	return content, nil
}

// readDirCtx lists a directory in a goroutine, honoring context cancellation.
func readDirCtx(ctx context.Context, path string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
	}

	done := make(chan struct{})
	var entries []os.DirEntry
	var readErr error

	go func() {
		entries, readErr = os.ReadDir(path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingDirectoryCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, readErr)
	}
	return entries, nil
}
