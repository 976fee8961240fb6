package store

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/tradingpost/schema"
)

const fileMode os.FileMode = 0o600

// FileStore persists the credential document to a JSON file. The file is read on every
// Load, so a token refreshed by another invocation is picked up without restarting.
type FileStore struct {
	path string
	URL  string
	fs   afs.Service
}

type FileStoreOption func(*FileStore)

// WithFileSystem sets the afs service used for I/O
func WithFileSystem(fs afs.Service) FileStoreOption {
	return func(f *FileStore) {
		f.fs = fs
	}
}

// NewFileStore creates a Store backed by the file at path
func NewFileStore(path string, options ...FileStoreOption) *FileStore {
	URL := path
	if abs, err := filepath.Abs(path); err == nil {
		URL = abs
	}
	ret := &FileStore{path: path, URL: URL, fs: afs.New()}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Path returns the configured credential file path
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Load(ctx context.Context) (*schema.Document, error) {
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return nil, schema.NewConfigError(f.path, "could not access file at", err)
	}
	document := &schema.Document{}
	if err = json.Unmarshal(data, document); err != nil {
		return nil, schema.NewConfigError(f.path, "could not parse JSON in", err)
	}
	if err = document.Validate(); err != nil {
		return nil, schema.NewConfigError(f.path, "invalid credentials file", err)
	}
	return document, nil
}

func (f *FileStore) Save(ctx context.Context, document *schema.Document) error {
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return schema.NewPersistenceError(f.path, err)
	}
	data = append(data, '\n')
	if err = f.fs.Upload(ctx, f.URL, fileMode, bytes.NewReader(data)); err != nil {
		return schema.NewPersistenceError(f.path, err)
	}
	return nil
}
