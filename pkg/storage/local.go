package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cropconnect/api/config"
)

// localDisk is the local-filesystem driver.
type localDisk struct {
	root    string // absolute root directory
	baseURL string // public URL prefix for URL()
}

func newLocalDisk() *localDisk {
	root := config.StorageLocalRoot()
	if !filepath.IsAbs(root) {
		cwd, _ := os.Getwd()
		root = filepath.Join(cwd, root)
	}
	return &localDisk{
		root:    root,
		baseURL: strings.TrimRight(config.StorageURL(), "/"),
	}
}

func (d *localDisk) abs(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(path))
}

func (d *localDisk) Put(path string, content []byte) error {
	return d.PutStream(path, bytes.NewReader(content))
}

func (d *localDisk) PutStream(path string, r io.Reader) error {
	full := d.abs(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("storage/local: mkdir: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("storage/local: create %s: %w", path, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("storage/local: write %s: %w", path, err)
	}
	return nil
}

func (d *localDisk) Get(path string) ([]byte, error) {
	data, err := os.ReadFile(d.abs(path))
	if err != nil {
		return nil, fmt.Errorf("storage/local: get %s: %w", path, err)
	}
	return data, nil
}

func (d *localDisk) GetStream(path string) (io.ReadCloser, error) {
	f, err := os.Open(d.abs(path))
	if err != nil {
		return nil, fmt.Errorf("storage/local: open %s: %w", path, err)
	}
	return f, nil
}

func (d *localDisk) Exists(path string) bool {
	_, err := os.Stat(d.abs(path))
	return err == nil
}

func (d *localDisk) Size(path string) (int64, error) {
	info, err := os.Stat(d.abs(path))
	if err != nil {
		return 0, fmt.Errorf("storage/local: size %s: %w", path, err)
	}
	return info.Size(), nil
}

func (d *localDisk) Delete(path string) error {
	err := os.Remove(d.abs(path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage/local: delete %s: %w", path, err)
	}
	return nil
}

func (d *localDisk) URL(path string) string {
	return d.baseURL + "/" + strings.TrimLeft(filepath.ToSlash(path), "/")
}

// Root exposes the absolute root directory so the router can serve the
// uploads directory statically in local mode.
func (d *localDisk) Root() string { return d.root }
