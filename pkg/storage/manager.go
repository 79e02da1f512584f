package storage

import (
	"fmt"
	"io"
	"sync"

	"github.com/cropconnect/api/config"
	"github.com/cropconnect/api/pkg/logger"
)

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the storage manager. Call once at application startup.
// The local disk is always available; the s3 disk is booted only when
// S3_BUCKET is configured.
func Connect() {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = config.StorageDisk()
	disks["local"] = newLocalDisk()

	if config.StorageS3Bucket() != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}

	if _, ok := disks[defaultDisk]; !ok {
		logger.Warn("storage: default disk unavailable, falling back to local", "disk", defaultDisk)
		defaultDisk = "local"
	}
}

// Use returns the named disk ("local" or "s3").
func Use(name string) Disk {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return d
}

// RegisterDisk plugs in a custom Disk implementation (used by tests).
func RegisterDisk(name string, d Disk) {
	managerMu.Lock()
	disks[name] = d
	managerMu.Unlock()
}

// SetDefault switches the default disk (used by tests).
func SetDefault(name string) {
	managerMu.Lock()
	defaultDisk = name
	managerMu.Unlock()
}

func defaultD() Disk {
	managerMu.RLock()
	name := defaultDisk
	managerMu.RUnlock()
	return Use(name)
}

// Put writes content to path on the default disk.
func Put(path string, content []byte) error { return defaultD().Put(path, content) }

// PutStream writes from r to path on the default disk.
func PutStream(path string, r io.Reader) error { return defaultD().PutStream(path, r) }

// Get returns file content from the default disk.
func Get(path string) ([]byte, error) { return defaultD().Get(path) }

// Exists reports whether path exists on the default disk.
func Exists(path string) bool { return defaultD().Exists(path) }

// Delete removes path from the default disk.
func Delete(path string) error { return defaultD().Delete(path) }

// URL returns the public URL for path on the default disk.
func URL(path string) string { return defaultD().URL(path) }

// LocalRoot returns the absolute root of the local disk so the router can
// serve it statically. Empty when the manager has not been connected or a
// custom disk replaced the local driver.
func LocalRoot() string {
	managerMu.RLock()
	d, ok := disks["local"]
	managerMu.RUnlock()
	if !ok {
		return ""
	}
	ld, ok := d.(*localDisk)
	if !ok {
		return ""
	}
	return ld.Root()
}
