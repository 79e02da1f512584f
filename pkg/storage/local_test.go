package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalDisk(t *testing.T) *localDisk {
	t.Helper()
	t.Setenv("STORAGE_LOCAL_ROOT", t.TempDir())
	t.Setenv("STORAGE_URL", "http://localhost:3001/uploads")
	return newLocalDisk()
}

func TestLocalDiskRoundTrip(t *testing.T) {
	d := newTestLocalDisk(t)

	require.NoError(t, d.Put("crops/a/photo.jpg", []byte("image bytes")))
	assert.True(t, d.Exists("crops/a/photo.jpg"))

	data, err := d.Get("crops/a/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("image bytes"), data)

	size, err := d.Size("crops/a/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, int64(len("image bytes")), size)

	require.NoError(t, d.Delete("crops/a/photo.jpg"))
	assert.False(t, d.Exists("crops/a/photo.jpg"))
	// deleting a missing file is not an error
	assert.NoError(t, d.Delete("crops/a/photo.jpg"))
}

func TestLocalDiskPutStream(t *testing.T) {
	d := newTestLocalDisk(t)

	require.NoError(t, d.PutStream("x.png", bytes.NewReader([]byte("png"))))
	rc, err := d.GetStream("x.png")
	require.NoError(t, err)
	defer rc.Close()

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(rc)
	require.NoError(t, err)
	assert.Equal(t, "png", buf.String())
}

func TestLocalDiskURL(t *testing.T) {
	d := newTestLocalDisk(t)
	assert.Equal(t, "http://localhost:3001/uploads/crops/a.jpg", d.URL("crops/a.jpg"))
	assert.Equal(t, "http://localhost:3001/uploads/crops/a.jpg", d.URL("/crops/a.jpg"))
}

func TestManagerFallsBackToLocal(t *testing.T) {
	t.Setenv("STORAGE_LOCAL_ROOT", t.TempDir())
	t.Setenv("STORAGE_DISK", "s3") // no S3_BUCKET configured
	Connect()

	require.NoError(t, Put("a.txt", []byte("hi")))
	assert.True(t, Exists("a.txt"))
}
