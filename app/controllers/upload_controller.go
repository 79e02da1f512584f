package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cropconnect/api/pkg/response"
	"github.com/cropconnect/api/pkg/storage"
)

// uploadMaxBytes caps a single image upload at 10 MB.
const uploadMaxBytes = 10 << 20

var allowedUploadExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type UploadController struct{}

func NewUpload() *UploadController { return &UploadController{} }

type uploadPayload struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// Store handles POST /upload. Expects a multipart form with a "file"
// part; the image goes to the configured storage disk and the public URL
// comes back.
func (c *UploadController) Store(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, uploadMaxBytes)
	if err := r.ParseMultipartForm(uploadMaxBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExts[ext] {
		response.Error(w, http.StatusBadRequest, "Unsupported file type")
		return
	}

	name := fmt.Sprintf("crops/%d-%s%s", time.Now().Unix(), uuid.NewString()[:8], ext)
	if err := storage.PutStream(name, file); err != nil {
		respondErr(w, r, err, "")
		return
	}

	response.Created(w, uploadPayload{
		URL:      storage.URL(name),
		Filename: name,
		Size:     header.Size,
	})
}
