package upload

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const maxImageSize = 10 << 20 // 10 MB

var imageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".avif": "image/avif",
}

// ValidateImage checks size and extension of an uploaded file and returns
// the content type to store it under.
func ValidateImage(fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxImageSize {
		return "", fmt.Errorf("%s exceeds the 10MB size limit", fh.Filename)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	ct, ok := imageExtensions[ext]
	if !ok {
		return "", fmt.Errorf("%s has an unsupported type, allowed: jpg, jpeg, png, webp, avif", fh.Filename)
	}
	return ct, nil
}
