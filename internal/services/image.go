package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
)

const maxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

var (
	ErrImageType    = errors.New("Invalid image file type. Please upload a JPG, PNG, GIF, WEBP.")
	ErrImageSize    = errors.New("Image file too large. Maximum size is 5MB.")
	ErrImageProcess = errors.New("Could not process image file.")
)

// ProcessImageUpload converts an uploaded image into an embedded data
// URL. An absent or empty upload returns "" with no error; the caller
// decides between a placeholder and the existing URL.
func ProcessImageUpload(file multipart.File, header *multipart.FileHeader) (string, error) {
	if file == nil || header == nil || header.Size == 0 {
		return "", nil
	}

	contentType := header.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "", ErrImageType
	}

	if header.Size > maxImageSize {
		return "", ErrImageSize
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return "", ErrImageProcess
	}
	if len(data) > maxImageSize {
		return "", ErrImageSize
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}
