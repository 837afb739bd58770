package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, contentType string, data []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="imageFile"; filename="test.img"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	file, fileHeader, err := req.FormFile("imageFile")
	require.NoError(t, err)
	return file, fileHeader
}

func TestProcessImageUploadBuildsDataURL(t *testing.T) {
	file, header := uploadRequest(t, "image/png", []byte("fake png bytes"))
	defer file.Close()

	url, err := ProcessImageUpload(file, header)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
}

func TestProcessImageUploadRejectsUnknownType(t *testing.T) {
	file, header := uploadRequest(t, "image/tiff", []byte("fake tiff bytes"))
	defer file.Close()

	_, err := ProcessImageUpload(file, header)
	assert.ErrorIs(t, err, ErrImageType)
}

func TestProcessImageUploadRejectsOversizedFile(t *testing.T) {
	file, header := uploadRequest(t, "image/jpeg", bytes.Repeat([]byte("x"), maxImageSize+1))
	defer file.Close()

	_, err := ProcessImageUpload(file, header)
	assert.ErrorIs(t, err, ErrImageSize)
}

func TestProcessImageUploadNoFile(t *testing.T) {
	url, err := ProcessImageUpload(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, url)
}
