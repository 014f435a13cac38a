package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matfreire/food-orders-api/utils"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("Failed to parse multipart form: %v", err)
	}

	return req.MultipartForm.File["image"][0]
}

func TestS3ImageService_UploadAndURL(t *testing.T) {
	mockS3 := NewMockS3Service()
	imageService := InitImageService(mockS3)

	key, err := imageService.UploadImage(makeFileHeader(t, "burger.png", []byte("png-bytes")))
	assert.NoError(t, err)
	assert.Equal(t, "menu-images/mock_burger.png", key)
	assert.True(t, mockS3.FileExists(key))

	url, err := imageService.GetImageURL(key)
	assert.NoError(t, err)
	assert.Contains(t, url, key)

	assert.NoError(t, imageService.DeleteImage(key))
	assert.False(t, mockS3.FileExists(key))
}

func TestS3ImageService_RejectsInvalidFiles(t *testing.T) {
	mockS3 := NewMockS3Service()
	imageService := InitImageService(mockS3)

	_, err := imageService.UploadImage(makeFileHeader(t, "burger.jpg", []byte("jpg-bytes")))
	assert.Error(t, err)

	var uploadErr *utils.FileUploadError
	assert.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "INVALID_FILE_FORMAT", uploadErr.Code)
}

func TestS3ImageService_EmptyKeyIsNoop(t *testing.T) {
	mockS3 := NewMockS3Service()
	imageService := InitImageService(mockS3)

	url, err := imageService.GetImageURL("")
	assert.NoError(t, err)
	assert.Equal(t, "", url)

	assert.NoError(t, imageService.DeleteImage(""))
}
