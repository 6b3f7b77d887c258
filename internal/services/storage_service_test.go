package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/storefront-backend/internal/config"
)

const mib = 1 << 20

// Smallest valid PNG header, enough for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type mockS3 struct {
	s3iface.S3API
	mock.Mock
}

func (m *mockS3) PutObject(input *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
	args := m.Called(input)
	return &s3.PutObjectOutput{}, args.Error(0)
}

func localStorage(t *testing.T) (*StorageService, UploadOptions) {
	t.Helper()
	cfg := &config.Config{
		Upload: config.UploadConfig{
			Dir:        filepath.Join(t.TempDir(), "customDesigns"),
			PublicPath: "/customDesigns",
			MaxSize:    5 * mib,
		},
	}
	svc, err := NewStorageService(cfg)
	require.NoError(t, err)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc, svc.DesignUploadOptions()
}

func TestStorageService_StoresLocally(t *testing.T) {
	svc, opts := localStorage(t)
	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 4*mib)...)

	result, err := svc.Store(bytes.NewReader(content), "Logo.PNG", int64(len(content)), "image/png", opts)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^custom_1700000000000_[0-9a-z]{13}\.PNG$`), result.Filename)
	assert.Equal(t, "/customDesigns/"+result.Filename, result.Filepath)
	assert.Equal(t, int64(len(content)), result.Size)
	assert.Len(t, result.Checksum, 64)

	written, err := os.ReadFile(filepath.Join(opts.Dir, result.Filename))
	require.NoError(t, err)
	assert.Equal(t, len(content), len(written))
}

func TestStorageService_KeepsExtension(t *testing.T) {
	svc, opts := localStorage(t)

	tests := map[string]string{
		"logo.Png":      ".Png",
		"art.tar.svg":   ".svg",
		"noextension":   "",
		"dir/photo.JPG": ".JPG",
	}

	for name, ext := range tests {
		result, err := svc.Store(bytes.NewReader(pngHeader), name, int64(len(pngHeader)), "image/png", opts)
		require.NoError(t, err, name)
		assert.Regexp(t, regexp.MustCompile(`^custom_1700000000000_[0-9a-z]{13}`+regexp.QuoteMeta(ext)+`$`), result.Filename, name)
	}
}

func TestStorageService_RejectsOversizedFile(t *testing.T) {
	svc, opts := localStorage(t)
	content := bytes.Repeat([]byte{1}, 6*mib)

	_, err := svc.Store(bytes.NewReader(content), "big.png", int64(len(content)), "image/png", opts)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "size", vErr.Field)

	_, statErr := os.Stat(opts.Dir)
	assert.True(t, os.IsNotExist(statErr), "nothing is written for rejected uploads")
}

func TestStorageService_RejectsUnderstatedSize(t *testing.T) {
	svc, opts := localStorage(t)
	content := bytes.Repeat([]byte{1}, 6*mib)

	_, err := svc.Store(bytes.NewReader(content), "big.png", 10, "image/png", opts)
	assert.True(t, IsValidation(err))
}

func TestStorageService_RejectsDisallowedType(t *testing.T) {
	svc, opts := localStorage(t)

	_, err := svc.Store(bytes.NewReader([]byte("hello")), "notes.txt", 5, "text/plain", opts)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "type", vErr.Field)
}

func TestStorageService_SniffsUndeclaredType(t *testing.T) {
	svc, opts := localStorage(t)

	result, err := svc.Store(bytes.NewReader(pngHeader), "logo", int64(len(pngHeader)), "application/octet-stream", opts)
	require.NoError(t, err)
	assert.Equal(t, "image/png", result.MimeType)
}

func TestStorageService_UniqueNames(t *testing.T) {
	svc, opts := localStorage(t)

	first, err := svc.Store(bytes.NewReader(pngHeader), "a.png", int64(len(pngHeader)), "image/png", opts)
	require.NoError(t, err)
	second, err := svc.Store(bytes.NewReader(pngHeader), "a.png", int64(len(pngHeader)), "image/png", opts)
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)
}

func TestStorageService_UploadFileFromMultipart(t *testing.T) {
	svc, opts := localStorage(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "design.png")
	require.NoError(t, err)
	_, err = part.Write(pngHeader)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(opts.MaxSize))

	header := req.MultipartForm.File["file"][0]
	result, err := svc.UploadFile(header, opts)
	require.NoError(t, err)
	assert.Equal(t, "image/png", result.MimeType)
}

func TestStorageService_S3(t *testing.T) {
	client := new(mockS3)
	client.On("PutObject", mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.StringValue(in.Bucket) == "designs" &&
			regexp.MustCompile(`^customDesigns/custom_\d+_[0-9a-z]{13}\.png$`).MatchString(aws.StringValue(in.Key)) &&
			aws.StringValue(in.ContentType) == "image/png"
	})).Return(nil)

	cfg := &config.Config{
		Upload: config.UploadConfig{PublicPath: "/customDesigns", MaxSize: 5 * mib},
		AWS:    config.AWSConfig{Region: "eu-west-1", S3Bucket: "designs"},
	}
	svc := NewStorageServiceWithS3(cfg, client)
	assert.True(t, svc.UsesS3())

	result, err := svc.Store(bytes.NewReader(pngHeader), "x.png", int64(len(pngHeader)), "image/png", svc.DesignUploadOptions())
	require.NoError(t, err)
	assert.Equal(t, "https://designs.s3.eu-west-1.amazonaws.com/customDesigns/"+result.Filename, result.Filepath)

	client.AssertExpectations(t)
}
