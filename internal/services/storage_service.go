// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront-backend/internal/config"
	"github.com/javajoker/storefront-backend/internal/utils"
)

// AllowedDesignTypes are the MIME types accepted for custom designs.
var AllowedDesignTypes = []string{
	"image/jpeg",
	"image/png",
	"image/svg+xml",
	"application/postscript",
	"image/vnd.adobe.photoshop",
}

const customDesignPrefix = "custom"

type StorageService struct {
	s3Client s3iface.S3API
	config   *config.Config
	now      func() time.Time
}

type UploadResult struct {
	Filename string `json:"filename"`
	Filepath string `json:"filepath"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
	Checksum string `json:"checksum"`
}

type UploadOptions struct {
	Dir          string // local directory, created on demand
	PublicPath   string // URL prefix the directory is served under
	MaxSize      int64  // in bytes
	AllowedTypes []string
	Prefix       string
}

func NewStorageService(config *config.Config) (*StorageService, error) {
	if !config.UseS3() {
		// Local public directory
		return &StorageService{config: config, now: time.Now}, nil
	}

	// Create AWS session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   config,
		now:      time.Now,
	}, nil
}

// NewStorageServiceWithS3 wires an explicit S3 client.
func NewStorageServiceWithS3(config *config.Config, client s3iface.S3API) *StorageService {
	return &StorageService{s3Client: client, config: config, now: time.Now}
}

func (s *StorageService) UsesS3() bool {
	return s.s3Client != nil
}

func (s *StorageService) DesignUploadOptions() UploadOptions {
	return UploadOptions{
		Dir:          s.config.Upload.Dir,
		PublicPath:   s.config.Upload.PublicPath,
		MaxSize:      s.config.Upload.MaxSize,
		AllowedTypes: AllowedDesignTypes,
		Prefix:       customDesignPrefix,
	}
}

func (s *StorageService) UploadFile(header *multipart.FileHeader, options UploadOptions) (*UploadResult, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	return s.Store(file, header.Filename, header.Size, header.Header.Get("Content-Type"), options)
}

// Store validates and saves one file under a freshly generated name.
// Size and type failures are ValidationErrors; anything else is a write
// failure.
func (s *StorageService) Store(r io.Reader, originalName string, size int64, contentType string, options UploadOptions) (*UploadResult, error) {
	// Validate declared size
	if options.MaxSize > 0 && size > options.MaxSize {
		return nil, newValidationError("size", fmt.Sprintf(
			"file size %d bytes exceeds maximum allowed size %d bytes", size, options.MaxSize))
	}

	// Read file content, never more than one byte past the limit
	reader := r
	if options.MaxSize > 0 {
		reader = io.LimitReader(r, options.MaxSize+1)
	}
	fileBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if options.MaxSize > 0 && int64(len(fileBytes)) > options.MaxSize {
		return nil, newValidationError("size", fmt.Sprintf(
			"file size exceeds maximum allowed size %d bytes", options.MaxSize))
	}

	mimeType := resolveContentType(contentType, fileBytes)
	if len(options.AllowedTypes) > 0 && !containsType(options.AllowedTypes, mimeType) {
		return nil, newValidationError("type", fmt.Sprintf("file type %s is not allowed", mimeType))
	}

	filename, err := s.generateFileName(originalName, options.Prefix)
	if err != nil {
		return nil, err
	}

	var result *UploadResult
	if s.s3Client != nil {
		result, err = s.uploadToS3(fileBytes, filename, mimeType, options)
	} else {
		result, err = s.uploadToLocal(fileBytes, filename, options)
	}
	if err != nil {
		return nil, err
	}

	result.Size = int64(len(fileBytes))
	result.MimeType = mimeType
	result.Checksum = utils.HashBytes(fileBytes)

	logrus.WithFields(logrus.Fields{
		"filename":  result.Filename,
		"size":      result.Size,
		"mime_type": result.MimeType,
	}).Info("Design file stored")

	return result, nil
}

func (s *StorageService) uploadToS3(fileBytes []byte, filename, contentType string, options UploadOptions) (*UploadResult, error) {
	key := path.Join(strings.Trim(options.PublicPath, "/"), filename)

	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ACL:           aws.String("public-read"),
	}

	if _, err := s.s3Client.PutObject(params); err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		Filename: filename,
		Filepath: s.getS3URL(key),
	}, nil
}

func (s *StorageService) uploadToLocal(fileBytes []byte, filename string, options UploadOptions) (*UploadResult, error) {
	if err := os.MkdirAll(options.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	target := filepath.Join(options.Dir, filename)
	if err := os.WriteFile(target, fileBytes, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		Filename: filename,
		Filepath: path.Join(options.PublicPath, filename),
	}, nil
}

// generateFileName builds <prefix>_<unix millis>_<13 random chars><ext>.
func (s *StorageService) generateFileName(originalName, prefix string) (string, error) {
	random, err := utils.GenerateRandomSuffix(13)
	if err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}

	ext := filepath.Ext(filepath.Base(originalName))
	if prefix == "" {
		prefix = "upload"
	}

	return fmt.Sprintf("%s_%d_%s%s", prefix, s.now().UnixMilli(), random, ext), nil
}

func (s *StorageService) getS3URL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.config.AWS.CloudFrontURL, "/"), key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}

// resolveContentType trusts the declared type and sniffs the content only
// when the client sent nothing useful.
func resolveContentType(declared string, content []byte) string {
	if declared != "" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
			declared = mediaType
		}
	}
	declared = strings.ToLower(strings.TrimSpace(declared))

	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	detected := mimetype.Detect(content).String()
	if mediaType, _, err := mime.ParseMediaType(detected); err == nil {
		return mediaType
	}
	return detected
}

func containsType(allowed []string, mimeType string) bool {
	for _, t := range allowed {
		if t == mimeType {
			return true
		}
	}
	return false
}
