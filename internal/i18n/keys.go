// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Orders
	KeyOrderCreated      = "order.created"
	KeyOrderCreateFailed = "order.create_failed"
	KeyOrderFetchFailed  = "order.fetch_failed"

	// Catalog
	KeyProductNotFound    = "product.not_found"
	KeyDecorationNotFound = "decoration.not_found"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileMissing       = "file.missing"

	// Rate limiting
	KeyRateLimited = "rate.limited"
)
