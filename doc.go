// Project Structure Overview
/*
storefront-backend/
├── cmd/
│   └── server/
│       └── main.go
├── data/
│   ├── products.json
│   └── decorations.json
├── internal/
│   ├── config/
│   │   ├── config.go
│   │   └── database.go
│   ├── models/
│   │   ├── common.go
│   │   ├── order.go
│   │   ├── order_record.go
│   │   └── product.go
│   ├── repositories/
│   │   ├── order_repository.go
│   │   ├── file_store.go
│   │   └── gorm_store.go
│   ├── services/
│   │   ├── catalog_service.go
│   │   ├── errors.go
│   │   ├── notification_service.go
│   │   ├── order_service.go
│   │   ├── order_validator.go
│   │   ├── pricing.go
│   │   └── storage_service.go
│   ├── handlers/
│   │   ├── catalog.go
│   │   ├── order.go
│   │   └── upload.go
│   ├── middleware/
│   │   ├── cors.go
│   │   ├── i18n.go
│   │   ├── logging.go
│   │   └── rate_limit.go
│   ├── database/
│   │   └── connection.go
│   ├── i18n/
│   │   ├── i18n.go
│   │   ├── keys.go
│   │   └── locales/
│   ├── utils/
│   │   ├── crypto.go
│   │   ├── response.go
│   │   └── validator.go
│   └── router/
│       └── router.go
└── go.mod
*/

// Package storefront is the backend of a print-on-demand storefront: a
// read-only product and decoration catalog, bulk-priced order intake, and
// custom design uploads. The server lives in cmd/server.
package storefront
