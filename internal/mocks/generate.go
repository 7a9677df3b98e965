// Package mocks provides generated mock implementations of the gateway
// ports for testing the application services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the port interfaces. Hand-written doubles for the auth ports live in
// the auth subpackage.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mock for DocumentAPI from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=document_api_mock.go github.com/dms-platform/dms-cli/internal/ports DocumentAPI

// Generate mock for StorageAPI from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=storage_api_mock.go github.com/dms-platform/dms-cli/internal/ports StorageAPI

// Generate mock for DirectoryAPI from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=directory_api_mock.go github.com/dms-platform/dms-cli/internal/ports DirectoryAPI
