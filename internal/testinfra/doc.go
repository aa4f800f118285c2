// Package testinfra starts a disposable Postgres for integration tests and
// loads the news schema into it.
//
// Files in this package only build with the integration tag:
//
//	go test -tags integration ./...
package testinfra
