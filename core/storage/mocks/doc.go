// Package mocks contains testify mocks for the storage package.
package mocks
