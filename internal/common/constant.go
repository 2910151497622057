// Package common contains constants and helpers shared by the client
// packages.
package common

// AccessTokenKey is the storage key under which the bearer credential is
// persisted between runs.
const AccessTokenKey = "access_token"

// MaxUploadSize is the largest file accepted for course images and
// purchase evidence (5 MiB).
const MaxUploadSize = 5 * 1024 * 1024
