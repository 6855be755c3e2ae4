// Package common holds helpers shared by several services.
//
// It provides the webhook client used to deliver chat messages: a thin
// net/http wrapper with an optional per-call timeout that reports the status
// code and raw body of every response.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
