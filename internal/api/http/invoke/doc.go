// Package invoke exposes the notification handler over HTTP for local runs.
//
// POST /invoke accepts the same SNS envelope Lambda delivers and runs one
// invocation; GET /healthz reports liveness. Errors are mapped to HTTP status
// codes by kind.
package invoke
