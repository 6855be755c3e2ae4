// Package local runs the notification pipeline outside Lambda.
//
// It reads an SNS envelope from a file or stdin and either prints the chat
// message that would be sent (format) or performs the full delivery (invoke).
package local
