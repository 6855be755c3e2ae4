// Package chat models the Slack incoming-webhook message body: either a plain
// text message or a message made of layout blocks.
package chat
