// Package notifier turns SNS notifications into Slack chat messages.
//
// Unwrap pulls the message text out of the SNS envelope, Format renders it
// (a CloudWatch alarm becomes a block message, anything else plain text) and
// Handler ties both to the webhook client for one invocation.
package notifier
