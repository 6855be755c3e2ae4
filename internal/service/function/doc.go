// Package function starts the AWS Lambda runtime loop with the notification handler.
package function
