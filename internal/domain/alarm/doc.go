// Package alarm contains the CloudWatch alarm types carried inside SNS
// notifications and the error kinds shared by the notification pipeline.
//
// Payload is the subset of the alarm state-change message that ends up in the
// chat message; Identifier splits the alarm ARN into region and alarm name.
package alarm
