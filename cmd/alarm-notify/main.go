// Command alarm-notify forwards CloudWatch alarm notifications from SNS to a Slack webhook.
package main

import "github.com/oshokin/alarm-notify/cmd/alarm-notify/cmd"

func main() {
	cmd.Execute()
}
