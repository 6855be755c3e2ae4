package notifier

import (
	"fmt"
	"strings"

	"github.com/oshokin/alarm-notify/internal/domain/alarm"
	"github.com/oshokin/alarm-notify/internal/domain/chat"
)

const (
	// titleFiring heads messages for alarms entering the ALARM state.
	titleFiring = ":rotating_light:  *Cloudwatch Alarm* :rotating_light:"
	// titleUpdate heads every other state change.
	titleUpdate = "*Cloudwatch Alarm Update*"
)

// Format renders raw notification text as a chat message.
//
// Text that is not JSON, or JSON that does not describe a CloudWatch alarm,
// is passed through as a plain text message. Alarm notifications become a
// single mrkdwn section; a malformed alarm yields an error wrapping
// alarm.ErrMissingField or alarm.ErrMalformedIdentifier.
func Format(raw string) (*chat.Message, error) {
	message, _, err := render(raw)

	return message, err
}

// render formats raw and also returns the decoded JSON data, nil when raw is not JSON.
func render(raw string) (*chat.Message, any, error) {
	data, ok := decode(raw)
	if !ok || !alarm.HasIdentifier(data) {
		return chat.NewText(raw), data, nil
	}

	payload, err := alarm.PayloadFromJSON([]byte(raw), data)
	if err != nil {
		return nil, data, fmt.Errorf("read alarm payload: %w", err)
	}

	message, err := FormatAlarm(payload)
	if err != nil {
		return nil, data, err
	}

	return message, data, nil
}

// FormatAlarm renders an alarm state change as a mrkdwn section message.
func FormatAlarm(payload *alarm.Payload) (*chat.Message, error) {
	id, err := alarm.ParseIdentifier(payload.AlarmArn)
	if err != nil {
		return nil, err
	}

	title := titleUpdate
	if payload.IsFiring() {
		title = titleFiring
	}

	text := strings.Join([]string{
		title,
		fmt.Sprintf("<%s|%s>", id.ConsoleLink(), id.Name),
		fmt.Sprintf("Metric: *%s*", payload.MetricName),
		fmt.Sprintf("Previous state: *%s*", payload.OldStateValue),
		fmt.Sprintf("New state: *%s*", payload.NewStateValue),
	}, "\n")

	return chat.NewMarkdownSection(text), nil
}

// decode parses raw as generic JSON, reporting whether it succeeded.
func decode(raw string) (any, bool) {
	data, err := alarm.Decode([]byte(raw))
	if err != nil {
		return nil, false
	}

	return data, true
}
