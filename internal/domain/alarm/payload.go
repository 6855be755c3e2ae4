package alarm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
)

const (
	// StateAlarm is the CloudWatch state value of an alarm that is firing.
	StateAlarm = "ALARM"

	keyAlarmArn   = "AlarmArn"
	keyTrigger    = "Trigger"
	keyMetricName = "MetricName"
	keyOldState   = "OldStateValue"
	keyNewState   = "NewStateValue"
)

// Payload is the part of a CloudWatch alarm notification rendered into chat.
type Payload struct {
	// AlarmArn identifies the alarm.
	AlarmArn string
	// MetricName is Trigger.MetricName of the notification.
	MetricName string
	// OldStateValue is the state before the transition.
	OldStateValue string
	// NewStateValue is the state after the transition.
	NewStateValue string
}

// IsFiring reports whether the alarm transitioned into the ALARM state.
func (p *Payload) IsFiring() bool {
	return p.NewStateValue == StateAlarm
}

// HasIdentifier reports whether decoded JSON data is shaped like an alarm notification.
func HasIdentifier(data any) bool {
	object, ok := data.(map[string]any)
	if !ok {
		return false
	}

	_, ok = object[keyAlarmArn]

	return ok
}

// Decode parses raw as a single generic JSON value. Numbers are kept as
// json.Number so they render exactly as written.
func Decode(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}

	return data, nil
}

// PayloadFromJSON extracts a Payload from an alarm notification.
// raw is the notification text and data its Decode result; callers check
// HasIdentifier first.
func PayloadFromJSON(raw []byte, data any) (*Payload, error) {
	object, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, keyAlarmArn)
	}

	arn, ok := object[keyAlarmArn].(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T, not a string", ErrMalformedIdentifier, keyAlarmArn, object[keyAlarmArn])
	}

	trigger, ok := object[keyTrigger].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, keyTrigger)
	}

	required := []struct {
		object map[string]any
		key    string
		path   string
	}{
		{trigger, keyMetricName, keyTrigger + "." + keyMetricName},
		{object, keyOldState, keyOldState},
		{object, keyNewState, keyNewState},
	}
	for _, field := range required {
		if value, ok := field.object[field.key]; !ok || value == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field.path)
		}
	}

	var notification events.CloudWatchAlarmSNSPayload
	if err := json.Unmarshal(raw, &notification); err == nil {
		return &Payload{
			AlarmArn:      arn,
			MetricName:    notification.Trigger.MetricName,
			OldStateValue: notification.OldStateValue,
			NewStateValue: notification.NewStateValue,
		}, nil
	}

	// Values of unexpected types are rendered as text.
	metricName, err := textField(trigger, keyMetricName, keyTrigger+"."+keyMetricName)
	if err != nil {
		return nil, err
	}

	oldState, err := textField(object, keyOldState, keyOldState)
	if err != nil {
		return nil, err
	}

	newState, err := textField(object, keyNewState, keyNewState)
	if err != nil {
		return nil, err
	}

	return &Payload{
		AlarmArn:      arn,
		MetricName:    metricName,
		OldStateValue: oldState,
		NewStateValue: newState,
	}, nil
}

// textField returns object[key] rendered as text, or ErrMissingField when absent or null.
func textField(object map[string]any, key, path string) (string, error) {
	value, ok := object[key]
	if !ok || value == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingField, path)
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encode %s: %w", path, err)
		}

		return string(encoded), nil
	}
}
