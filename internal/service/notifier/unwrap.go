package notifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/oshokin/alarm-notify/internal/domain/alarm"
)

// keyMessage is the SNS entity key holding the notification text.
const keyMessage = "Message"

// Envelope is an SNS event as delivered to the function.
// Decoding it also records whether the first record carries a Message key,
// so an absent message is told apart from an empty one.
type Envelope struct {
	events.SNSEvent

	// hasMessage is set when Records[0].Sns has a non-null Message.
	hasMessage bool
}

// NewEnvelope wraps an already decoded event. Every record is taken to carry a message.
func NewEnvelope(event events.SNSEvent) Envelope {
	return Envelope{
		SNSEvent:   event,
		hasMessage: len(event.Records) > 0,
	}
}

// UnmarshalJSON decodes the SNS event and notes whether its first record has a message.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &e.SNSEvent); err != nil {
		return err
	}

	var shape struct {
		Records []struct {
			SNS map[string]json.RawMessage `json:"Sns"`
		} `json:"Records"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return err
	}

	e.hasMessage = false

	if len(shape.Records) == 0 {
		return nil
	}

	for key, value := range shape.Records[0].SNS {
		if strings.EqualFold(key, keyMessage) && string(value) != "null" {
			e.hasMessage = true

			break
		}
	}

	return nil
}

// Unwrap returns the message text of the first record of the envelope.
// An envelope without records, or whose first record has no message key,
// yields an error wrapping alarm.ErrMissingField. An empty message is returned as is.
func Unwrap(envelope Envelope) (string, error) {
	if len(envelope.Records) == 0 {
		return "", fmt.Errorf("%w: Records", alarm.ErrMissingField)
	}

	if !envelope.hasMessage {
		return "", fmt.Errorf("%w: Records[0].Sns.%s", alarm.ErrMissingField, keyMessage)
	}

	return envelope.Records[0].SNS.Message, nil
}
