package alarm

import (
	"fmt"
	"strings"
)

const (
	// identifierSeparator splits ARN segments.
	identifierSeparator = ":"
	// regionSegment is the zero-based position of the region in an alarm ARN.
	regionSegment = 3
	// nameSegment is the zero-based position of the alarm name in an alarm ARN.
	nameSegment = 6

	// consoleLinkFormat points to the CloudWatch console view of one alarm.
	consoleLinkFormat = "https://console.aws.amazon.com/cloudwatch/home?region=%s#alarmsV2:alarm/%s"
)

// Identifier is a parsed alarm ARN such as
// arn:aws:cloudwatch:us-east-1:123456789012:alarm:HighCPU.
type Identifier struct {
	// Raw is the identifier exactly as received.
	Raw string
	// Region is the fourth colon-delimited segment.
	Region string
	// Name is the seventh colon-delimited segment.
	Name string
}

// ParseIdentifier splits raw on colons and picks the region and alarm name.
// Segments are not validated beyond their count.
func ParseIdentifier(raw string) (*Identifier, error) {
	segments := strings.Split(raw, identifierSeparator)
	if len(segments) <= nameSegment {
		return nil, fmt.Errorf(
			"%w: %q has %d segments, want at least %d",
			ErrMalformedIdentifier, raw, len(segments), nameSegment+1,
		)
	}

	return &Identifier{
		Raw:    raw,
		Region: segments[regionSegment],
		Name:   segments[nameSegment],
	}, nil
}

// ConsoleLink returns the CloudWatch console deep link for the alarm.
// Region and name are inserted verbatim, without percent-encoding.
func (id *Identifier) ConsoleLink() string {
	return fmt.Sprintf(consoleLinkFormat, id.Region, id.Name)
}
