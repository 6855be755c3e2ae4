package alarm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseIdentifier verifies region and name extraction from a CloudWatch alarm ARN.
func TestParseIdentifier(t *testing.T) {
	t.Parallel()

	id, err := ParseIdentifier("arn:aws:cloudwatch:us-east-1:123456789012:alarm:HighCPU")
	require.NoError(t, err)
	require.Equal(t, "us-east-1", id.Region)
	require.Equal(t, "HighCPU", id.Name)
	require.Equal(t,
		"https://console.aws.amazon.com/cloudwatch/home?region=us-east-1#alarmsV2:alarm/HighCPU",
		id.ConsoleLink(),
	)
}

// TestParseIdentifier_ExtraSegments ensures only the seventh segment is used as the name.
func TestParseIdentifier_ExtraSegments(t *testing.T) {
	t.Parallel()

	id, err := ParseIdentifier("arn:aws:cloudwatch:eu-west-1:1:alarm:db load:extra")
	require.NoError(t, err)
	require.Equal(t, "eu-west-1", id.Region)
	require.Equal(t, "db load", id.Name)

	// Values go into the link untouched.
	require.Contains(t, id.ConsoleLink(), "region=eu-west-1#alarmsV2:alarm/db load")
}

// TestParseIdentifier_Malformed checks the segment count precondition.
func TestParseIdentifier_Malformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"",
		"HighCPU",
		"arn:aws:cloudwatch:us-east-1:123456789012:alarm",
	} {
		id, err := ParseIdentifier(raw)
		require.ErrorIs(t, err, ErrMalformedIdentifier, raw)
		require.Nil(t, id)
	}
}
