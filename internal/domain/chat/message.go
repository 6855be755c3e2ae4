package chat

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/slack-go/slack"
)

// Message is a chat message body sent to the webhook.
// Exactly one of Text or Blocks is used on the wire; Blocks take precedence.
type Message struct {
	Text   string       `json:"text,omitempty"`
	Blocks slack.Blocks `json:"blocks"`
}

// NewText returns a plain text message carrying text verbatim.
func NewText(text string) *Message {
	return &Message{Text: text}
}

// NewMarkdownSection returns a message with one section block of mrkdwn text.
func NewMarkdownSection(text string) *Message {
	section := slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)

	return &Message{
		Blocks: slack.Blocks{BlockSet: []slack.Block{section}},
	}
}

// IsBlocks reports whether the message is rendered as blocks.
func (m *Message) IsBlocks() bool {
	return len(m.Blocks.BlockSet) > 0
}

// MarkdownText returns the text of the first section block, or "" for plain text messages.
func (m *Message) MarkdownText() string {
	if !m.IsBlocks() {
		return ""
	}

	section, ok := m.Blocks.BlockSet[0].(*slack.SectionBlock)
	if !ok || section.Text == nil {
		return ""
	}

	return section.Text.Text
}

// textBody is the wire form of a plain text message; text is always present, even when empty.
// slack.WebhookMessage is not used because it always adds replace_original and delete_original.
type textBody struct {
	Text string `json:"text"`
}

// blocksBody is the wire form of a block message. It carries the block set
// directly because slack.Blocks marshals itself with HTML escaping enabled.
type blocksBody struct {
	Blocks []slack.Block `json:"blocks"`
}

// Encode renders the webhook request body as UTF-8 JSON.
// HTML characters are kept as is so Slack link syntax like <url|name> survives.
func (m *Message) Encode() ([]byte, error) {
	var body any = textBody{Text: m.Text}
	if m.IsBlocks() {
		body = blocksBody{Blocks: m.Blocks.BlockSet}
	}

	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(body); err != nil {
		return nil, fmt.Errorf("encode chat message: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
