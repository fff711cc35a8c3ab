// Package messages defines the closed set of topics exchanged with the logic
// process and the typed payload codec for each of them. The payload encodings
// are a private convention between the two sides and must not drift.
package messages

// Topic names. Every channel lookup anywhere in the repo goes through one of
// these constants; there are no ad-hoc topic strings.
const (
	// Inbound (logic -> presentation).
	TopicClear         = "clear"          // empty payload, resets the log
	TopicStdout        = "stdout"         // UTF-8 text appended to the log
	TopicSelect        = "select"         // delimiter-joined menu option labels
	TopicSprite        = "sprite"         // msgpack sprite batch
	TopicGameplayState = "gameplay_state" // msgpack InteractionMode
	TopicInfoResponse  = "info_response"  // UTF-8 answer to an info request

	// Outbound (presentation -> logic).
	TopicSelectResponse = "select_response" // msgpack menu option index
	TopicInfo           = "info"            // msgpack (u16, u16) cell coordinate
)

// MenuDelimiter joins option labels in a TopicSelect payload.
const MenuDelimiter = ":"

// Message is one unit on a topic channel. Content structure is topic-specific.
type Message struct {
	Topic   string
	Content []byte
}

// InboundTopics returns the topics this layer consumes.
func InboundTopics() []string {
	return []string{
		TopicClear,
		TopicStdout,
		TopicSelect,
		TopicSprite,
		TopicGameplayState,
		TopicInfoResponse,
	}
}

// OutboundTopics returns the topics this layer produces.
func OutboundTopics() []string {
	return []string{
		TopicSelectResponse,
		TopicInfo,
	}
}
