package eventbus

// Topic names are managed in one place so they can move to configuration
// later without touching call sites.

var (
	TopicContentEvents = NewTopic("emlak-press.content.events")
)
