package keys

import (
	"fmt"
	"strings"
)

// GenerationKey produces a canonical key for one content-generation
// request. Behavior: trims and lower-cases the topic, replaces spaces with
// underscores and joins kind, level and topic with '|'. Suitable for
// deduplicating in-flight requests.
func GenerationKey(kind string, level int, topic string) string {
	t := strings.ToLower(strings.TrimSpace(topic))
	t = strings.ReplaceAll(t, " ", "_")
	return fmt.Sprintf("%s|%d|%s", kind, level, t)
}
