package teachpy

// titleRunes is the number of leading code points of the first user message
// used for the derived session title.
const titleRunes = 30

// Session is one persisted conversation thread. The whole record is read,
// modified, and rewritten on every mutation; there are no partial-field
// updates against the store.
type Session struct {
	ID          string
	Title       string
	Messages    []Message
	CreatedAt   string // fixed TimestampLayout, immutable
	DisplayTime string // derived once at creation, not recomputed
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Summary is the projection of a Session returned by session listings.
type Summary struct {
	ID           string
	Title        string
	CreatedAt    string
	MessageCount int
}

// deriveTitle returns the one-time session title for the first user turn:
// the first 30 code points of content, always suffixed with an ellipsis.
func deriveTitle(content string) string {
	r := []rune(content)
	if len(r) > titleRunes {
		r = r[:titleRunes]
	}
	return string(r) + "..."
}
