package teachpy

// Role represents the role of a message sender. A system/persona role is
// never stored as a message; persona text lives outside the session record.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)
