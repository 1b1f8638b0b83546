// Package redis implements [teachpy.Store] on a shared Redis instance.
//
// Session records live as JSON values in a single hash keyed by session id;
// the current-session pointer is a plain string key. Each command is
// individually atomic at the server, but nothing guards multi-command
// sequences — the lifecycle layer's read-modify-write of a record is
// last-write-wins.
package redis

const (
	defaultSessionsKey = "teachpy:chat_sessions"
	defaultPointerKey  = "teachpy:current_session"
)
