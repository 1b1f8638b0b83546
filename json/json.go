// Package json serializes session records to the wire format persisted in
// the shared store. The field set is fixed — records must round-trip with
// entries written by existing deployments — so the envelope carries no
// version or extension fields.
package json

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/teachpy"
)

// envelope is the wire format for a persisted session record.
type envelope struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Messages    []messageDTO `json:"messages"`
	CreatedAt   string       `json:"created_at"`
	DisplayTime string       `json:"display_time"`
}

// messageDTO is the wire representation of a single conversation turn.
type messageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MarshalSession serializes a Session to its wire format.
func MarshalSession(s teachpy.Session) ([]byte, error) {
	env := envelope{
		ID:          s.ID,
		Title:       s.Title,
		Messages:    make([]messageDTO, len(s.Messages)),
		CreatedAt:   s.CreatedAt,
		DisplayTime: s.DisplayTime,
	}
	for i, m := range s.Messages {
		env.Messages[i] = messageDTO{Role: string(m.Role), Content: m.Content}
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal session %s: %w", s.ID, err)
	}
	return data, nil
}

// UnmarshalSession deserializes a Session from its wire format.
func UnmarshalSession(data []byte) (teachpy.Session, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return teachpy.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}
	msgs := make([]teachpy.Message, len(env.Messages))
	for i, dto := range env.Messages {
		msgs[i] = teachpy.Message{Role: teachpy.Role(dto.Role), Content: dto.Content}
	}
	return teachpy.Session{
		ID:          env.ID,
		Title:       env.Title,
		Messages:    msgs,
		CreatedAt:   env.CreatedAt,
		DisplayTime: env.DisplayTime,
	}, nil
}
