// Package model defines the core value types shared across the pipeline.
package model

import "strings"

// Role tags a message for the completion backend.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged turn. Order within a sequence is significant.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// KnowledgeDocument is one indexed knowledge-base record.
type KnowledgeDocument struct {
	ID       string            `json:"id"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Passage is a document returned by a similarity search.
// Distance is cosine distance; lower means more similar.
type Passage struct {
	ID       string            `json:"id"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Distance float64           `json:"distance"`
}

// ValidRoles are the roles accepted by completion backends.
var ValidRoles = map[Role]bool{
	RoleSystem:    true,
	RoleUser:      true,
	RoleAssistant: true,
}

// ParseRole maps a free-form role string to a Role, defaulting to user.
func ParseRole(s string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if ValidRoles[r] {
		return r
	}
	return RoleUser
}
