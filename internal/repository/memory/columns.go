package memory

import (
	"fmt"
	"time"

	"character-chat-be/internal/model"
	"character-chat-be/internal/repository/specification"
)

func deref(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func derefTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func characterRow(c *model.Character) specification.Row {
	return specification.Row{
		"id":         c.Id,
		"user_id":    deref(c.UserId),
		"name":       c.Name,
		"slug":       deref(c.Slug),
		"domain":     deref(c.Domain),
		"is_system":  c.IsSystem,
		"is_public":  c.IsPublic,
		"created_at": c.CreatedAt,
		"updated_at": c.UpdatedAt,
	}
}

func setCharacterColumn(c *model.Character, column string, value interface{}) error {
	var ok bool
	switch column {
	case "name":
		c.Name, ok = value.(string)
	case "slug":
		c.Slug, ok = stringPtr(value)
	case "short_description":
		c.ShortDescription, ok = stringPtr(value)
	case "description":
		c.Description, ok = stringPtr(value)
	case "system_prompt":
		c.SystemPrompt, ok = stringPtr(value)
	case "speaking_style":
		c.SpeakingStyle, ok = stringPtr(value)
	case "domain":
		c.Domain, ok = stringPtr(value)
	case "avatar_url":
		c.AvatarUrl, ok = stringPtr(value)
	case "is_public":
		c.IsPublic, ok = value.(bool)
	case "is_system":
		c.IsSystem, ok = value.(bool)
	case "updated_at":
		c.UpdatedAt, ok = value.(time.Time)
	default:
		return fmt.Errorf("characters: unknown column %q", column)
	}
	if !ok {
		return fmt.Errorf("characters: invalid value %T for column %q", value, column)
	}
	return nil
}

func chatSessionRow(s *model.ChatSession) specification.Row {
	return specification.Row{
		"id":              s.Id,
		"character_id":    s.CharacterId,
		"user_id":         s.UserId,
		"is_pinned":       s.IsPinned,
		"is_archived":     s.IsArchived,
		"created_at":      s.CreatedAt,
		"updated_at":      s.UpdatedAt,
		"last_message_at": derefTime(s.LastMessageAt),
	}
}

func setChatSessionColumn(s *model.ChatSession, column string, value interface{}) error {
	var ok bool
	switch column {
	case "title":
		s.Title, ok = stringPtr(value)
	case "context_summary":
		s.ContextSummary, ok = stringPtr(value)
	case "is_pinned":
		s.IsPinned, ok = value.(bool)
	case "is_archived":
		s.IsArchived, ok = value.(bool)
	case "updated_at":
		s.UpdatedAt, ok = value.(time.Time)
	case "last_message_at":
		var t time.Time
		if t, ok = value.(time.Time); ok {
			s.LastMessageAt = &t
		}
	default:
		return fmt.Errorf("chat_sessions: unknown column %q", column)
	}
	if !ok {
		return fmt.Errorf("chat_sessions: invalid value %T for column %q", value, column)
	}
	return nil
}

func chatMessageRow(m *model.ChatMessage) specification.Row {
	return specification.Row{
		"id":              m.Id,
		"chat_session_id": m.ChatSessionId,
		"user_id":         deref(m.UserId),
		"sender_role":     m.SenderRole,
		"sequence":        m.Sequence,
		"created_at":      m.CreatedAt,
	}
}

func setChatMessageColumn(_ *model.ChatMessage, column string, _ interface{}) error {
	return fmt.Errorf("chat_messages: column %q is immutable", column)
}

func stringPtr(value interface{}) (*string, bool) {
	switch v := value.(type) {
	case string:
		return &v, true
	case *string:
		return v, true
	case nil:
		return nil, true
	}
	return nil, false
}
