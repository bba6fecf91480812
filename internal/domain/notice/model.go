package notice

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxTitleLength = 120
)

// Notice is an admin-authored announcement shown on dashboards.
// Content is markdown, rendered server-side at display time.
type Notice struct {
	ID        string // uuid
	Title     string
	Content   string
	CreatedBy string
	Published bool
	CreatedAt time.Time
}

// Validate checks if the Notice has valid data.
// PRE: Notice struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (n *Notice) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return errors.New("notice title cannot be empty")
	}
	if len(n.Title) > MaxTitleLength {
		return errors.New("notice title cannot exceed 120 characters")
	}
	if strings.TrimSpace(n.Content) == "" {
		return errors.New("notice content cannot be empty")
	}
	return nil
}
