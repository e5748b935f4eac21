package domain

// Priority is the importance level of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
	PriorityNone   Priority = "none"
)

// AllPriorities returns all valid priorities, highest first.
func AllPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow, PriorityNone}
}

// Weight returns the ordering weight of the priority.
// Unknown values weigh the same as PriorityNone.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	case PriorityNone:
		return 0
	default:
		return 0
	}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow, PriorityNone:
		return true
	}
	return false
}

// ParsePriority converts a string into a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// ComparePriority orders higher priorities first.
// It returns a negative number when a sorts before b.
func ComparePriority(a, b Priority) int {
	return b.Weight() - a.Weight()
}

// Tag labels a task. Slug is the identity used by filters.
type Tag struct {
	Slug string
	Name string
	ID   int
}

// NewTag creates a tag.
func NewTag(id int, slug, name string) Tag {
	return Tag{ID: id, Slug: slug, Name: name}
}

// UniqueTags returns a copy of tags with duplicate slugs removed.
// The first occurrence of each slug wins.
func UniqueTags(tags []Tag) []Tag {
	if tags == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t.Slug]; ok {
			continue
		}
		seen[t.Slug] = struct{}{}
		out = append(out, t)
	}
	return out
}
