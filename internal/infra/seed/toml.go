package seed

import (
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/taskboard/internal/domain"
)

// tomlFileData is the TOML layout.
type tomlFileData struct {
	Order  []int            `toml:"order,omitempty"`
	Tasks  []tomlTaskRecord `toml:"tasks"`
	NextID int              `toml:"next_id,omitempty"`
}

// tomlTaskRecord mirrors taskRecord for TOML.
// go-toml writes *time.Time as a quoted string and refuses to read it back,
// so dates are held as any: nil is omitted and a time.Time is written as a
// native offset datetime. Decoding also accepts local dates and datetimes.
// Fields are ordered to minimize memory padding.
type tomlTaskRecord struct {
	CreatedAt   any         `toml:"created_at,omitempty"`
	DueAt       any         `toml:"due_at,omitempty"`
	CompletedAt any         `toml:"completed_at,omitempty"`
	ArchivedAt  any         `toml:"archived_at,omitempty"`
	Slug        string      `toml:"slug,omitempty"`
	Title       string      `toml:"title"`
	Description string      `toml:"description,omitempty"`
	Priority    string      `toml:"priority,omitempty"`
	Tags        []tagRecord `toml:"tags,omitempty"`
	ID          int         `toml:"id"`
	Position    int         `toml:"position,omitempty"`
}

func newTOMLFileData(d fileData) tomlFileData {
	tasks := make([]tomlTaskRecord, 0, len(d.Tasks))
	for _, r := range d.Tasks {
		tasks = append(tasks, tomlTaskRecord{
			CreatedAt:   tomlTime(&r.CreatedAt),
			DueAt:       tomlTime(r.DueAt),
			CompletedAt: tomlTime(r.CompletedAt),
			ArchivedAt:  tomlTime(r.ArchivedAt),
			Slug:        r.Slug,
			Title:       r.Title,
			Description: r.Description,
			Priority:    r.Priority,
			Tags:        r.Tags,
			ID:          r.ID,
			Position:    r.Position,
		})
	}
	return tomlFileData{Order: d.Order, Tasks: tasks, NextID: d.NextID}
}

func (d tomlFileData) toFileData() (fileData, error) {
	tasks := make([]taskRecord, 0, len(d.Tasks))
	for i, r := range d.Tasks {
		var rec taskRecord
		created, err := parseTOMLTime(r.CreatedAt)
		if err != nil {
			return fileData{}, fmt.Errorf("task #%d: created_at: %w", i+1, err)
		}
		if created != nil {
			rec.CreatedAt = *created
		}
		if rec.DueAt, err = parseTOMLTime(r.DueAt); err != nil {
			return fileData{}, fmt.Errorf("task #%d: due_at: %w", i+1, err)
		}
		if rec.CompletedAt, err = parseTOMLTime(r.CompletedAt); err != nil {
			return fileData{}, fmt.Errorf("task #%d: completed_at: %w", i+1, err)
		}
		if rec.ArchivedAt, err = parseTOMLTime(r.ArchivedAt); err != nil {
			return fileData{}, fmt.Errorf("task #%d: archived_at: %w", i+1, err)
		}
		rec.Slug = r.Slug
		rec.Title = r.Title
		rec.Description = r.Description
		rec.Priority = r.Priority
		rec.Tags = r.Tags
		rec.ID = r.ID
		rec.Position = r.Position
		tasks = append(tasks, rec)
	}
	return fileData{Order: d.Order, Tasks: tasks, NextID: d.NextID}, nil
}

// tomlTime returns nil for a missing or zero time.
func tomlTime(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return *t
}

// parseTOMLTime converts a decoded TOML value into a time.
// Local dates and datetimes are read in the local time zone. Quoted
// RFC 3339 strings and YYYY-MM-DD strings are accepted too.
func parseTOMLTime(v any) (*time.Time, error) {
	var t time.Time
	switch x := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		t = x
	case toml.LocalDate:
		t = x.AsTime(time.Local)
	case toml.LocalDateTime:
		t = x.AsTime(time.Local)
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, x)
		if err != nil {
			parsed, err = time.ParseInLocation(domain.DueDateLayout, x, time.Local)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid time %q", x)
		}
		t = parsed
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
	return &t, nil
}
