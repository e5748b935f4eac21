// Package seed reads and writes task collections as YAML or TOML files.
package seed

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/taskboard/internal/domain"
)

// Format is a seed file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for unsupported file extensions or format names.
var ErrUnknownFormat = errors.New("unknown seed format")

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// fileData is the YAML layout. TOML goes through tomlFileData.
type fileData struct {
	Order  []int        `yaml:"order,omitempty"`
	Tasks  []taskRecord `yaml:"tasks"`
	NextID int          `yaml:"next_id,omitempty"`
}

// taskRecord is the serialized form of domain.Task.
// Fields are ordered to minimize memory padding.
type taskRecord struct {
	CreatedAt   time.Time   `yaml:"created_at,omitempty"`
	DueAt       *time.Time  `yaml:"due_at,omitempty"`
	CompletedAt *time.Time  `yaml:"completed_at,omitempty"`
	ArchivedAt  *time.Time  `yaml:"archived_at,omitempty"`
	Slug        string      `yaml:"slug,omitempty"`
	Title       string      `yaml:"title"`
	Description string      `yaml:"description,omitempty"`
	Priority    string      `yaml:"priority,omitempty"`
	Tags        []tagRecord `yaml:"tags,omitempty"`
	ID          int         `yaml:"id"`
	Position    int         `yaml:"position,omitempty"`
}

type tagRecord struct {
	Slug string `yaml:"slug" toml:"slug"`
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`
	ID   int    `yaml:"id,omitempty" toml:"id,omitempty"`
}

// Load reads a seed file, picking the format from its extension.
func Load(path string) (domain.Snapshot, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return domain.Snapshot{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("open seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	snap, err := Decode(f, format)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

// Decode reads a task collection.
// Tasks without an ID are numbered after the largest ID. Without an order
// list, tasks are ordered by position and then ID.
func Decode(r io.Reader, format Format) (domain.Snapshot, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("read seed: %w", err)
	}

	var data fileData
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(raw, &data)
	case FormatTOML:
		var td tomlFileData
		if err = toml.Unmarshal(raw, &td); err == nil {
			data, err = td.toFileData()
		}
	default:
		return domain.Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode %s seed: %w", format, err)
	}

	return data.toSnapshot()
}

// Encode writes a task collection.
func Encode(w io.Writer, format Format, snap domain.Snapshot) error {
	data := fromSnapshot(snap)

	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(&data); err != nil {
			return fmt.Errorf("encode yaml seed: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml seed: %w", err)
		}
	case FormatTOML:
		td := newTOMLFileData(data)
		if err := toml.NewEncoder(&buf).Encode(&td); err != nil {
			return fmt.Errorf("encode toml seed: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func (d fileData) toSnapshot() (domain.Snapshot, error) {
	maxID := 0
	for _, r := range d.Tasks {
		maxID = max(maxID, r.ID)
	}

	tasks := make([]domain.Task, 0, len(d.Tasks))
	seen := make(map[int]struct{}, len(d.Tasks))
	for i, r := range d.Tasks {
		if r.ID <= 0 {
			maxID++
			r.ID = maxID
		}
		if _, dup := seen[r.ID]; dup {
			return domain.Snapshot{}, fmt.Errorf("task %d: duplicate id", r.ID)
		}
		seen[r.ID] = struct{}{}

		task, err := r.toTask()
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("task #%d (id %d): %w", i+1, r.ID, err)
		}
		tasks = append(tasks, task)
	}

	order := slices.Clone(d.Order)
	if len(order) == 0 {
		sorted := slices.Clone(tasks)
		slices.SortStableFunc(sorted, func(a, b domain.Task) int {
			return cmp.Or(
				cmp.Compare(a.ManualSortPosition, b.ManualSortPosition),
				cmp.Compare(a.ID, b.ID),
			)
		})
		order = domain.TaskIDs(sorted)
	}

	return domain.Snapshot{
		Tasks:      tasks,
		Order:      order,
		NextTaskID: max(d.NextID, maxID+1),
	}, nil
}

func (r taskRecord) toTask() (domain.Task, error) {
	if strings.TrimSpace(r.Title) == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}
	priority := domain.PriorityNone
	if r.Priority != "" {
		p, err := domain.ParsePriority(r.Priority)
		if err != nil {
			return domain.Task{}, fmt.Errorf("%w: %q", err, r.Priority)
		}
		priority = p
	}
	slug := r.Slug
	if slug == "" {
		slug = domain.TaskSlug(r.ID)
	}

	var tags []domain.Tag
	for i, t := range r.Tags {
		if t.Slug == "" {
			return domain.Task{}, fmt.Errorf("tag #%d: empty slug", i+1)
		}
		name := t.Name
		if name == "" {
			name = t.Slug
		}
		tags = append(tags, domain.NewTag(t.ID, t.Slug, name))
	}

	return domain.NewTask(domain.TaskParams{
		ID:                 r.ID,
		Slug:               slug,
		Title:              r.Title,
		Description:        r.Description,
		Priority:           priority,
		Tags:               tags,
		DueAt:              r.DueAt,
		CreatedAt:          r.CreatedAt,
		ManualSortPosition: r.Position,
		CompletedAt:        r.CompletedAt,
		ArchivedAt:         r.ArchivedAt,
	}), nil
}

func fromSnapshot(snap domain.Snapshot) fileData {
	records := make([]taskRecord, 0, len(snap.Tasks))
	for _, t := range snap.Tasks {
		var tags []tagRecord
		for _, tag := range t.Tags {
			tags = append(tags, tagRecord{ID: tag.ID, Slug: tag.Slug, Name: tag.Name})
		}
		records = append(records, taskRecord{
			ID:          t.ID,
			Slug:        t.Slug,
			Title:       t.Title,
			Description: t.Description,
			Priority:    string(t.Priority),
			Tags:        tags,
			DueAt:       domain.CopyTime(t.DueAt),
			CreatedAt:   t.CreatedAt,
			Position:    t.ManualSortPosition,
			CompletedAt: domain.CopyTime(t.CompletedAt),
			ArchivedAt:  domain.CopyTime(t.ArchivedAt),
		})
	}
	return fileData{
		Order:  slices.Clone(snap.Order),
		Tasks:  records,
		NextID: snap.NextTaskID,
	}
}
