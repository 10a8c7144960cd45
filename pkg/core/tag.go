package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Tag is a user-defined label with a stable identifier.
// The ID never changes once created; the Label may be renamed at any time
// and is not unique.
type Tag struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// NewTag creates a tag with a fresh identifier.
func NewTag(label string) (Tag, error) {
	if strings.TrimSpace(label) == "" {
		return Tag{}, ErrEmptyLabel
	}
	return Tag{ID: uuid.NewString(), Label: label}, nil
}

// Option is the shape selection widgets work with.
// Value carries the tag identifier.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Tag converts the option back into a Tag.
func (o Option) Tag() Tag {
	return Tag{ID: o.Value, Label: o.Label}
}

// OptionOf builds the selection option for a tag.
func OptionOf(t Tag) Option {
	return Option{Label: t.Label, Value: t.ID}
}

// TagsFromOptions converts options coming from a selection widget.
// An option without a value cannot be traced back to a tag and is rejected.
func TagsFromOptions(opts []Option) ([]Tag, error) {
	tags := make([]Tag, 0, len(opts))
	for i, o := range opts {
		if o.Value == "" {
			return nil, fmt.Errorf("option %d (%q): %w", i, o.Label, ErrInvalidOption)
		}
		tags = append(tags, o.Tag())
	}
	return tags, nil
}

// OptionsOf converts tags into selection options, preserving order.
func OptionsOf(tags []Tag) []Option {
	opts := make([]Option, 0, len(tags))
	for _, t := range tags {
		opts = append(opts, OptionOf(t))
	}
	return opts
}

// Registry is a read-only snapshot of every known tag.
// Mutations go through the Service; a Registry value is never written to.
type Registry struct {
	tags  []Tag
	index map[string]int
}

// NewRegistry builds a snapshot. When the same id appears twice the first
// occurrence wins.
func NewRegistry(tags []Tag) Registry {
	r := Registry{
		tags:  make([]Tag, 0, len(tags)),
		index: make(map[string]int, len(tags)),
	}
	for _, t := range tags {
		if t.ID == "" {
			continue
		}
		if _, dup := r.index[t.ID]; dup {
			continue
		}
		r.index[t.ID] = len(r.tags)
		r.tags = append(r.tags, t)
	}
	return r
}

// Tags returns a copy of the registered tags in registration order.
func (r Registry) Tags() []Tag {
	out := make([]Tag, len(r.tags))
	copy(out, r.tags)
	return out
}

// Len reports the number of registered tags.
func (r Registry) Len() int {
	return len(r.tags)
}

// Lookup returns the tag registered under id.
func (r Registry) Lookup(id string) (Tag, bool) {
	i, ok := r.index[id]
	if !ok {
		return Tag{}, false
	}
	return r.tags[i], true
}

// Has reports whether id is registered.
func (r Registry) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Options lists every tag as a selection option.
func (r Registry) Options() []Option {
	return OptionsOf(r.tags)
}

// Resolve refreshes the labels of tags from the registry.
// Identifiers the registry does not know are omitted.
func (r Registry) Resolve(tags []Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if live, ok := r.Lookup(t.ID); ok {
			out = append(out, live)
		}
	}
	return out
}

// ByLabel returns every tag carrying label. Labels may collide, so more than
// one tag can come back.
func (r Registry) ByLabel(label string) []Tag {
	var out []Tag
	for _, t := range r.tags {
		if t.Label == label {
			out = append(out, t)
		}
	}
	return out
}

// with returns a new snapshot with t appended.
func (r Registry) with(t Tag) Registry {
	return NewRegistry(append(r.Tags(), t))
}

// renamed returns a new snapshot where id carries label.
func (r Registry) renamed(id, label string) Registry {
	tags := r.Tags()
	if i, ok := r.index[id]; ok {
		tags[i].Label = label
	}
	return NewRegistry(tags)
}

// without returns a new snapshot with id removed.
func (r Registry) without(id string) Registry {
	tags := make([]Tag, 0, len(r.tags))
	for _, t := range r.tags {
		if t.ID != id {
			tags = append(tags, t)
		}
	}
	return NewRegistry(tags)
}
