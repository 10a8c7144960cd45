package fs

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/tagnote/pkg/core"
)

const fence = "---"

// frontMatter is the YAML block at the top of every note file.
// Tag labels are written for human readers only; the registry is
// authoritative and labels are re-resolved on read.
type frontMatter struct {
	Title           string     `yaml:"title"`
	Tags            []core.Tag `yaml:"tags,omitempty"`
	BackgroundColor string     `yaml:"background_color,omitempty"`
}

// tagFile is the on-disk shape of the tag registry.
type tagFile struct {
	Tags []core.Tag `yaml:"tags"`
}

var errNoClosingFence = errors.New("frontmatter started but no closing delimiter found")

// encodeNote renders a note as Markdown with YAML frontmatter.
func encodeNote(n core.Note) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(fence + "\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	fm := frontMatter{Title: n.Title, Tags: n.Tags, BackgroundColor: n.BackgroundColor}
	if err := enc.Encode(fm); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteString(fence + "\n")
	buf.WriteString(n.Text)
	return buf.Bytes(), nil
}

// decodeNote parses a note file. A file without frontmatter is a note whose
// whole content is the text and whose title is empty.
func decodeNote(id string, data []byte) (core.Note, error) {
	n := core.Note{ID: id}

	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(data, []byte(fence+"\n")) {
		n.Text = string(data)
		return n, nil
	}

	rest := data[len(fence)+1:]
	var head, body []byte
	switch {
	case bytes.HasPrefix(rest, []byte(fence+"\n")):
		body = rest[len(fence)+1:]
	case bytes.Equal(rest, []byte(fence)):
	default:
		end := bytes.Index(rest, []byte("\n"+fence+"\n"))
		if end < 0 {
			if !bytes.HasSuffix(rest, []byte("\n"+fence)) {
				return core.Note{}, errNoClosingFence
			}
			end = len(rest) - len(fence) - 1
			head = rest[:end]
			break
		}
		head = rest[:end]
		body = rest[end+len(fence)+2:]
	}

	var fm frontMatter
	if err := yaml.Unmarshal(head, &fm); err != nil {
		return core.Note{}, fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	n.Title = fm.Title
	n.Tags = fm.Tags
	n.BackgroundColor = fm.BackgroundColor
	n.Text = string(body)
	return n, nil
}

func encodeTags(tags []core.Tag) ([]byte, error) {
	if tags == nil {
		tags = []core.Tag{}
	}
	return yaml.Marshal(tagFile{Tags: tags})
}

func decodeTags(data []byte) ([]core.Tag, error) {
	var tf tagFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("invalid tag registry: %w", err)
	}
	return tf.Tags, nil
}
