// Package markdown edits markdown notes in place: a YAML frontmatter header
// and marker-delimited blocks owned by the program.
package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// Note is a markdown document split into frontmatter and body.
type Note struct {
	Meta map[string]any
	Body string
}

// Parse splits content into its frontmatter and body. Content without a
// leading fence has empty metadata.
func Parse(content string) (Note, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, fence+"\n") {
		return Note{Meta: map[string]any{}, Body: content}, nil
	}
	rest := content[len(fence)+1:]
	head, body, ok := strings.Cut(rest, "\n"+fence+"\n")
	if !ok {
		if !strings.HasSuffix(rest, "\n"+fence) {
			return Note{}, fmt.Errorf("frontmatter is not closed")
		}
		head, body = strings.TrimSuffix(rest, "\n"+fence), ""
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(head), &meta); err != nil {
		return Note{}, fmt.Errorf("decode frontmatter: %w", err)
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return Note{Meta: meta, Body: body}, nil
}

// String renders the note. The frontmatter is omitted when Meta is empty.
func (n Note) String() (string, error) {
	if len(n.Meta) == 0 {
		return n.Body, nil
	}
	raw, err := yaml.Marshal(n.Meta)
	if err != nil {
		return "", fmt.Errorf("encode frontmatter: %w", err)
	}
	var b strings.Builder
	b.WriteString(fence + "\n")
	b.Write(raw)
	b.WriteString(fence + "\n")
	if n.Body != "" && !strings.HasPrefix(n.Body, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(n.Body)
	return b.String(), nil
}

// UpsertBlock replaces the text between the begin and end markers of name,
// or appends a new block when the markers are absent.
func UpsertBlock(body, name, content string) string {
	begin := "<!-- " + name + ":begin -->"
	end := "<!-- " + name + ":end -->"
	block := begin + "\n" + strings.TrimRight(content, "\n") + "\n" + end

	if i := strings.Index(body, begin); i >= 0 {
		if j := strings.Index(body[i:], end); j >= 0 {
			return body[:i] + block + body[i+j+len(end):]
		}
	}
	switch {
	case strings.TrimSpace(body) == "":
		return block + "\n"
	case strings.HasSuffix(body, "\n\n"):
		return body + block + "\n"
	case strings.HasSuffix(body, "\n"):
		return body + "\n" + block + "\n"
	}
	return body + "\n\n" + block + "\n"
}
