package markdown

import (
	"strings"
	"testing"
)

func TestParseWithoutFrontmatter(t *testing.T) {
	t.Parallel()
	n, err := Parse("# Journal\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(n.Meta) != 0 || n.Body != "# Journal\n" {
		t.Fatalf("unexpected note: %+v", n)
	}
	out, err := n.String()
	if err != nil || out != "# Journal\n" {
		t.Fatalf("render changed a plain note: %q %v", out, err)
	}
}

func TestParseFrontmatter(t *testing.T) {
	t.Parallel()
	n, err := Parse("---\ntitle: week 41\ntags: [focus]\n---\nbody\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n.Meta["title"] != "week 41" {
		t.Fatalf("unexpected meta: %+v", n.Meta)
	}
	if n.Body != "body\n" {
		t.Fatalf("unexpected body %q", n.Body)
	}
}

func TestParseUnclosedFrontmatter(t *testing.T) {
	t.Parallel()
	if _, err := Parse("---\ntitle: x\nbody\n"); err == nil {
		t.Fatalf("expected error for unclosed frontmatter")
	}
}

func TestUpsertBlockReplacesExisting(t *testing.T) {
	t.Parallel()
	body := "intro\n<!-- stats:begin -->\nold\n<!-- stats:end -->\noutro\n"
	got := UpsertBlock(body, "stats", "new\n")
	want := "intro\n<!-- stats:begin -->\nnew\n<!-- stats:end -->\noutro\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestUpsertBlockAppends(t *testing.T) {
	t.Parallel()
	got := UpsertBlock("notes", "stats", "x")
	if !strings.HasPrefix(got, "notes\n\n<!-- stats:begin -->\nx\n") {
		t.Fatalf("unexpected append %q", got)
	}
	if UpsertBlock("", "stats", "x") != "<!-- stats:begin -->\nx\n<!-- stats:end -->\n" {
		t.Fatalf("unexpected block for empty body")
	}
}

func TestNoteRoundTripKeepsBlock(t *testing.T) {
	t.Parallel()
	n := Note{Meta: map[string]any{"focus_streak": 3}, Body: UpsertBlock("", "stats", "x")}
	out, err := n.String()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	back, err := Parse(out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if back.Meta["focus_streak"] != 3 {
		t.Fatalf("meta lost: %+v", back.Meta)
	}
	if !strings.Contains(back.Body, "<!-- stats:end -->") {
		t.Fatalf("block lost: %q", back.Body)
	}
}
