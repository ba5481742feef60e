package present

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thenoetrevino/trackview/internal/diff"
	"github.com/thenoetrevino/trackview/internal/models"
)

func TestFormatter_IssueLink(t *testing.T) {
	f := newTestFormatter(newFakeSource(), identityTranslator{}, nil)

	tests := []struct {
		name   string
		number int
		closed bool
		title  string
		want   string
	}{
		{
			name:   "open issue with default title",
			number: 42,
			want:   "<a href=\"/tracker/joomla-cms/42\" title=\"#42\">\n# 42\n</a>",
		},
		{
			name:   "closed issue",
			number: 7,
			closed: true,
			title:  "Broken filter",
			want:   "<a href=\"/tracker/joomla-cms/7\" title=\"Broken filter\">\n<del># 7</del>\n</a>",
		},
		{
			name:   "title is escaped",
			number: 1,
			title:  `"quoted"`,
			want:   "<a href=\"/tracker/joomla-cms/1\" title=\"&#34;quoted&#34;\">\n# 1\n</a>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(f.IssueLink(tt.number, tt.closed, tt.title)); got != tt.want {
				t.Errorf("IssueLink() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatter_Avatar(t *testing.T) {
	f := newTestFormatter(newFakeSource(), identityTranslator{}, nil)

	tests := []struct {
		name  string
		user  string
		width int
		class string
		want  string
	}{
		{
			name: "default avatar",
			want: `<img alt="avatar " src="/images/avatars/user-default.png" />`,
		},
		{
			name:  "user with width and class",
			user:  "elkuku",
			width: 40,
			class: "img-circle",
			want:  `<img class="img-circle" alt="avatar elkuku" src="/images/avatars/elkuku.png" style="width: 40px" />`,
		},
		{
			name: "user without options",
			user: "mbabker",
			want: `<img alt="avatar mbabker" src="/images/avatars/mbabker.png" />`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(f.Avatar(tt.user, tt.width, tt.class)); got != tt.want {
				t.Errorf("Avatar() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatter_MergeBadge(t *testing.T) {
	f := newTestFormatter(newFakeSource(), upperTranslator{}, nil)

	tests := []struct {
		status string
		want   string
	}{
		{"success", `<span class="badge badge-success">SUCCESS</span>`},
		{"pending", `<span class="badge badge-warning">PENDING</span>`},
		{"error", `<span class="badge badge-important">ERROR</span>`},
		{"failure", `<span class="badge badge-important">FAILURE</span>`},
	}
	for _, tt := range tests {
		got, err := f.MergeBadge(tt.status)
		if err != nil {
			t.Errorf("MergeBadge(%q) error: %v", tt.status, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("MergeBadge(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}

	if _, err := f.MergeBadge("unknown"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("MergeBadge(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestArrayDiff(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"a,b,c", "b", "a,c"},
		{"a,a,b", "a", "b"},
		{"a,b,a,c", "b", "a,a,c"},
		{"1,2,3", "", "1,2,3"},
		{"1,2", "1,2", ""},
		{"3,1,2", "4", "3,1,2"},
	}

	for _, tt := range tests {
		if got := ArrayDiff(tt.a, tt.b); got != tt.want {
			t.Errorf("ArrayDiff(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFormatter_RenderDiff(t *testing.T) {
	rec := &recordingDiff{}
	f := newTestFormatter(newFakeSource(), identityTranslator{}, rec)

	if _, err := f.RenderDiff("a\nb", "a\nc"); err != nil {
		t.Fatalf("RenderDiff() error: %v", err)
	}
	if d := cmp.Diff([]string{"a", "b"}, rec.oldLines); d != "" {
		t.Errorf("old lines mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"a", "c"}, rec.newLines); d != "" {
		t.Errorf("new lines mismatch (-want +got):\n%s", d)
	}
	if !rec.opts.ShowLineNumbers || !rec.opts.ShowHeader {
		t.Errorf("Expected both flags to default to true, got %+v", rec.opts)
	}

	if _, err := f.RenderDiff("x", "y", false, false); err != nil {
		t.Fatalf("RenderDiff() error: %v", err)
	}
	if rec.opts != (diff.Options{}) {
		t.Errorf("Expected both flags off, got %+v", rec.opts)
	}
}

func TestDiffHTML(t *testing.T) {
	rec := &recordingDiff{}
	opts := diff.Options{ShowLineNumbers: false, ShowHeader: true}

	out, err := DiffHTML(rec, "one\ntwo", "one\n2\nthree", opts)
	if err != nil {
		t.Fatalf("DiffHTML() error: %v", err)
	}
	if out != "<table></table>" {
		t.Errorf("DiffHTML() = %q", out)
	}
	if d := cmp.Diff([]string{"one", "2", "three"}, rec.newLines); d != "" {
		t.Errorf("new lines mismatch (-want +got):\n%s", d)
	}
	if rec.opts != opts {
		t.Errorf("options = %+v, want %+v", rec.opts, opts)
	}

	// The template function goes through the same path
	f := newTestFormatter(newFakeSource(), identityTranslator{}, rec)
	viaFormatter, err := f.RenderDiff("one\ntwo", "one\n2\nthree", false, true)
	if err != nil {
		t.Fatalf("RenderDiff() error: %v", err)
	}
	if viaFormatter != out || rec.opts != opts {
		t.Errorf("RenderDiff() = %q with %+v, want %q with %+v", viaFormatter, rec.opts, out, opts)
	}
}

func TestFormatter_RenderLabels(t *testing.T) {
	f := newTestFormatter(newFakeSource(), identityTranslator{}, nil)

	out, err := f.RenderLabels("1,2")
	if err != nil {
		t.Fatalf("RenderLabels() error: %v", err)
	}
	if strings.Count(string(out), `<span class="label"`) != 2 {
		t.Errorf("Expected two label spans, got %q", out)
	}
	if !strings.Contains(string(out), "color: black;") {
		t.Errorf("Expected white label to use black text, got %q", out)
	}
}

func TestFormatter_StripRootAndAssetURL(t *testing.T) {
	f := newTestFormatter(newFakeSource(), identityTranslator{}, nil)

	if got := f.StripRoot("/var/www/tracker/src/App.php"); got != "JROOT/src/App.php" {
		t.Errorf("StripRoot() = %q", got)
	}
	if got := f.AssetURL("css/tracker.css"); got != "https://cdn.example.org/media/css/tracker.css" {
		t.Errorf("AssetURL() = %q", got)
	}
}

func TestFormatter_MilestoneAndStatus(t *testing.T) {
	f := newTestFormatter(newFakeSource(), identityTranslator{}, nil)

	if title, err := f.MilestoneTitle(99); err != nil || title != "" {
		t.Errorf("MilestoneTitle(99) = %q, %v", title, err)
	}
	if _, err := f.Status(99); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("Status(99) error = %v, want ErrUnknownStatus", err)
	}
	if got := f.Priority(99); got != PriorityNA {
		t.Errorf("Priority(99) = %q, want %q", got, PriorityNA)
	}
}
