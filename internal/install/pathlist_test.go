package install

import (
	"os"
	"strings"
	"testing"
)

func TestContainsEntry(t *testing.T) {
	sep := string(os.PathListSeparator)

	tests := []struct {
		name    string
		pathVal string
		dir     string
		want    bool
	}{
		{
			name:    "exact entry present",
			pathVal: "/usr/bin" + sep + "/tmp/x/bin",
			dir:     "/tmp/x/bin",
			want:    true,
		},
		{
			name:    "absent entry",
			pathVal: "/usr/bin" + sep + "/usr/local/bin",
			dir:     "/tmp/x/bin",
			want:    false,
		},
		{
			name: "substring of another entry does not match",
			// The old substring check would false-positive here.
			pathVal: "/tmp/x/bin-extras",
			dir:     "/tmp/x/bin",
			want:    false,
		},
		{
			name:    "trailing separator normalized",
			pathVal: "/tmp/x/bin/",
			dir:     "/tmp/x/bin",
			want:    true,
		},
		{
			name:    "empty path value",
			pathVal: "",
			dir:     "/tmp/x/bin",
			want:    false,
		},
		{
			name:    "empty dir",
			pathVal: "/usr/bin",
			dir:     "",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsEntry(tt.pathVal, tt.dir); got != tt.want {
				t.Errorf("ContainsEntry(%q, %q) = %v, want %v", tt.pathVal, tt.dir, got, tt.want)
			}
		})
	}
}

func TestContainsEntry_CaseFolding(t *testing.T) {
	// Windows semantics: entries compare case-insensitively.
	if !containsEntry(`C:\Tools\Bin`, `c:\tools\bin`, true) {
		t.Error("folded comparison should match differing case")
	}
	if containsEntry("/Tmp/X/Bin", "/tmp/x/bin", false) {
		t.Error("unfolded comparison should be case-sensitive")
	}
}

func TestAppendEntry(t *testing.T) {
	sep := string(os.PathListSeparator)

	got := AppendEntry("/usr/bin", "/tmp/x/bin")
	want := "/usr/bin" + sep + "/tmp/x/bin"
	if got != want {
		t.Errorf("AppendEntry() = %q, want %q", got, want)
	}

	// Appending again must be a no-op.
	if again := AppendEntry(got, "/tmp/x/bin"); again != got {
		t.Errorf("second AppendEntry() = %q, want unchanged %q", again, got)
	}

	// Appending to empty yields just the dir.
	if got := AppendEntry("", "/tmp/x/bin"); got != "/tmp/x/bin" {
		t.Errorf("AppendEntry(empty) = %q", got)
	}
}

func TestPrependProcessPath(t *testing.T) {
	t.Setenv("PATH", "/usr/bin")

	PrependProcessPath("/tmp/x/bin")
	if !strings.HasPrefix(os.Getenv("PATH"), "/tmp/x/bin") {
		t.Errorf("PATH = %q, want /tmp/x/bin first", os.Getenv("PATH"))
	}

	PrependProcessPath("/tmp/x/bin")
	if got := strings.Count(os.Getenv("PATH"), "/tmp/x/bin"); got != 1 {
		t.Errorf("PATH contains dir %d times, want 1", got)
	}
}
