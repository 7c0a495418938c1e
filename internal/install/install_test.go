package install

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hollowdeep/bootstrap/internal/logging"
)

func TestNewLayout(t *testing.T) {
	l := NewLayout(filepath.Join("/tmp", "x"))
	if l.BinDir != filepath.Join("/tmp", "x", "bin") {
		t.Errorf("BinDir = %q", l.BinDir)
	}
	if l.DataDir != filepath.Join("/tmp", "x", "data") {
		t.Errorf("DataDir = %q", l.DataDir)
	}
}

func TestLayout_Ensure_Idempotent(t *testing.T) {
	l := NewLayout(t.TempDir())

	if err := l.Ensure(); err != nil {
		t.Fatalf("first Ensure() error = %v", err)
	}
	if err := l.Ensure(); err != nil {
		t.Fatalf("second Ensure() error = %v", err)
	}

	for _, dir := range []string{l.BinDir, l.DataDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("%s should be a directory (err=%v)", dir, err)
		}
	}
}

func installRequest(t *testing.T) Request {
	t.Helper()
	src := t.TempDir()

	artifact := filepath.Join(src, "hollowdeep")
	if err := os.WriteFile(artifact, []byte("ELF..."), 0755); err != nil {
		t.Fatal(err)
	}

	dataDir := filepath.Join(src, "assets")
	if err := os.MkdirAll(filepath.Join(dataDir, "data"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "data", "items.ron"), []byte("[items]"), 0644); err != nil {
		t.Fatal(err)
	}

	return Request{
		Prefix:        filepath.Join(t.TempDir(), "install-root"),
		ArtifactPath:  artifact,
		SourceDataDir: dataDir,
		Name:          "hollowdeep",
		Version:       "0.4.2",
		Profile:       filepath.Join(t.TempDir(), ".bashrc"),
	}
}

func TestManager_Install(t *testing.T) {
	t.Setenv("PATH", "/usr/bin")
	req := installRequest(t)
	m := NewManager(logging.ForTest(t))

	if err := m.Install(req); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	// Binary lands in bin/ with contents intact.
	bin := filepath.Join(req.Prefix, "bin", "hollowdeep")
	got, err := os.ReadFile(bin)
	if err != nil {
		t.Fatalf("installed binary missing: %v", err)
	}
	if string(got) != "ELF..." {
		t.Errorf("binary content = %q", got)
	}

	// Assets land in data/.
	if _, err := os.Stat(filepath.Join(req.Prefix, "data", "data", "items.ron")); err != nil {
		t.Errorf("installed assets missing: %v", err)
	}

	// Receipt written.
	receipt, err := os.ReadFile(filepath.Join(req.Prefix, receiptName))
	if err != nil {
		t.Fatalf("receipt missing: %v", err)
	}
	if !strings.Contains(string(receipt), "version: 0.4.2") {
		t.Errorf("receipt missing version: %q", receipt)
	}

	// Process PATH updated.
	if !ContainsEntry(os.Getenv("PATH"), filepath.Join(req.Prefix, "bin")) {
		t.Error("process PATH should contain the bin directory")
	}
}

func TestManager_Install_NoDataDir(t *testing.T) {
	t.Setenv("PATH", "/usr/bin")
	req := installRequest(t)
	req.SourceDataDir = filepath.Join(t.TempDir(), "does-not-exist")
	m := NewManager(logging.ForTest(t))

	if err := m.Install(req); err != nil {
		t.Fatalf("Install() with absent data dir should succeed, got %v", err)
	}

	// data/ exists (layout is always created) but is empty.
	entries, err := os.ReadDir(filepath.Join(req.Prefix, "data"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("data dir should be empty, has %d entries", len(entries))
	}
}

func TestManager_Install_Repeatable(t *testing.T) {
	t.Setenv("PATH", "/usr/bin")
	req := installRequest(t)
	m := NewManager(logging.ForTest(t))

	if err := m.Install(req); err != nil {
		t.Fatal(err)
	}
	if err := m.Install(req); err != nil {
		t.Fatalf("second Install() error = %v", err)
	}

	// The profile must contain the export line exactly once.
	profile, err := os.ReadFile(req.Profile)
	if err != nil {
		t.Fatal(err)
	}
	binDir := filepath.Join(req.Prefix, "bin")
	if got := strings.Count(string(profile), binDir); got != 1 {
		t.Errorf("profile mentions bin dir %d times, want 1:\n%s", got, profile)
	}

	// The process PATH must contain the entry exactly once.
	if got := strings.Count(os.Getenv("PATH"), binDir); got != 1 {
		t.Errorf("process PATH mentions bin dir %d times, want 1", got)
	}
}
