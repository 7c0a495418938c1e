//go:build !windows

package install

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPersistPath(t *testing.T) {
	profile := filepath.Join(t.TempDir(), ".bashrc")

	added, err := persistPath(profile, "/tmp/x/bin")
	if err != nil {
		t.Fatalf("persistPath() error = %v", err)
	}
	if !added {
		t.Error("first call should report the entry as added")
	}

	data, err := os.ReadFile(profile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), exportLine("/tmp/x/bin")) {
		t.Errorf("profile missing export line:\n%s", data)
	}
}

func TestPersistPath_Idempotent(t *testing.T) {
	profile := filepath.Join(t.TempDir(), ".bashrc")

	if _, err := persistPath(profile, "/tmp/x/bin"); err != nil {
		t.Fatal(err)
	}
	added, err := persistPath(profile, "/tmp/x/bin")
	if err != nil {
		t.Fatal(err)
	}
	if added {
		t.Error("second call should not add the entry again")
	}

	data, err := os.ReadFile(profile)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "/tmp/x/bin"); got != 1 {
		t.Errorf("profile mentions the dir %d times, want 1:\n%s", got, data)
	}
}

func TestPersistPath_PreservesExistingContent(t *testing.T) {
	profile := filepath.Join(t.TempDir(), ".bashrc")
	if err := os.WriteFile(profile, []byte("alias ll='ls -l'\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := persistPath(profile, "/tmp/x/bin"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(profile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "alias ll='ls -l'\n") {
		t.Errorf("existing content clobbered:\n%s", data)
	}
}
