package install

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ContainsEntry reports whether dir appears as a discrete entry in the
// given search-path value. Entries are compared after cleaning, and
// case-insensitively on Windows. A substring match against the whole
// value is deliberately not enough: "/tmp/x/bin" must not satisfy a
// check for "/tmp/x/b".
func ContainsEntry(pathVal, dir string) bool {
	return containsEntry(pathVal, dir, runtime.GOOS == "windows")
}

func containsEntry(pathVal, dir string, fold bool) bool {
	if pathVal == "" || dir == "" {
		return false
	}
	want := filepath.Clean(strings.TrimSpace(dir))
	for _, entry := range filepath.SplitList(pathVal) {
		got := filepath.Clean(strings.TrimSpace(entry))
		if fold {
			if strings.EqualFold(got, want) {
				return true
			}
		} else if got == want {
			return true
		}
	}
	return false
}

// AppendEntry returns pathVal with dir appended, or pathVal unchanged
// when dir is already present as an entry. Appending twice is a no-op.
func AppendEntry(pathVal, dir string) string {
	if ContainsEntry(pathVal, dir) {
		return pathVal
	}
	if pathVal == "" {
		return dir
	}
	return pathVal + string(os.PathListSeparator) + dir
}

// PrependProcessPath puts dir at the front of this process's PATH so
// the rest of the run can locate the installed binary without a new
// session. Does nothing when dir is already an entry.
func PrependProcessPath(dir string) {
	current := os.Getenv("PATH")
	if ContainsEntry(current, dir) {
		return
	}
	if current == "" {
		os.Setenv("PATH", dir)
		return
	}
	os.Setenv("PATH", dir+string(os.PathListSeparator)+current)
}
