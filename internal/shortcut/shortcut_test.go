package shortcut

import (
	"runtime"
	"testing"
)

func TestSupported(t *testing.T) {
	want := runtime.GOOS == "windows"
	if got := Supported(); got != want {
		t.Errorf("Supported() = %v, want %v on %s", got, want, runtime.GOOS)
	}
}

func TestCreate_NoOpOnUnsupportedPlatforms(t *testing.T) {
	if Supported() {
		t.Skip("only meaningful where shortcuts are unsupported")
	}
	if err := Create("/tmp/x/bin/hollowdeep"); err != nil {
		t.Errorf("Create() on an unsupported platform must succeed trivially, got %v", err)
	}
}
