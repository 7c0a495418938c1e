package toolchain

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/hollowdeep/bootstrap/internal/errors"
)

// rustupDistBase is the fixed location rustup-init executables are
// published under, one per target triple.
const rustupDistBase = "https://static.rust-lang.org/rustup/dist"

// installerURL returns the rustup-init download URL for the current
// OS and architecture.
func installerURL() (string, error) {
	triple, err := targetTriple()
	if err != nil {
		return "", err
	}
	return rustupDistBase + "/" + triple + "/" + installerName(), nil
}

// installerName is the rustup-init file name for the current OS.
func installerName() string {
	if runtime.GOOS == "windows" {
		return "rustup-init.exe"
	}
	return "rustup-init"
}

func targetTriple() (string, error) {
	switch runtime.GOOS {
	case "linux":
		switch runtime.GOARCH {
		case "amd64":
			return "x86_64-unknown-linux-gnu", nil
		case "arm64":
			return "aarch64-unknown-linux-gnu", nil
		}
	case "darwin":
		switch runtime.GOARCH {
		case "amd64":
			return "x86_64-apple-darwin", nil
		case "arm64":
			return "aarch64-apple-darwin", nil
		}
	case "windows":
		switch runtime.GOARCH {
		case "amd64":
			return "x86_64-pc-windows-msvc", nil
		case "arm64":
			return "aarch64-pc-windows-msvc", nil
		}
	}
	return "", errors.Newf("no toolchain installer for %s/%s", runtime.GOOS, runtime.GOARCH)
}

// httpFetcher downloads over HTTP with the default client. The fetched
// installer is written executable so it can be run directly.
type httpFetcher struct {
	client *http.Client
}

func (f *httpFetcher) Fetch(ctx context.Context, url, dest string) error {
	client := f.client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "building request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "fetching installer")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf("unexpected status %s fetching %s", resp.Status, url)
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return errors.Wrap(err, "creating installer file")
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return errors.Wrap(err, "writing installer file")
	}
	return errors.Wrap(out.Close(), "closing installer file")
}
