package prompt

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/hollowdeep/bootstrap/internal/errors"
)

// ErrSelectionCancelled indicates the user aborted the picker.
var ErrSelectionCancelled = errors.New("selection cancelled")

// SelectChannel presents a fuzzy picker over the given toolchain channels
// and returns the chosen one. Aborting the picker returns
// ErrSelectionCancelled so callers can fall back to the default channel.
func SelectChannel(channels []string, descriptions map[string]string) (string, error) {
	if len(channels) == 0 {
		return "", errors.New("no channels to select from")
	}
	if len(channels) == 1 {
		return channels[0], nil
	}

	idx, err := fuzzyfinder.Find(
		channels,
		func(i int) string {
			return channels[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return fmt.Sprintf("Channel: %s\n\n%s", channels[i], descriptions[channels[i]])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", ErrSelectionCancelled
		}
		return "", errors.Wrap(err, "selecting toolchain channel")
	}

	return channels[idx], nil
}
