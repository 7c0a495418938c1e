package prompt

import "testing"

func TestSelectChannel_NoChannels(t *testing.T) {
	if _, err := SelectChannel(nil, nil); err == nil {
		t.Error("expected error for empty channel list")
	}
}

func TestSelectChannel_SingleChannelSkipsPicker(t *testing.T) {
	got, err := SelectChannel([]string{"stable"}, nil)
	if err != nil {
		t.Fatalf("SelectChannel() error = %v", err)
	}
	if got != "stable" {
		t.Errorf("SelectChannel() = %q, want %q", got, "stable")
	}
}
