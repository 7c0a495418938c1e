package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   Default
		want  bool
	}{
		{
			name:  "empty input with affirm default",
			input: "\n",
			def:   Affirm,
			want:  true,
		},
		{
			name:  "empty input with decline default",
			input: "\n",
			def:   Decline,
			want:  false,
		},
		{
			name:  "explicit yes",
			input: "y\n",
			def:   Decline,
			want:  true,
		},
		{
			name:  "explicit yes word",
			input: "yes\n",
			def:   Decline,
			want:  true,
		},
		{
			name:  "uppercase yes",
			input: "Y\n",
			def:   Decline,
			want:  true,
		},
		{
			name:  "explicit no overrides affirm default",
			input: "n\n",
			def:   Affirm,
			want:  false,
		},
		{
			name:  "garbage input is not affirmative",
			input: "maybe\n",
			def:   Affirm,
			want:  false,
		},
		{
			name:  "whitespace only resolves to default",
			input: "   \n",
			def:   Affirm,
			want:  true,
		},
		{
			name:  "EOF resolves to affirm default",
			input: "",
			def:   Affirm,
			want:  true,
		},
		{
			name:  "EOF resolves to decline default",
			input: "",
			def:   Decline,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewConfirmerWithIO(strings.NewReader(tt.input), &out)

			got := c.Confirm("Continue? [Y/n]", tt.def)
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfirm_LabelMapping(t *testing.T) {
	// The label casing convention users rely on: pressing only Enter
	// answers yes to [Y/n] and no to [y/N].
	var out bytes.Buffer

	c := NewConfirmerWithIO(strings.NewReader("\n"), &out)
	if got := c.Confirm("Install to /tmp/x? [Y/n]", Affirm); !got {
		t.Error("empty input on a [Y/n] prompt must resolve to true")
	}

	c = NewConfirmerWithIO(strings.NewReader("\n"), &out)
	if got := c.Confirm("Continue anyway? [y/N]", Decline); got {
		t.Error("empty input on a [y/N] prompt must resolve to false")
	}
}

func TestConfirm_SequentialPromptsConsumeOneLineEach(t *testing.T) {
	// A piped run answers several prompts through one Confirmer. Each
	// Confirm must consume exactly one line; lines buffered ahead of the
	// first read belong to the prompts that follow.
	var out bytes.Buffer
	c := NewConfirmerWithIO(strings.NewReader("n\ny\n\n"), &out)

	if got := c.Confirm("Install the toolchain? [Y/n]", Affirm); got {
		t.Error("first Confirm = true, want false (user typed n)")
	}
	if got := c.Confirm("Continue anyway? [y/N]", Decline); !got {
		t.Error("second Confirm = false, want true (user typed y)")
	}
	if got := c.Confirm("Install to /tmp/x? [Y/n]", Affirm); !got {
		t.Error("third Confirm = false, want true (blank line, affirm default)")
	}
}

func TestConfirm_AssumeYes(t *testing.T) {
	// With AssumeYes the reader must never be consulted.
	c := NewConfirmerWithIO(strings.NewReader("n\n"), &bytes.Buffer{})
	c.AssumeYes = true

	if !c.Confirm("Continue anyway? [y/N]", Decline) {
		t.Error("AssumeYes must bypass the prompt and resolve true")
	}
}

func TestConfirm_WritesLabel(t *testing.T) {
	var out bytes.Buffer
	c := NewConfirmerWithIO(strings.NewReader("\n"), &out)

	c.Confirm("Install? [Y/n]", Affirm)
	if !strings.Contains(out.String(), "Install? [Y/n]") {
		t.Errorf("prompt label not written: %q", out.String())
	}
}
