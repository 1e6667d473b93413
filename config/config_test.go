package config

import "testing"

func TestParsePromptStyle(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  PromptStyle
		ok    bool
	}{
		{name: "empty is the default", input: "", want: Lumi, ok: true},
		{name: "lumi", input: "lumi", want: Lumi, ok: true},
		{name: "linux", input: "linux", want: Linux, ok: true},
		{name: "windows", input: "windows", want: Windows, ok: true},
		{name: "case insensitive", input: "LINUX", want: Linux, ok: true},
		{name: "unknown", input: "zsh", want: Lumi, ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParsePromptStyle(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("got (%v, %v), wanted (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDefaultPalette(t *testing.T) {
	t.Parallel()
	palette := DefaultPalette()

	if palette.Notice == nil || palette.Warning == nil || palette.Error == nil ||
		palette.Dir == nil || palette.User == nil || palette.Machine == nil {
		t.Errorf("palette has nil styles: %+v", palette)
	}
}
