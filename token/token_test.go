package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		name string
		want string
		kind Kind
	}{
		{name: "string", kind: String, want: "STRING"},
		{name: "interp", kind: Interp, want: "INTERP"},
		{name: "dollar", kind: Dollar, want: "$"},
		{name: "semi", kind: Semi, want: ";"},
		{name: "amp", kind: Amp, want: "&"},
		{name: "pipe", kind: Pipe, want: "|"},
		{name: "lparen", kind: LParen, want: "("},
		{name: "rparen", kind: RParen, want: ")"},
		{name: "stdin", kind: StdIn, want: "<"},
		{name: "stdout", kind: StdOut, want: ">"},
		{name: "stderr", kind: StdErr, want: ">>"},
		{name: "stdboth", kind: StdBoth, want: ">>>"},
		{name: "end of input", kind: EndOfInput, want: "<end-of-input>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("got %s, wanted %s", got, tt.want)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		want  string
	}{
		{
			name:  "string shows its text",
			token: Token{Kind: String, Value: "echo"},
			want:  "echo",
		},
		{
			name:  "interp is described not dumped",
			token: Token{Kind: Interp, Children: []Token{{Kind: String, Value: "hi"}}},
			want:  "string interpolation",
		},
		{
			name:  "punctuation shows the glyph",
			token: Token{Kind: StdBoth},
			want:  ">>>",
		},
		{
			name:  "end of input",
			token: Token{Kind: EndOfInput},
			want:  "<end-of-input>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.String(); got != tt.want {
				t.Errorf("got %s, wanted %s", got, tt.want)
			}
		})
	}
}

func TestTokenIs(t *testing.T) {
	tok := Token{Kind: Pipe}
	if !tok.Is(Pipe) {
		t.Error("Is(Pipe) returned false for a pipe token")
	}
	if tok.Is(Amp) {
		t.Error("Is(Amp) returned true for a pipe token")
	}
}

func TestSpanLength(t *testing.T) {
	span := Span{
		Start: Location{Index: 4, Line: 1, Column: 5},
		End:   Location{Index: 9, Line: 1, Column: 10},
	}
	if got := span.Length(); got != 5 {
		t.Errorf("got %d, wanted %d", got, 5)
	}
}

func TestLocationString(t *testing.T) {
	loc := Location{Index: 12, Line: 2, Column: 3}
	if got, want := loc.String(), "line 2, column 3"; got != want {
		t.Errorf("got %s, wanted %s", got, want)
	}
}
