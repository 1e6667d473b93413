package ast

import "testing"

func TestSegmentString(t *testing.T) {
	t.Parallel()

	echo := Command{
		Command:     Text{Text: "echo", SegmentType: SegmentText},
		Args:        []Segment{Text{Text: "hi", SegmentType: SegmentText}},
		SegmentType: SegmentCommand,
	}

	tests := []struct {
		name    string
		segment Segment
		want    string
	}{
		{
			name:    "empty",
			segment: Empty{SegmentType: SegmentEmpty},
			want:    "",
		},
		{
			name:    "text",
			segment: Text{Text: "hello", SegmentType: SegmentText},
			want:    "hello",
		},
		{
			name:    "command",
			segment: echo,
			want:    "echo hi",
		},
		{
			name: "bare command",
			segment: Command{
				Command:     Text{Text: "ls", SegmentType: SegmentText},
				SegmentType: SegmentCommand,
			},
			want: "ls",
		},
		{
			name:    "variable",
			segment: Var{Name: "PATH", SegmentType: SegmentVar},
			want:    "$PATH",
		},
		{
			name:    "command substitution",
			segment: CmdInterp{Inner: echo, SegmentType: SegmentCmdInterp},
			want:    "$( echo hi )",
		},
		{
			name: "string interpolation",
			segment: StringInterp{
				Parts: []Segment{
					Text{Text: "pre", SegmentType: SegmentText},
					echo,
					Text{Text: "post", SegmentType: SegmentText},
				},
				SegmentType: SegmentStringInterp,
			},
			want: `"pre{ echo hi }post"`,
		},
		{
			name: "pipe",
			segment: Pipe{
				Left:        echo,
				Right:       Command{Command: Text{Text: "cat", SegmentType: SegmentText}, SegmentType: SegmentCommand},
				SegmentType: SegmentPipe,
			},
			want: "echo hi | cat",
		},
		{
			name: "safe sequence",
			segment: Seq{
				Safe:        true,
				Left:        echo,
				Right:       echo,
				SegmentType: SegmentSeq,
			},
			want: "echo hi & echo hi",
		},
		{
			name: "unsafe sequence",
			segment: Seq{
				Safe:        false,
				Left:        echo,
				Right:       echo,
				SegmentType: SegmentSeq,
			},
			want: "echo hi ; echo hi",
		},
		{
			name: "redirect",
			segment: Redirect{
				Left:        echo,
				Right:       Text{Text: "out.txt", SegmentType: SegmentText},
				Mode:        RedirectStdBoth,
				SegmentType: SegmentRedirect,
			},
			want: "echo hi >>> out.txt",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.segment.String(); got != tt.want {
				t.Errorf("got %q, wanted %q", got, tt.want)
			}
		})
	}
}

func TestRedirectModeString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		mode RedirectMode
		want string
	}{
		{RedirectStdIn, "<"},
		{RedirectStdOut, ">"},
		{RedirectStdErr, ">>"},
		{RedirectStdBoth, ">>>"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("got %q, wanted %q", got, tt.want)
		}
	}
}

func TestSegmentType(t *testing.T) {
	t.Parallel()
	seg := Pipe{SegmentType: SegmentPipe}
	if seg.Type() != SegmentPipe {
		t.Errorf("got %v, wanted %v", seg.Type(), SegmentPipe)
	}
}
