package punct

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// upperProcessor uppercases every chunk, keeping count and order.
var upperProcessor = ProcessorFunc(func(_ context.Context, chunks []string) ([]string, error) {
	out := make([]string, len(chunks))
	for i, chunk := range chunks {
		out[i] = strings.ToUpper(chunk)
	}
	return out, nil
})

// ---------------------------------------------------------------------------
// TestApply - Orchestrated Round Trip
// ---------------------------------------------------------------------------

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		marks string
		lines []string
		want  []string
	}{
		{
			name:  "multi line alignment",
			marks: ",.?!",
			lines: []string{"no marks here", "wow!"},
			want:  []string{"NO MARKS HERE", "WOW!"},
		},
		{
			name:  "punctuation reappears in place",
			marks: ",!",
			lines: []string{"hello, my world!"},
			want:  []string{"HELLO, MY WORLD!"},
		},
		{
			name:  "pure punctuation line survives untouched",
			marks: "!",
			lines: []string{"!!!"},
			want:  []string{"!!!"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := newTestPunctuator(t, tt.marks)
			got, err := p.Apply(context.Background(), tt.lines, upperProcessor)
			if err != nil {
				t.Fatalf("Apply error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply(%q) = %q, want %q", tt.lines, got, tt.want)
			}
		})
	}
}

func TestApplyProcessorError(t *testing.T) {
	t.Parallel()

	p := newTestPunctuator(t, ",.?!")
	boom := errors.New("backend down")
	failing := ProcessorFunc(func(context.Context, []string) ([]string, error) {
		return nil, boom
	})

	_, err := p.Apply(context.Background(), []string{"hi"}, failing)
	if !errors.Is(err, ErrProcess) {
		t.Errorf("error = %v, want ErrProcess", err)
	}
}

func TestApplyCancelledContext(t *testing.T) {
	t.Parallel()

	p := newTestPunctuator(t, ",.?!")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Apply(ctx, []string{"hi"}, upperProcessor)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestApplyDegradesOnChunkCountMismatch(t *testing.T) {
	t.Parallel()

	p := newTestPunctuator(t, ",!")
	dropping := ProcessorFunc(func(_ context.Context, chunks []string) ([]string, error) {
		return chunks[:1], nil
	})

	got, err := p.Apply(context.Background(), []string{"hello, my world!"}, dropping)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	// the lost chunk cannot come back, but every mark does
	want := []string{"hello,!"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply = %q, want %q", got, want)
	}
}
