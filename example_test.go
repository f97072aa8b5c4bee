package punct_test

import (
	"context"
	"fmt"
	"strings"

	punct "github.com/alnah/go-punct"
)

// Example demonstrates the preserve/restore round trip around a
// punctuation-hostile processing stage.
func Example() {
	p, err := punct.New(punct.WithMarks(",!"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	chunks, marks := p.Preserve([]string{"hello, my world!"})
	fmt.Println(chunks)

	// stand-in for a text engine that only accepts unpunctuated input
	processed := make([]string, len(chunks))
	for i, chunk := range chunks {
		processed[i] = strings.ToUpper(chunk)
	}

	fmt.Println(punct.Restore(processed, marks))
	// Output:
	// [hello my world]
	// [HELLO, MY WORLD!]
}

// Example_apply lets Apply drive the whole round trip.
func Example_apply() {
	p, err := punct.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	engine := punct.ProcessorFunc(func(_ context.Context, chunks []string) ([]string, error) {
		out := make([]string, len(chunks))
		for i, chunk := range chunks {
			out[i] = strings.ToUpper(chunk)
		}
		return out, nil
	})

	lines, err := p.Apply(context.Background(), []string{"no marks here", "wow!"}, engine)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(lines)
	// Output: [NO MARKS HERE WOW!]
}

// Example_remove strips punctuation with no way back.
func Example_remove() {
	p, err := punct.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(p.Remove("well, hello there!"))
	// Output: well hello there
}
