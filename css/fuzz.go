//go:build gofuzz
// +build gofuzz

package css

import "io"

// Fuzz is the go-fuzz entry point. The input is split at NUL bytes into
// fragments so interpolation holes are covered too.
func Fuzz(data []byte) int {
	fragments := []string{""}
	for _, c := range data {
		if c == 0 {
			fragments = append(fragments, "")
		} else {
			fragments[len(fragments)-1] += string(rune(c))
		}
	}
	p := NewParser(NewLexer(fragments))
	for {
		n := p.Next()
		if n.NodeType == ErrorNode {
			break
		}
	}
	if p.Err() == io.EOF {
		return 1
	}
	return 0
}
