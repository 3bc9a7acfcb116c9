package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/joeshub/sweetsour/css"
)

var log = commonlog.GetLogger("sweetsour.parse")

func newParseCmd() *cobra.Command {
	var asJSON bool
	var verbose int

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a tagged-template source and print its ISTF stream",
		Long: `Parse a CSS-in-JS template source and print the resulting ISTF node
stream, one node per line.

Interpolation holes are written ${...}; the index of a hole becomes its
handle in the emitted stream. If no file is provided, the source is read
from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbose, nil)

			var source []byte
			var err error
			if len(args) == 0 {
				source, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				source, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			fragments := splitTemplate(string(source))
			log.Debugf("split source into %d fragments", len(fragments))

			p := css.NewParser(css.NewLexer(fragments))
			var nodes []css.Node
			for {
				n := p.Next()
				if n.NodeType == css.ErrorNode {
					break
				}
				nodes = append(nodes, n)
			}
			if err := p.Err(); err != io.EOF {
				return fmt.Errorf("parse: %w", err)
			}
			log.Infof("parsed %d nodes", len(nodes))

			if asJSON {
				out, err := json.Marshal(nodes)
				if err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				_, err = fmt.Println(string(out))
				return err
			}
			for _, n := range nodes {
				fmt.Println(n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stream as an ISTF JSON array")
	cmd.Flags().IntVarP(&verbose, "verbose", "v", 0, "log verbosity")

	return cmd
}

// splitTemplate splits a source at ${...} markers into the fragment
// sequence the lexer consumes. Braces inside a marker are balanced, so
// object literals in interpolated expressions survive.
func splitTemplate(s string) []string {
	fragments := []string{}
	frag := ""
	for i := 0; i < len(s); i++ {
		if s[i] == '$' && i+1 < len(s) && s[i+1] == '{' {
			depth := 0
			j := i + 1
			for ; j < len(s); j++ {
				if s[j] == '{' {
					depth++
				} else if s[j] == '}' {
					depth--
					if depth == 0 {
						break
					}
				}
			}
			if j < len(s) {
				fragments = append(fragments, frag)
				frag = ""
				i = j
				continue
			}
		}
		frag += string(s[i])
	}
	fragments = append(fragments, frag)
	return fragments
}
