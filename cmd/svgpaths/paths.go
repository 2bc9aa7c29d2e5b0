package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/svgpaths"
	"github.com/dgallion1/svgpaths/internal/source"
)

var pathsCmd = &cobra.Command{
	Use:   "paths <file>",
	Short: "Print a flat SVG document of <path> elements",
	Long:  "Rewrite every shape as a <path> element and drop the container structure. Several SVG documents in one file print one after another, separated by a blank line.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, args []string) error {
	rt := newRunEnv(cmd)
	docs, err := loadDocuments(cmd, args[0])
	if err != nil {
		return err
	}
	out, err := renderPaths(rt, docs)
	if err != nil {
		return err
	}
	return writeOutput(cmd, out)
}

func renderPaths(rt *runEnv, docs []source.Document) ([]byte, error) {
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		out, err := svgpaths.Convert(strings.NewReader(doc.Text), rt.opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", doc.Name, err)
		}
		rt.log.Debug("converted document", "document", doc.Name, "paths", strings.Count(out, "<path "))
		parts = append(parts, out)
	}
	return []byte(strings.Join(parts, "\n")), nil
}
