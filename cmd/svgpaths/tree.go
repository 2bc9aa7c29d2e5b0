package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/svgpaths"
	"github.com/dgallion1/svgpaths/doctree"
	"github.com/dgallion1/svgpaths/internal/source"
)

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Print the nested shape tree as JSON",
	Long:  "Convert every shape to path data and print the container nesting as JSON. Files holding several SVG documents print an array of {name, tree}.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

type namedTree struct {
	Name string        `json:"name"`
	Tree *doctree.Tree `json:"tree"`
}

func runTree(cmd *cobra.Command, args []string) error {
	rt := newRunEnv(cmd)
	docs, err := loadDocuments(cmd, args[0])
	if err != nil {
		return err
	}
	out, err := renderTrees(rt, docs)
	if err != nil {
		return err
	}
	return writeOutput(cmd, out)
}

func renderTrees(rt *runEnv, docs []source.Document) ([]byte, error) {
	trees := make([]namedTree, 0, len(docs))
	for _, doc := range docs {
		tree, err := svgpaths.Parse(strings.NewReader(doc.Text), rt.opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", doc.Name, err)
		}
		containers, leaves := tree.Counts()
		rt.log.Debug("parsed document", "document", doc.Name, "containers", containers, "paths", leaves)
		trees = append(trees, namedTree{Name: doc.Name, Tree: tree})
	}

	var v any = trees
	if len(trees) == 1 {
		v = trees[0].Tree
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding tree: %w", err)
	}
	return append(out, '\n'), nil
}
