package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/dendro"
	"github.com/tsawler/dendro/outline"
)

var convertFlags struct {
	edgeWeight string
	nodeName   string
	indent     string
	metadata   string
	asHTML     bool
}

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a Newick tree to PhyloXML (or an HTML outline)",
	Long: `Convert reads a Newick tree and writes it as PhyloXML.

Attribute metadata (property authorities, units, tree-level name and
description) can be supplied in a YAML sidecar via --metadata; see the
documentation for the sidecar format.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFlags.edgeWeight, "edge-weight", "weight",
		"edge column serialized as branch lengths")
	convertCmd.Flags().StringVar(&convertFlags.nodeName, "node-name", "node name",
		"node column serialized as clade names")
	convertCmd.Flags().StringVar(&convertFlags.indent, "indent", "  ",
		"output indentation")
	convertCmd.Flags().StringVar(&convertFlags.metadata, "metadata", "",
		"YAML sidecar with column metadata and tree-level elements")
	convertCmd.Flags().BoolVar(&convertFlags.asHTML, "html", false,
		"write an HTML outline instead of PhyloXML")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	t, err := dendro.Open(input)
	if err != nil {
		return err
	}
	logger.Debug("parsed tree",
		zap.String("input", input),
		zap.Int("nodes", t.NodeCount()),
		zap.Int("edges", t.EdgeCount()))

	if convertFlags.metadata != "" {
		meta, err := loadMetadata(convertFlags.metadata)
		if err != nil {
			return err
		}
		meta.apply(t, logger)
	}

	if convertFlags.asHTML {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		defer f.Close()
		opts := outline.Options{NameColumn: convertFlags.nodeName, Title: input}
		if err := outline.Render(f, t, opts); err != nil {
			return err
		}
		logger.Info("wrote HTML outline", zap.String("output", output))
		return nil
	}

	err = dendro.FromTree(t).
		EdgeWeightColumn(convertFlags.edgeWeight).
		NodeNameColumn(convertFlags.nodeName).
		Indent(convertFlags.indent).
		WriteFile(output)
	if err != nil {
		return err
	}
	logger.Info("wrote PhyloXML", zap.String("output", output))
	return nil
}
