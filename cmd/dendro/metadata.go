package main

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/dendro/tree"
)

// metadataFile is the YAML sidecar attaching serialization metadata to a
// parsed tree:
//
//	phylogeny:
//	  name: Primate phylogeny
//	  description: Example data set
//	columns:
//	  habitat:
//	    authority: NCBI
//	    applies_to: clade
//	    unit: ""
type metadataFile struct {
	// Phylogeny maps tree-level element names (name, description,
	// confidence) to their values.
	Phylogeny map[string]string `yaml:"phylogeny"`

	// Columns maps node column names to property metadata.
	Columns map[string]columnMeta `yaml:"columns"`
}

type columnMeta struct {
	Authority string `yaml:"authority"`
	AppliesTo string `yaml:"applies_to"`
	Unit      string `yaml:"unit"`
	Type      string `yaml:"type"`
}

func loadMetadata(path string) (*metadataFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata file: %w", err)
	}
	var meta metadataFile
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata file %s: %w", path, err)
	}
	return &meta, nil
}

// apply attaches the sidecar's contents to t: tree-level entries become
// "phylogeny.<element>" node columns read at row 0 by the serializer, and
// column entries become metadata attributes on existing node columns.
// Entries naming a column the tree does not have are logged and skipped.
func (m *metadataFile) apply(t *tree.Tree, logger *zap.Logger) {
	for _, element := range sortedKeys(m.Phylogeny) {
		name := "phylogeny." + element
		column := tree.NewColumn(name, t.NodeCount())
		column.SetValue(0, tree.NewString(m.Phylogeny[element]))
		t.NodeData().Add(column)
	}

	for _, name := range sortedKeys(m.Columns) {
		column := t.NodeData().Get(name)
		if column == nil {
			logger.Warn("metadata names a column the tree does not have",
				zap.String("column", name))
			continue
		}
		meta := m.Columns[name]
		setIfPresent(column, "authority", meta.Authority)
		setIfPresent(column, "applies_to", meta.AppliesTo)
		setIfPresent(column, "unit", meta.Unit)
		setIfPresent(column, "type", meta.Type)
	}
}

func setIfPresent(c *tree.Column, key, value string) {
	if value != "" {
		c.SetAttribute(key, value)
	}
}

// sortedKeys keeps column creation deterministic across runs; YAML maps
// carry no usable order once unmarshalled.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
