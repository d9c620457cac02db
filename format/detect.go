// Package format provides file format detection for the dendro library.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported tree file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Newick indicates a Newick tree file.
	Newick
	// PhyloXML indicates a PhyloXML document.
	PhyloXML
	// NEXUS indicates a NEXUS file (which may embed Newick trees).
	NEXUS
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Newick:
		return "Newick"
	case PhyloXML:
		return "PhyloXML"
	case NEXUS:
		return "NEXUS"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Newick:
		return ".nwk"
	case PhyloXML:
		return ".xml"
	case NEXUS:
		return ".nex"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".nwk", ".newick", ".tree", ".tre":
		return Newick
	case ".xml", ".phyloxml":
		return PhyloXML
	case ".nex", ".nexus", ".nxs":
		return NEXUS
	default:
		return Unknown
	}
}

// DetectFromContent inspects leading content to determine format. This is
// more reliable than extension-based detection: a Newick file starts with
// an opening parenthesis (or a bare label), a NEXUS file with "#NEXUS",
// and a PhyloXML document with an XML declaration or <phyloxml> root.
// Returns Unknown if the content matches no known signature.
func DetectFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return Unknown
	}

	upper := strings.ToUpper(string(trimmed[:min(64, len(trimmed))]))
	if strings.HasPrefix(upper, "#NEXUS") {
		return NEXUS
	}

	if trimmed[0] == '<' {
		if detectPhyloXMLMagic(trimmed) {
			return PhyloXML
		}
		return Unknown
	}

	if trimmed[0] == '(' {
		return Newick
	}

	return Unknown
}

// detectPhyloXMLMagic checks whether XML content carries a phyloxml root,
// looking past any declaration and comments in the first chunk.
func detectPhyloXMLMagic(data []byte) bool {
	head := data[:min(1024, len(data))]
	return bytes.Contains(head, []byte("<phyloxml"))
}

// DetectReader reads the leading bytes of r and detects the format from
// content, falling back to the filename extension when the content is
// inconclusive. The reader is consumed up to 1 KiB.
func DetectReader(r io.Reader, filename string) (Format, error) {
	head := make([]byte, 1024)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	if f := DetectFromContent(head[:n]); f != Unknown {
		return f, nil
	}
	return Detect(filename), nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
