package schema

import (
	"path/filepath"
	"strings"
)

// Format identifies a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

func (f Format) String() string {
	return string(f)
}

// DetectFormat picks a format from the file extension. Unknown extensions are
// treated as YAML, which also accepts JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}
