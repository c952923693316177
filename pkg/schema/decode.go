package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DecodeDocuments decodes every document in content. YAML streams may hold
// several documents separated by "---"; JSON and TOML hold exactly one.
func DecodeDocuments(content []byte, format Format) ([]any, error) {
	switch format {
	case FormatYAML, FormatJSON:
		return decodeYAML(content)
	case FormatTOML:
		doc, err := decodeTOML(content)
		if err != nil {
			return nil, err
		}
		return []any{doc}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// DecodeDescriptor decodes a single document into a descriptor value: a string
// (type name or union), a list (type name followed by its arguments) or a
// mapping (a Shape).
func DecodeDescriptor(content []byte, format Format) (any, error) {
	docs, err := DecodeDocuments(content, format)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return nil, ErrEmptyDocument
	case 1:
		if docs[0] == nil {
			return nil, ErrEmptyDocument
		}
		return docs[0], nil
	default:
		return nil, fmt.Errorf("%w: got %d", ErrMultipleDocuments, len(docs))
	}
}

// LoadDocuments reads path and decodes it with the format its extension
// implies.
func LoadDocuments(path string) ([]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	return DecodeDocuments(content, DetectFormat(path))
}

// LoadDescriptor reads a descriptor document from path.
func LoadDescriptor(path string) (any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	return DecodeDescriptor(content, DetectFormat(path))
}

func decodeYAML(content []byte) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	var docs []any
	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrDecode, err)
		}
		docs = append(docs, normalize(doc))
	}
	return docs, nil
}

func decodeTOML(content []byte) (any, error) {
	var doc map[string]any
	if _, err := toml.NewDecoder(bytes.NewReader(content)).Decode(&doc); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return normalize(doc), nil
}
