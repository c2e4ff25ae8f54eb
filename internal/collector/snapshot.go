package collector

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Block string

const (
	BlockTitle     Block = "title"
	BlockSubtitle  Block = "subtitle"
	BlockName      Block = "name"
	BlockBody      Block = "body"
	BlockSignature Block = "signature"
	BlockDate      Block = "date"
)

// PortraitClass on the canvas marks a portrait certificate.
const PortraitClass = "is-portrait"

// Controls are the raw values of one block's style inputs. A nil field means
// the input is not present in the editor.
type Controls struct {
	FontFamily    *string `yaml:"font_family"`
	FontSize      *string `yaml:"font_size"`
	Color         *string `yaml:"color"`
	FontWeight    *string `yaml:"font_weight"`
	LetterSpacing *string `yaml:"letter_spacing"`
}

// Snapshot is the state of the certificate editor at download time.
type Snapshot struct {
	// Text holds each text node's content. A missing or null entry means the
	// node does not exist.
	Text          map[Block]*string  `yaml:"text"`
	CanvasClasses []string           `yaml:"canvas_classes"`
	Controls      map[Block]Controls `yaml:"controls"`
	// Align is the computed text alignment of each rendered block.
	Align map[Block]string `yaml:"align"`
}

func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var snapshot Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot %s: %w", path, err)
	}
	return &snapshot, nil
}
