package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed think-and-say.txt
var thinkAndSay string

var ErrInvalidScene = errors.New("invalid scene")

// Scene is the fixed part of a picture: the art and where the bubble
// attaches to it. Coordinates are relative to the art's top-left corner.
type Scene struct {
	Art string
	// LeftBorder is the column of the bubble's left edge.
	LeftBorder int
	// BottomBorder is the row of the bubble's bottom edge. The bubble grows
	// upward from there as the text gets taller.
	BottomBorder int
	// MinAreaHeight and MinAreaWidth bound the inner bubble area from below.
	MinAreaHeight int
	MinAreaWidth  int
}

// Default returns the built-in "think and say" scene.
func Default() Scene {
	return Scene{
		Art:           thinkAndSay,
		LeftBorder:    29,
		BottomBorder:  9,
		MinAreaHeight: 6,
		MinAreaWidth:  19,
	}
}

func (s Scene) Validate() error {
	if s.MinAreaHeight < 0 {
		return fmt.Errorf("%w: min_area_height %d is negative", ErrInvalidScene, s.MinAreaHeight)
	}
	if s.MinAreaWidth < 0 {
		return fmt.Errorf("%w: min_area_width %d is negative", ErrInvalidScene, s.MinAreaWidth)
	}
	return nil
}

// sceneFile is the YAML form of a Scene. Pointer fields tell omitted keys
// apart from explicit zeros.
type sceneFile struct {
	Art           *string `yaml:"art"`
	ArtFile       string  `yaml:"art_file"`
	LeftBorder    *int    `yaml:"left_border"`
	BottomBorder  *int    `yaml:"bottom_border"`
	MinAreaHeight *int    `yaml:"min_area_height"`
	MinAreaWidth  *int    `yaml:"min_area_width"`
}

// Load reads a scene definition from YAML. Keys that are not set keep the
// values of Default. art_file is resolved relative to the YAML file and takes
// precedence over an inline art block.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: %w", err)
	}
	var f sceneFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Scene{}, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	s := Default()
	if f.Art != nil {
		s.Art = *f.Art
	}
	if f.ArtFile != "" {
		artPath := f.ArtFile
		if !filepath.IsAbs(artPath) {
			artPath = filepath.Join(filepath.Dir(path), artPath)
		}
		art, err := os.ReadFile(artPath)
		if err != nil {
			return Scene{}, fmt.Errorf("scene: art_file: %w", err)
		}
		s.Art = string(art)
	}
	setInt(&s.LeftBorder, f.LeftBorder)
	setInt(&s.BottomBorder, f.BottomBorder)
	setInt(&s.MinAreaHeight, f.MinAreaHeight)
	setInt(&s.MinAreaWidth, f.MinAreaWidth)

	if err := s.Validate(); err != nil {
		return Scene{}, fmt.Errorf("scene: %s: %w", path, err)
	}
	return s, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
