package formats

import (
	"bytes"
	"fmt"

	"github.com/vovakirdan/emberghost/internal/games/platformer"
	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML level file. Unknown keys are rejected so typos
// in level files surface as errors.
func ParseYAML(data []byte) (platformer.LevelSpec, error) {
	var fl FileLevel
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fl); err != nil {
		return platformer.LevelSpec{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return fl.Spec()
}

// MarshalYAML renders a level spec as a YAML level file.
func MarshalYAML(spec platformer.LevelSpec) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(FromSpec(spec)); err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
