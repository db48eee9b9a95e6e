package formats

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vovakirdan/emberghost/internal/games/platformer"
)

// ParseTOML parses a TOML level file. Platforms are an array of tables:
//
//	[[platforms]]
//	x = 100
//	y = 400
//	w = 150
func ParseTOML(data []byte) (platformer.LevelSpec, error) {
	var fl FileLevel
	md, err := toml.Decode(string(data), &fl)
	if err != nil {
		return platformer.LevelSpec{}, fmt.Errorf("toml unmarshal: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return platformer.LevelSpec{}, fmt.Errorf("toml: unknown keys %s", strings.Join(keys, ", "))
	}
	return fl.Spec()
}

// MarshalTOML renders a level spec as a TOML level file.
func MarshalTOML(spec platformer.LevelSpec) ([]byte, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(FromSpec(spec)); err != nil {
		return nil, fmt.Errorf("toml marshal: %w", err)
	}
	return []byte(sb.String()), nil
}
