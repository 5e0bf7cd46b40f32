package content

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var fence = []byte("---")

// SplitFrontMatter separates a leading YAML front matter block from the
// body. Sources without front matter return a nil map and the input as-is.
func SplitFrontMatter(src []byte) (map[string]any, []byte, error) {
	first, rest, ok := cutLine(src)
	if !ok || !bytes.Equal(bytes.TrimSpace(first), fence) {
		return nil, src, nil
	}

	var block []byte
	for len(rest) > 0 {
		var line []byte
		line, rest, _ = cutLine(rest)
		if bytes.Equal(bytes.TrimSpace(line), fence) {
			meta := map[string]any{}
			if err := yaml.Unmarshal(block, &meta); err != nil {
				return nil, nil, fmt.Errorf("front matter: %w", err)
			}
			return meta, rest, nil
		}
		block = append(block, line...)
		block = append(block, '\n')
	}
	// An unterminated fence is treated as regular content.
	return nil, src, nil
}

func cutLine(b []byte) (line, rest []byte, found bool) {
	line, rest, found = bytes.Cut(b, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r")), rest, found
}
