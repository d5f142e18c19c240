package script

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/martinsound/stagemix/internal/types"
)

var knownKinds = map[types.ElementKind]bool{
	types.ElementSceneHeading: true,
	types.ElementCharacter:    true,
	types.ElementDialogue:     true,
	types.ElementComment:      true,
}

// ReadElements loads a parsed script from a JSONL file, one element per
// line. A line that fails to decode or carries an unknown kind rejects the
// whole run; the generator assumes a well-formed sequence.
func ReadElements(filePath string) ([]types.Element, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var elements []types.Element
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var element types.Element
		if err := json.Unmarshal([]byte(line), &element); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", filePath, lineNo, err)
		}
		if !knownKinds[element.Kind] {
			return nil, fmt.Errorf("%s:%d: unknown element kind %q", filePath, lineNo, element.Kind)
		}
		elements = append(elements, element)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return elements, nil
}

// Characters returns the sorted set of character names appearing in the
// script, after heading normalization.
func Characters(elements []types.Element) []string {
	seen := map[string]struct{}{}
	for _, element := range elements {
		if element.Kind != types.ElementCharacter {
			continue
		}
		for _, name := range SplitCharacters(element.Text) {
			seen[strings.TrimSpace(name)] = struct{}{}
		}
	}
	characters := make([]string, 0, len(seen))
	for name := range seen {
		characters = append(characters, name)
	}
	sort.Strings(characters)
	return characters
}
