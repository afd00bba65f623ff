package languages

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed data/*.txt
var assets embed.FS

const dataDir = "data"

// Embedded returns the names of the languages compiled into the binary.
func Embedded() []string {
	entries, err := fs.ReadDir(assets, dataDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
			continue
		}
		names = append(names, NameFromPath(entry.Name()))
	}
	sort.Strings(names)
	return names
}

func embeddedBytes(name string) ([]byte, error) {
	data, err := assets.ReadFile(path.Join(dataDir, name+".txt"))
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownLanguage, name)
	}
	return data, nil
}

// ParseLines splits language data into syllable lines. Blank lines and lines
// starting with "#" are dropped; a trailing "\r" is stripped.
func ParseLines(data []byte) ([]string, error) {
	lines := make([]string, 0, bytes.Count(data, []byte("\n"))+1)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to split language data: %w", err)
	}
	return lines, nil
}
