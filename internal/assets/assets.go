// Package assets holds the icon artwork bundled into the binary.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed icons/*.txt
var iconFS embed.FS

// Search is the name of the search glyph shown next to the input.
const Search = "search"

// Icon returns the artwork for name, without the trailing newline.
func Icon(name string) (string, error) {
	b, err := iconFS.ReadFile(path.Join("icons", name+".txt"))
	if err != nil {
		return "", fmt.Errorf("icon %q: %w", name, err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}

// MustIcon is Icon for names known at compile time.
func MustIcon(name string) string {
	art, err := Icon(name)
	if err != nil {
		panic(err)
	}
	return art
}

// Names lists every bundled icon.
func Names() []string {
	entries, err := fs.ReadDir(iconFS, "icons")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}
