package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveMapperNames maps kernel block device names (e.g. "dm-0") to the
// friendly names of the symlinks pointing at them in dir.
func ResolveMapperNames(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	names := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Type()&os.ModeSymlink == 0 {
			continue
		}
		target, err := os.Readlink(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		names[strings.ReplaceAll(target, "../", "")] = e.Name()
	}
	return names, nil
}
