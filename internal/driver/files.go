package driver

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"fire/internal/resource"
)

// SourceExt is the extension of Fire source files.
const SourceExt = ".fire"

// ListSources возвращает отсортированный список всех *.fire файлов в директории
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка регистрации
	sort.Strings(files)
	return files, nil
}

// LocationFor maps root/a/b.fire to the resource location a::b.
func LocationFor(root, path string) (resource.Location, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return resource.Location{}, err
	}
	rel = strings.TrimSuffix(filepath.ToSlash(rel), SourceExt)
	if rel == "" || rel == "." || strings.HasPrefix(rel, "../") {
		return resource.Location{}, fmt.Errorf("%s is outside of %s", path, root)
	}
	parts := strings.Split(rel, "/")
	names := make([]resource.Name, 0, len(parts))
	for _, part := range parts {
		n, err := resource.NewName(part)
		if err != nil {
			return resource.Location{}, fmt.Errorf("%s: %w", path, err)
		}
		names = append(names, n)
	}
	return resource.NewLocation(names...)
}
