package parser

import (
	"os"
	"sort"
	"strings"
)

// FindEntityFiles walks dir collecting files whose name ends with suffix,
// descending into subdirectories when recursive is set. Results are sorted so
// a generation run visits entities in a stable order.
func FindEntityFiles(dir string, recursive bool, suffix string) ([]string, error) {
	files, err := findBySuffix(dir, recursive, suffix)
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func findBySuffix(dir string, recursive bool, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		path := dir + "/" + entry.Name()

		if entry.IsDir() {
			if recursive {
				nested, err := findBySuffix(path, true, suffix)
				if err != nil {
					return nil, err
				}
				files = append(files, nested...)
			}
			continue
		}

		if strings.HasSuffix(entry.Name(), suffix) {
			files = append(files, path)
		}
	}

	return files, nil
}
