// Package docs embeds the user documentation topics shipped with the itk
// command-line tool.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// Topic returns the content of a single documentation topic. The special
// name "*" expands to all topics.
func Topic(name string) (string, error) {
	if name == "*" {
		all, err := List()
		if err != nil {
			return "", err
		}
		return Topics(all...)
	}

	content, err := topics.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics returns the content of the named topics concatenated together, "*"
// expanding to all of them.
func Topics(names ...string) (string, error) {
	var b bytes.Buffer
	for _, name := range names {
		if name == "*" {
			all, err := List()
			if err != nil {
				return "", err
			}
			for _, t := range all {
				content, err := Topic(t)
				if err != nil {
					return "", err
				}
				b.WriteString(content)
				b.WriteString("\n")
			}
			continue
		}
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// List returns the names of all available topics, sorted. The readme is the
// table of contents and is not itself a topic.
func List() ([]string, error) {
	var names []string
	err := fs.WalkDir(topics, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if base == "readme" {
			return nil
		}
		names = append(names, base)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
