package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics ensures the documentation stays in sync with itself:
// every topic listed in readme.md loads, and every .md file in the
// directory (readme.md aside) is listed in readme.md.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		matches := topicRegex.FindStringSubmatch(scanner.Text())
		if len(matches) > 1 {
			listed = append(listed, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	if len(listed) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := Topic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, f := range files {
		name := strings.TrimSuffix(filepath.Base(f), ".md")
		if name == "readme" {
			continue
		}
		found := false
		for _, topic := range listed {
			if topic == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

// TestTopicStructure parses every topic as markdown and requires a single
// level-1 heading, so concatenated topics render as clean sections.
func TestTopicStructure(t *testing.T) {
	names, err := List()
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			content, err := Topic(name)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			h1 := 0
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
					h1++
				}
				return ast.WalkContinue, nil
			})
			if h1 != 1 {
				t.Errorf("topic %q has %d level-1 headings, want exactly 1", name, h1)
			}
		})
	}
}
