// Package menudef loads menu forests from YAML or JSON definition
// files, so shell scripts can feed the selector without writing Go.
package menudef

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/localtools/treemenu/pkg/menu"
)

// Entry is one menu item in a definition file. Selectable defaults to
// true for leaves and false for entries with children, matching the
// usual header-plus-choices layout; set it explicitly for a choice
// that also groups sub-choices.
type Entry struct {
	Title      string  `yaml:"title" json:"title"`
	Selectable *bool   `yaml:"selectable,omitempty" json:"selectable,omitempty"`
	Value      string  `yaml:"value,omitempty" json:"value,omitempty"`
	Expanded   bool    `yaml:"expanded,omitempty" json:"expanded,omitempty"`
	Children   []Entry `yaml:"children,omitempty" json:"children,omitempty"`
}

// Load reads a definition file and converts it to a menu forest. The
// format is picked by extension: .yaml/.yml or .json.
func Load(path string) ([]*menu.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading menu definition: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported menu definition format %q (want .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// ParseYAML parses a YAML list of entries into a menu forest.
func ParseYAML(data []byte) ([]*menu.Node, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing menu definition: %w", err)
	}
	return build(entries)
}

// ParseJSON parses a JSON array of entries into a menu forest.
func ParseJSON(data []byte) ([]*menu.Node, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing menu definition: %w", err)
	}
	return build(entries)
}

func build(entries []Entry) ([]*menu.Node, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("menu definition has no entries")
	}
	nodes, err := convert(entries, "")
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

func convert(entries []Entry, parentPath string) ([]*menu.Node, error) {
	nodes := make([]*menu.Node, 0, len(entries))
	for i, e := range entries {
		where := fmt.Sprintf("%sentry %d", parentPath, i+1)
		if strings.TrimSpace(e.Title) == "" {
			return nil, fmt.Errorf("%s: missing title", where)
		}

		selectable := len(e.Children) == 0
		if e.Selectable != nil {
			selectable = *e.Selectable
		}

		node := &menu.Node{
			Title:      e.Title,
			Selectable: selectable,
			Expanded:   e.Expanded,
		}
		if e.Value != "" {
			node.Payload = e.Value
		}
		if len(e.Children) > 0 {
			children, err := convert(e.Children, where+" > ")
			if err != nil {
				return nil, err
			}
			node.Children = children
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Sample returns a starter YAML definition demonstrating groups,
// values and pre-expanded branches.
func Sample() string {
	return `# treemenu definition: a list of entries.
# Leaves are selectable by default, groups are not.
- title: "DEPLOY:"
  expanded: true
  children:
    - title: staging
      value: deploy-staging
    - title: production
      value: deploy-production
- title: "LOGS:"
  children:
    - title: api server
      value: logs-api
    - title: worker
      value: logs-worker
- title: quit without doing anything
  value: noop
`
}
