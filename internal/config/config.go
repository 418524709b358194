// Package config loads the domkit CLI profile: built-in defaults overlaid
// with the user's domkit.yaml. The overlay is target-shaped, so keys the
// defaults do not define are dropped rather than invented, and falsy scalar
// values in the file (0, "") leave the default in place while booleans
// always win.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"domkit/pkg/domutil"
)

// DefaultPath is where the CLI looks for a profile unless told otherwise.
const DefaultPath = "domkit.yaml"

// Profile holds the settings the domkit commands consume.
type Profile struct {
	Tags         []string      // tag names inspect reports on, upper case
	WatchDelay   time.Duration // debounce window for watch mode
	PageRelative bool          // measure adds the page scroll offset
}

func defaults() map[string]any {
	return map[string]any{
		"tags":           []any{"form", "input", "button", "select", "textarea"},
		"watch_delay_ms": 300,
		"page_relative":  true,
	}
}

// Load reads path when it exists and overlays it onto the defaults with
// domutil.DeepMerge. A missing file yields the defaults; a malformed file is
// an error.
func Load(path string) (Profile, error) {
	merged := defaults()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return Profile{}, fmt.Errorf("read profile %s: %w", path, err)
	default:
		var user map[string]any
		if err := yaml.Unmarshal(data, &user); err != nil {
			return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
		}
		domutil.DeepMerge(merged, user)
	}
	return fromMap(merged), nil
}

func fromMap(m map[string]any) Profile {
	var p Profile
	if tags, ok := m["tags"].([]any); ok {
		for _, tag := range tags {
			if s, ok := tag.(string); ok {
				p.Tags = append(p.Tags, strings.ToUpper(s))
			}
		}
	}
	if ms, ok := m["watch_delay_ms"].(int); ok {
		p.WatchDelay = time.Duration(ms) * time.Millisecond
	}
	if pr, ok := m["page_relative"].(bool); ok {
		p.PageRelative = pr
	}
	return p
}
