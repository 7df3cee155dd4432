// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ConfigYAML registers a component with static options and sets launch args.
const ConfigYAML = `log_level: error
components:
  - name: app.Inbox
    options:
      topBar:
        title:
          text: Inbox
launch_args:
  deepLink: leapnav://inbox
`

// TitlesScript sets every component's top bar subtitle from its name.
const TitlesScript = `
def component(data, command):
    opts = data["options"]
    top = opts.get("topBar", {})
    top["subtitle"] = {"text": data["name"]}
    opts["topBar"] = top
    return data
`

// InboxLayout is a setRoot description with a stack of one component.
const InboxLayout = `root:
  stack:
    children:
      - component:
          name: app.Inbox
          passProps:
            folder: inbox
`

// MessageLayout is a single component layout.
const MessageLayout = `component:
  name: app.Message
  options:
    animations:
      push:
        duration: 200
`

// FlowScript opens the inbox, pushes a message and pops it.
const FlowScript = `steps:
  - command: setRoot
    root:
      stack:
        children:
          - component:
              name: app.Inbox
  - command: push
    componentId: Component+3
    layout:
      component:
        name: app.Message
        passProps:
          id: 7
  - command: mergeOptions
    componentId: Component+5
    options:
      topBar:
        visible: false
  - command: pop
    componentId: Component+5
  - command: getLaunchArgs
`

// SetupTestProject creates a temporary project with a config file, a
// processor script, layouts and a flow script.
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	dirs := []string{
		filepath.Join(tmpDir, "processors"),
		filepath.Join(tmpDir, "layouts"),
		filepath.Join(tmpDir, "flows"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create directory %s: %v", dir, err)
		}
	}

	files := map[string]string{
		"leapnav.yaml":           ConfigYAML,
		"processors/titles.star": TitlesScript,
		"layouts/inbox.yaml":     InboxLayout,
		"layouts/message.yaml":   MessageLayout,
		"flows/compose.yaml":     FlowScript,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	return tmpDir
}

// JSONLines decodes every non-empty line of out as a JSON object.
func JSONLines(t *testing.T, out []byte) []map[string]any {
	t.Helper()

	var lines []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		lines = append(lines, m)
	}
	return lines
}

// AssertContains checks that the string contains the expected substring.
func AssertContains(t *testing.T, s, expected string) {
	t.Helper()
	if !strings.Contains(s, expected) {
		t.Errorf("string %q does not contain expected %q", s, expected)
	}
}

// AssertNotContains checks that the string does not contain the substring.
func AssertNotContains(t *testing.T, s, unexpected string) {
	t.Helper()
	if strings.Contains(s, unexpected) {
		t.Errorf("string %q unexpectedly contains %q", s, unexpected)
	}
}
