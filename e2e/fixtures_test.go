//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// Poem is one fixture file
type Poem struct {
	Title string
	Body  string
}

var defaultPoems = []Poem{
	{Title: "Ozymandias", Body: "I met a traveller from an antique land,\nWho said: Two vast and trunkless legs of stone"},
	{Title: "The Raven", Body: "Once upon a midnight dreary, while I pondered, weak and weary,"},
	{Title: "Sonnet 18", Body: "Shall I compare thee to a summer's day?\nThou art more lovely and more temperate:"},
}

// CreateTestWorkspace creates a temporary directory owned by the test
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WritePoems writes NNN.md files with front matter into workspace/poems
func (tf *TUITestFramework) WritePoems(poems ...Poem) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	if len(poems) == 0 {
		poems = defaultPoems
	}

	dir := filepath.Join(tf.workspace, "poems")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	for i, p := range poems {
		data := fmt.Sprintf("---\ntitle: %q\n---\n%s\n", p.Title, p.Body)
		name := filepath.Join(dir, fmt.Sprintf("%03d.md", i+1))
		if err := os.WriteFile(name, []byte(data), 0644); err != nil {
			return "", err
		}
	}
	return dir, nil
}

// startWithPoems launches the viewer on the default library, past the cover
func (tf *TUITestFramework) startWithPoems(args ...string) error {
	return tf.startLibrary(append([]string{"--no-cover"}, args...)...)
}

// startLibrary prepares the default library and launches the viewer on it
func (tf *TUITestFramework) startLibrary(args ...string) error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	dir, err := tf.WritePoems()
	if err != nil {
		return err
	}
	return tf.StartApp(append([]string{dir}, args...)...)
}
