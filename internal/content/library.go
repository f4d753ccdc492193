// Package content loads the poem collection from a directory of markdown files.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"poemview/internal/domain"
)

// ErrNotFound is returned when no file backs the requested poem
var ErrNotFound = errors.New("content: poem not found")

const fileExt = ".md"

// frontMatter is the optional YAML header of a poem file
type frontMatter struct {
	Title string `yaml:"title"`
	Image string `yaml:"image"`
}

// Library is the read-only poem collection of one viewing session
type Library struct {
	dir        string
	collection domain.PageCollection
	logger     *slog.Logger
}

// Load reads every markdown file in dir, ordered by file name
func Load(dir string, logger *slog.Logger) (*Library, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "content")

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path %s is not a directory", dir)
	}

	var names []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), fileExt) {
			names = append(names, d.Name())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan content directory: %w", err)
	}
	sort.Strings(names)

	items := make([]domain.ContentItem, 0, len(names))
	for i, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		item, err := Parse(data)
		if err != nil {
			logger.Warn("malformed front matter, using raw text", "file", name, "error", err)
		}
		if item.Image == "" {
			item.Image = DefaultImage(i + 1)
		}
		items = append(items, item)
	}

	logger.Info("content loaded", "dir", dir, "count", len(items))
	return &Library{
		dir:        dir,
		collection: domain.NewPageCollection(items),
		logger:     logger,
	}, nil
}

// NewLibrary wraps already loaded items, used by tests and embedders
func NewLibrary(items []domain.ContentItem) *Library {
	return &Library{
		collection: domain.NewPageCollection(items),
		logger:     slog.Default(),
	}
}

// Dir returns the directory the library was loaded from
func (l *Library) Dir() string {
	return l.dir
}

// ListItems returns all poems in order
func (l *Library) ListItems() []domain.ContentItem {
	return l.collection.Items()
}

// GetItem returns the poem at a 1-based index
func (l *Library) GetItem(index int) (domain.ContentItem, bool) {
	return l.collection.Item(index)
}

// Count returns the number of poems
func (l *Library) Count() int {
	return l.collection.Len()
}

// HasItem reports whether a poem backs the 1-based index
func (l *Library) HasItem(index int) bool {
	return l.collection.Contains(index)
}

// Collection returns the underlying page collection
func (l *Library) Collection() domain.PageCollection {
	return l.collection
}

// LoadFile reads a single poem by its number, e.g. 7 reads 007.md
func (l *Library) LoadFile(id int) (domain.ContentItem, error) {
	if l.dir == "" || id < 1 {
		return domain.ContentItem{}, ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(l.dir, fmt.Sprintf("%03d%s", id, fileExt)))
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ContentItem{}, ErrNotFound
	}
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("read poem %d: %w", id, err)
	}
	item, err := Parse(data)
	if err != nil {
		l.logger.Warn("malformed front matter, using raw text", "id", id, "error", err)
	}
	if item.Image == "" {
		item.Image = DefaultImage(id)
	}
	return item, nil
}

// DefaultImage is the conventional backdrop path for a page
func DefaultImage(page int) string {
	return fmt.Sprintf("images/poems/%d.jpg", page)
}

// yamlFormat restricts detection to YAML so poems opening with "{" or
// "+++" are never read as JSON or TOML headers
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Parse splits optional YAML front matter from the body. On a front matter
// error the whole input is returned as the body together with the error.
func Parse(data []byte) (domain.ContentItem, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	if !hasFrontMatter(text) {
		return domain.ContentItem{Body: text}, nil
	}

	var fm frontMatter
	body, err := frontmatter.MustParse(strings.NewReader(text), &fm, yamlFormat)
	if errors.Is(err, frontmatter.ErrNotFound) {
		return domain.ContentItem{Body: text}, errors.New("unterminated front matter")
	}
	if err != nil {
		return domain.ContentItem{Body: text}, fmt.Errorf("parse front matter: %w", err)
	}

	return domain.ContentItem{
		Title: fm.Title,
		Body:  string(body),
		Image: fm.Image,
	}, nil
}

// hasFrontMatter reports whether the first non-blank line opens a header
func hasFrontMatter(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return line == "---"
	}
	return false
}
