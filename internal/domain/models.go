package domain

import "strings"

// ContentItem represents a single poem
type ContentItem struct {
	Title string
	Body  string
	Image string // backdrop reference shown behind the text
}

// Lines splits the body into display lines, ignoring trailing newlines
func (c ContentItem) Lines() []string {
	body := strings.TrimRight(c.Body, "\n")
	if body == "" {
		return nil
	}
	return strings.Split(body, "\n")
}

// PageCollection is an ordered, 1-indexed, read-only sequence of items
type PageCollection struct {
	items []ContentItem
}

// NewPageCollection copies items into a new collection
func NewPageCollection(items []ContentItem) PageCollection {
	cp := make([]ContentItem, len(items))
	copy(cp, items)
	return PageCollection{items: cp}
}

// Len returns the number of pages
func (p PageCollection) Len() int {
	return len(p.items)
}

// Item returns the item at a 1-based index
func (p PageCollection) Item(index int) (ContentItem, bool) {
	if index < 1 || index > len(p.items) {
		return ContentItem{}, false
	}
	return p.items[index-1], true
}

// Items returns a copy of all items in order
func (p PageCollection) Items() []ContentItem {
	cp := make([]ContentItem, len(p.items))
	copy(cp, p.items)
	return cp
}

// Contains reports whether index addresses a page
func (p PageCollection) Contains(index int) bool {
	return index >= 1 && index <= len(p.items)
}
