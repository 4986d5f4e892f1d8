package services

import (
	"strings"

	"github.com/trovehq/trove/internal/model"
)

// parseCapture turns one block of free text into a create request.
//
// The first line is the header; any remaining lines become the content,
// rejoined with newlines. Header tokens starting with '#' are tags (the '#'
// is stripped, order kept); the special tags todo/note/event pick the item
// type, last one winning. Every other token contributes to the title. When
// no special tag appears the type defaults to "note".
func parseCapture(text string) *model.CreateItemRequest {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	header := lines[0]
	rest := strings.Join(lines[1:], "\n")

	itemType := "note"
	tags := []string{}
	var titleParts []string

	for _, word := range strings.Fields(header) {
		if !strings.HasPrefix(word, "#") {
			titleParts = append(titleParts, word)
			continue
		}
		tag := word[1:]
		switch {
		case strings.EqualFold(tag, "todo"):
			itemType = "task"
		case strings.EqualFold(tag, "note"):
			itemType = "note"
		case strings.EqualFold(tag, "event"):
			itemType = "event"
		}
		tags = append(tags, tag)
	}

	content := rest
	return &model.CreateItemRequest{
		Type:    itemType,
		Title:   strings.TrimSpace(strings.Join(titleParts, " ")),
		Content: &content,
		Tags:    tags,
	}
}
