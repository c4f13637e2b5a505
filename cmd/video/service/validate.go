package service

import (
	"strings"
	"unicode/utf8"

	"github.com/vidloom/vidloom/pkg/constants"
	"github.com/vidloom/vidloom/pkg/errno"
)

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errno.ValidationErr.WithMessage("title is required")
	}
	if utf8.RuneCountInString(title) > constants.MaxTitleLen {
		return errno.ValidationErr.WithMessage("title must be at most 100 characters")
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > constants.MaxDescriptionLen {
		return errno.ValidationErr.WithMessage("description must be at most 5000 characters")
	}
	return nil
}

// validateCategory resolves the stored category: empty falls back to the
// default, anything outside the enum is rejected.
func validateCategory(category string) (string, error) {
	if category == "" {
		return constants.DefaultCategory, nil
	}
	if !constants.IsValidCategory(category) {
		return "", errno.ValidationErr.WithMessage("invalid category: " + category)
	}
	return category, nil
}

// NormalizeTags splits a comma-separated tag string, trims and lowercases
// each entry, drops empties and duplicates, and rejects more than the cap.
// Exceeding the cap is a validation failure, never silent truncation.
func NormalizeTags(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	if len(tags) > constants.MaxTagCount {
		return nil, errno.ValidationErr.WithMessage("at most 10 tags allowed")
	}
	return tags, nil
}
