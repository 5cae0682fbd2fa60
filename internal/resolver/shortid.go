package resolver

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dyluth/roads/pkg/feed"
)

// MinShortIDLength is the minimum required length for short shoe ID prefixes.
const MinShortIDLength = 6

const maxListedMatches = 10

// ResolveShoeID resolves a short shoe ID prefix to a full UUID.
//
// A full UUID (36 chars, 4 hyphens) is checked for existence and returned as-is.
// Anything shorter than MinShortIDLength is rejected. Otherwise the table's shoes
// are scanned and the prefix must match exactly one of them.
func ResolveShoeID(ctx context.Context, client *feed.Client, shortID string) (string, error) {
	shortID = strings.ToLower(strings.TrimSpace(shortID))

	if len(shortID) == 36 && strings.Count(shortID, "-") == 4 {
		if _, err := client.GetShoe(ctx, shortID); err != nil {
			if feed.IsNotFound(err) {
				return "", &NotFoundError{ShortID: shortID}
			}
			return "", fmt.Errorf("failed to verify shoe existence: %w", err)
		}
		return shortID, nil
	}

	if len(shortID) < MinShortIDLength {
		return "", fmt.Errorf("short ID must be at least %d characters (got %d)", MinShortIDLength, len(shortID))
	}

	matches, err := client.ScanShoes(ctx, shortID)
	if err != nil {
		return "", fmt.Errorf("failed to search for shoe: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{ShortID: shortID}
	case 1:
		return matches[0], nil
	default:
		sort.Strings(matches)
		return "", &AmbiguousError{ShortID: shortID, Matches: matches}
	}
}

// NotFoundError indicates no shoes matched the short ID.
type NotFoundError struct {
	ShortID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no shoes found matching '%s'", e.ShortID)
}

// AmbiguousError indicates multiple shoes matched the short ID.
type AmbiguousError struct {
	ShortID string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous short ID '%s' matches %d shoes", e.ShortID, len(e.Matches))
}

// FormatAmbiguousError lists the matching shoe IDs, at most ten of them.
func FormatAmbiguousError(err *AmbiguousError) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ambiguous short ID '%s' matches %d shoes:\n", err.ShortID, len(err.Matches))

	for i, id := range err.Matches {
		if i == maxListedMatches {
			fmt.Fprintf(&sb, "  ...and %d more\n", len(err.Matches)-maxListedMatches)
			break
		}
		fmt.Fprintf(&sb, "  %s\n", id)
	}

	sb.WriteString("\nUse a longer prefix to uniquely identify the shoe.")
	return sb.String()
}

// IsNotFoundError checks if an error is a NotFoundError.
func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsAmbiguousError checks if an error is an AmbiguousError.
func IsAmbiguousError(err error) bool {
	var target *AmbiguousError
	return errors.As(err, &target)
}
