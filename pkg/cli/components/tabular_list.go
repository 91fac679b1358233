package components

import (
	"fmt"
	"strings"

	"github.com/litebase/pager/pkg/cli/styles"
)

type ListItem struct {
	Key   string
	Value string
}

// TabularList renders key/value rows with the values aligned by a dotted
// spacer.
func TabularList(items []ListItem) string {
	minSpace := 4
	maxLength := 0

	for _, item := range items {
		if length := len(item.Key) + len(item.Value); length > maxLength {
			maxLength = length
		}
	}

	lines := make([]string, 0, len(items))

	for _, item := range items {
		spacerLength := maxLength + minSpace - (len(item.Key) + len(item.Value))

		lines = append(lines, fmt.Sprintf(
			"%s %s %s",
			styles.KeyStyle.Render(item.Key),
			styles.LineSpacerStyle.Render(strings.Repeat("･", spacerLength)),
			styles.ValueStyle.Render(item.Value),
		))
	}

	return strings.Join(lines, "\n")
}
