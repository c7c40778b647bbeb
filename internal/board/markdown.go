package board

import (
	"fmt"
	"strings"

	"github.com/wifak939/taskboard/internal/models"
)

// Markdown renders the board as a markdown document, one section per column
// in display order:
//
//	## To Do (2)
//
//	- task 1 to do `1`
func Markdown(b *models.Board) string {
	var sb strings.Builder
	sb.WriteString("# Board\n")

	for _, id := range b.ColumnIDs() {
		col, _ := b.Column(id)
		fmt.Fprintf(&sb, "\n## %s (%d)\n\n", col.Name, len(col.Items))

		if len(col.Items) == 0 {
			sb.WriteString("_Drop tasks here_\n")
			continue
		}
		for _, t := range col.Items {
			fmt.Fprintf(&sb, "- %s `%s`\n", oneLine(t.Content), t.ID)
		}
	}
	return sb.String()
}

// oneLine folds line breaks so a task stays a single list item
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
