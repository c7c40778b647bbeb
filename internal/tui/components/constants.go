package components

const (
	MinColumnWidth   = 24 // narrowest a column is drawn
	MaxColumnWidth   = 40 // widest a column is drawn
	columnChrome     = 4  // border and horizontal padding of a column
	taskChrome       = 4  // border and horizontal padding of a card
	emptyPlaceholder = "Drop tasks here"
)

// ColumnWidth spreads the terminal width over n columns within the
// min/max bounds
func ColumnWidth(termWidth, n int) int {
	if n <= 0 {
		return MinColumnWidth
	}
	w := termWidth/n - 1
	return min(max(w, MinColumnWidth), MaxColumnWidth)
}
