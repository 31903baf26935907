package grid

// DefaultMaxVisiblePages is the pagination control budget used by every
// listing view.
const DefaultMaxVisiblePages = 5

// PageWindow returns the page numbers to render as clickable pagination
// controls: all pages when they fit, otherwise a sliding window of
// maxVisible pages that keeps the current page visible and, where possible,
// centered.
func PageWindow(current, total, maxVisible int) []int {
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisiblePages
	}
	if total < 1 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	pages := make([]int, 0, maxVisible)
	half := maxVisible / 2

	switch {
	case total <= maxVisible:
		for p := 1; p <= total; p++ {
			pages = append(pages, p)
		}
	case current <= half+1:
		for p := 1; p <= maxVisible; p++ {
			pages = append(pages, p)
		}
	case current >= total-half:
		for p := total - maxVisible + 1; p <= total; p++ {
			pages = append(pages, p)
		}
	default:
		for p := current - half; p <= current+half; p++ {
			pages = append(pages, p)
		}
	}

	return pages
}
