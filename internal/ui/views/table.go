package views

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"storyseek/internal/domain"
)

const (
	authorWidth   = 16
	commentsWidth = 14
	pointsWidth   = 8
	minTitleWidth = 20
)

// Columns lays out the story table for the given content width
func Columns(width int, showURL bool) []table.Column {
	fixed := authorWidth + commentsWidth + pointsWidth
	// Each column carries one cell of padding on either side
	padding := 2 * 4
	if showURL {
		padding += 2
	}

	flexible := width - fixed - padding
	titleWidth := flexible
	urlWidth := 0
	if showURL {
		titleWidth = flexible * 3 / 5
		urlWidth = flexible - titleWidth
	}
	if titleWidth < minTitleWidth {
		titleWidth = minTitleWidth
	}

	cols := []table.Column{{Title: "Article", Width: titleWidth}}
	if showURL {
		if urlWidth < minTitleWidth {
			urlWidth = minTitleWidth
		}
		cols = append(cols, table.Column{Title: "URL", Width: urlWidth})
	}
	return append(cols,
		table.Column{Title: "Author", Width: authorWidth},
		table.Column{Title: "Total Comments", Width: commentsWidth},
		table.Column{Title: "Points", Width: pointsWidth},
	)
}

// Rows converts stories to table rows, preserving order
func Rows(stories []domain.Story, showURL bool) []table.Row {
	rows := make([]table.Row, 0, len(stories))
	for _, s := range stories {
		row := table.Row{s.DisplayTitle()}
		if showURL {
			row = append(row, s.URL)
		}
		row = append(row,
			s.Author,
			strconv.Itoa(s.NumComments),
			strconv.Itoa(s.Points),
		)
		rows = append(rows, row)
	}
	return rows
}
