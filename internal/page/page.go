// Package page composes the portfolio document: it fetches the decorative
// assets, lays the catalog out in a grid and renders the result.
package page

import (
	"html/template"

	"github.com/folio-dev/portfolio/internal/contact"
)

// Columns is the fixed width of the project grid.
const Columns = 3

// Page is everything the index template needs.
type Page struct {
	Title      string
	Icon       string
	Hero       Hero
	Grid       Grid
	About      string
	Timeline   []TimelineEntry
	Contact    contact.Form
	QuickLinks []Link
}

// Hero is the top block. Animation is nil when it could not be loaded.
type Hero struct {
	Headline  string
	Subtitle  string
	Links     []Link
	Image     ImageView
	Animation *Animation
}

// Animation carries a lottie document as decoded JSON.
type Animation struct {
	Data   any
	Height int
}

// ImageView is an img element. Src is either an inline data URI or, when the
// bytes could not be fetched, the original URL.
type ImageView struct {
	Src    template.URL
	Alt    string
	Width  int
	Height int
}

// Card is one rendered project.
type Card struct {
	Index       int
	Title       string
	Description string
	Tags        []string
	Image       *ImageView
	Link        string
	LinkLabel   string
}

// Grid holds cards split into columns.
type Grid struct {
	Columns [][]Card
}

// Cards returns every card in catalog order.
func (g Grid) Cards() []Card {
	var n int
	for _, col := range g.Columns {
		n += len(col)
	}
	out := make([]Card, n)
	for _, col := range g.Columns {
		for _, c := range col {
			out[c.Index] = c
		}
	}
	return out
}

// Link is an outbound hyperlink.
type Link struct {
	Label string
	URL   string
}

// TimelineEntry is one line of the timeline.
type TimelineEntry struct {
	Year string
	Text string
}

// ColumnFor is the column of the card at index: round-robin, not height
// balanced.
func ColumnFor(index, columns int) int {
	if columns <= 0 {
		return 0
	}
	return index % columns
}

// Layout distributes cards over columns by ColumnFor.
func Layout(cards []Card, columns int) Grid {
	if columns <= 0 {
		columns = 1
	}
	cols := make([][]Card, columns)
	for i, c := range cards {
		col := ColumnFor(i, columns)
		cols[col] = append(cols[col], c)
	}
	return Grid{Columns: cols}
}
