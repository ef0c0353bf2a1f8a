package tables

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/GriffinCanCode/TamilScraper/internal/scraper"
)

const (
	// HTML caps colspan at 1000 and rowspan at 65534
	maxColspan = 1000
	maxRowspan = 65534
)

type cell struct {
	text    string
	header  bool
	rowspan int
	colspan int
}

type rawRow struct {
	cells []cell
	head  bool // row came from <thead>
}

type span struct {
	text      string
	remaining int
}

// Parse returns every table of the document in document order. Tables
// without any row are skipped.
func Parse(doc *goquery.Document) []Table {
	out := []Table{}
	doc.Find("table").Each(func(i int, s *goquery.Selection) {
		if t, ok := parseTable(s); ok {
			out = append(out, t)
		}
	})
	return out
}

func parseTable(tbl *goquery.Selection) (Table, bool) {
	var rows []rawRow

	tbl.ChildrenFiltered("thead, tbody, tfoot, tr").Each(func(i int, section *goquery.Selection) {
		if goquery.NodeName(section) == "tr" {
			rows = append(rows, rawRow{cells: parseRow(section)})
			return
		}
		head := goquery.NodeName(section) == "thead"
		section.ChildrenFiltered("tr").Each(func(j int, tr *goquery.Selection) {
			rows = append(rows, rawRow{cells: parseRow(tr), head: head})
		})
	})

	if len(rows) == 0 {
		return Table{}, false
	}

	headerRows := countHeaderRows(rows)
	grid := expand(rows)

	width := 0
	for _, line := range grid {
		if len(line) > width {
			width = len(line)
		}
	}
	for i := range grid {
		for len(grid[i]) < width {
			grid[i] = append(grid[i], "")
		}
	}

	t := Table{
		Columns: columnNames(grid[:headerRows], width),
		Rows:    grid[headerRows:],
	}
	if t.Rows == nil {
		t.Rows = [][]string{}
	}
	return t, true
}

func parseRow(tr *goquery.Selection) []cell {
	var cells []cell
	tr.ChildrenFiltered("td, th").Each(func(i int, s *goquery.Selection) {
		node := s.Nodes[0]
		cells = append(cells, cell{
			text:    scraper.NormalizeWhitespace(scraper.ExtractText(node)),
			header:  node.Data == "th",
			rowspan: spanAttr(node, "rowspan", maxRowspan),
			colspan: spanAttr(node, "colspan", maxColspan),
		})
	})
	return cells
}

func spanAttr(n *html.Node, key string, limit int) int {
	for _, attr := range n.Attr {
		if attr.Key != key {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(attr.Val))
		if err != nil || v < 1 {
			return 1
		}
		if v > limit {
			return limit
		}
		return v
	}
	return 1
}

// countHeaderRows returns how many leading rows name the columns: the
// <thead> rows when present, else the leading rows made only of <th>.
func countHeaderRows(rows []rawRow) int {
	n := 0
	for _, row := range rows {
		if !row.head {
			break
		}
		n++
	}
	if n > 0 {
		return n
	}

	for _, row := range rows {
		if len(row.cells) == 0 || !allHeaders(row.cells) {
			break
		}
		n++
	}
	// A table made only of <th> rows keeps its last row as data
	if n == len(rows) && n > 0 {
		n--
	}
	return n
}

func allHeaders(cells []cell) bool {
	for _, c := range cells {
		if !c.header {
			return false
		}
	}
	return true
}

// expand lays cells out on a grid, copying colspan and rowspan cells into
// every position they cover
func expand(rows []rawRow) [][]string {
	grid := make([][]string, 0, len(rows))
	var pending []span

	for _, row := range rows {
		line := []string{}
		col := 0
		fill := func() {
			for col < len(pending) && pending[col].remaining > 0 {
				line = append(line, pending[col].text)
				pending[col].remaining--
				col++
			}
		}

		for _, c := range row.cells {
			fill()
			for k := 0; k < c.colspan; k++ {
				line = append(line, c.text)
				if c.rowspan > 1 {
					for len(pending) <= col {
						pending = append(pending, span{})
					}
					pending[col] = span{text: c.text, remaining: c.rowspan - 1}
				}
				col++
			}
		}
		fill()

		grid = append(grid, line)
	}
	return grid
}

// columnNames joins stacked header rows per column; empty names fall back
// to the column position
func columnNames(header [][]string, width int) []string {
	if len(header) == 0 {
		return positionalColumns(width)
	}

	names := make([]string, width)
	for i := 0; i < width; i++ {
		var parts []string
		for _, line := range header {
			v := line[i]
			if v == "" || (len(parts) > 0 && parts[len(parts)-1] == v) {
				continue
			}
			parts = append(parts, v)
		}
		if len(parts) == 0 {
			names[i] = strconv.Itoa(i)
			continue
		}
		names[i] = strings.Join(parts, " / ")
	}
	return names
}
