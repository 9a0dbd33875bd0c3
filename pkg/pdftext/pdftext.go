// Package pdftext turns the text layer of a PDF file into the ordered line
// stream the extraction package consumes. It is a convenience adapter for
// the CLI; the extraction core itself accepts lines from any source.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Lines extracts the text rows of every page, top to bottom, one string per
// row. Word fragments within a row are joined with single spaces. Pages
// without a text layer contribute nothing; scanned-image PDFs therefore
// yield no lines rather than an error.
func Lines(path string) ([]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("reading page %d of %s: %w", pageNum, path, err)
		}

		for _, row := range rows {
			var b strings.Builder
			for i, word := range row.Content {
				if i > 0 {
					b.WriteString(" ")
				}
				b.WriteString(word.S)
			}
			lines = append(lines, b.String())
		}
	}

	return lines, nil
}
