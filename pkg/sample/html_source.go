/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: html_source.go
Description: HTML table sample source. Column names come from the header cells of the
first matched table and rows from its data cells.
*/

package sample

import (
	"context"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
	"github.com/kleascm/guesstimate/pkg/schema"
)

// DefaultSelector picks the first table in the document
const DefaultSelector = "table"

// HTMLSource samples a table in an HTML document
type HTMLSource struct {
	opts Options
}

func (s *HTMLSource) Format() Format { return FormatHTML }

// Read reads the sample
func (s *HTMLSource) Read(ctx context.Context) (*Sample, error) {
	reader, closer, err := openInput(ctx, s.opts.Path, s.opts.Charset)
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return readHTML(ctx, reader, s.opts)
}

func readHTML(ctx context.Context, r io.Reader, opts Options) (*Sample, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}

	selector := opts.Selector
	if selector == "" {
		selector = DefaultSelector
	}
	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return nil, errors.WithHintf(errors.Wrapf(ErrNoTable, "selector %q", selector),
			"check --selector against the document")
	}

	var names []string
	table.Find("tr").First().Find("th").Each(func(_ int, th *goquery.Selection) {
		names = append(names, cellText(th))
	})

	rows := make([][]any, 0, opts.Limit)
	width := len(names)
	table.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		if len(rows) >= opts.Limit || ctx.Err() != nil {
			return false
		}
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return true
		}
		row := make([]any, 0, cells.Length())
		cells.Each(func(_ int, td *goquery.Selection) {
			row = append(row, cellText(td))
		})
		rows = append(rows, row)
		width = max(width, len(row))
		return true
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(names) == 0 {
		names = schema.DefaultColumnNames(width)
	}
	return &Sample{ColumnNames: names, Rows: rows}, nil
}

func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
