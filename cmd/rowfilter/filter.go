package main

import (
	"errors"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/rowfilter/pkg/htmltable"
	"github.com/dmitrymomot/rowfilter/pkg/logger"
	"github.com/dmitrymomot/rowfilter/pkg/rowfilter"
)

const (
	flagQuery = "query"
	flagInput = "input"
	flagTable = "table"
	flagOut   = "out"
)

var filterCommand = &cli.Command{
	Name:      "filter",
	Usage:     "hide table rows whose first cell does not contain the query",
	ArgsUsage: "[FILE|-]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagQuery,
			Aliases: []string{"q"},
			Usage:   "search query; defaults to the value of the search input",
		},
		&cli.StringFlag{
			Name:  flagInput,
			Value: rowfilter.DefaultInputID,
			Usage: "id of the search input",
		},
		&cli.StringFlag{
			Name:  flagTable,
			Value: rowfilter.DefaultTableID,
			Usage: "id of the table to filter",
		},
		&cli.StringFlag{
			Name:    flagOut,
			Aliases: []string{"o"},
			Usage:   "write the filtered document to `FILE` instead of stdout",
		},
	},
	Action: filterAction,
}

func filterAction(c *cli.Context) error {
	log := logger.New(
		logger.WithOutput(c.App.ErrWriter),
		logger.WithFormat(logger.FormatText),
		logger.WithAttr(logger.Component("filter")),
	)

	in, closeIn, err := openInput(c.App.Reader, c.Args().First())
	if err != nil {
		return err
	}
	defer closeIn()

	doc, err := htmltable.Parse(in)
	if err != nil {
		return err
	}

	inputID, tableID := c.String(flagInput), c.String(flagTable)
	stats, query, err := filterDocument(doc, c.IsSet(flagQuery), c.String(flagQuery), inputID, tableID)
	if err != nil {
		log.Error("filter failed", logger.TableID(tableID), logger.Error(err))
		return err
	}

	out, closeOut, err := openOutput(c.App.Writer, c.String(flagOut))
	if err != nil {
		return err
	}
	if err := doc.Render(out); err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}

	log.Info("rows filtered",
		logger.Query(query),
		logger.TableID(tableID),
		logger.FilterStats(stats.Shown, stats.Hidden, stats.Skipped),
	)
	return nil
}

// filterDocument filters the table with an explicit query, reflecting it in
// the search input when one exists, or with the input's current value.
func filterDocument(doc *htmltable.Document, hasQuery bool, query, inputID, tableID string) (rowfilter.Stats, string, error) {
	if !hasQuery {
		q, _ := doc.InputValue(inputID)
		stats, err := rowfilter.FilterByID(doc, inputID, tableID)
		return stats, q, err
	}

	table, ok := doc.Table(tableID)
	if !ok {
		return rowfilter.Stats{}, query, rowfilter.ErrTableNotFound
	}
	doc.SetInputValue(inputID, query)
	stats, err := rowfilter.Apply(query, table)
	return stats, query, err
}

func openInput(stdin io.Reader, name string) (io.Reader, func(), error) {
	if name == "" || name == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(stdout io.Writer, name string) (io.Writer, func() error, error) {
	if name == "" || name == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() error {
		if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			return err
		}
		return nil
	}, nil
}
