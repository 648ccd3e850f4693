package worker

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lgbarn/bitboard-chess-go/internal/engine"
	"github.com/lgbarn/bitboard-chess-go/internal/output"
)

// ReadItems reads one FEN per line. Blank lines and lines starting with
// '#' are skipped; Index is the 1-based line number.
func ReadItems(r io.Reader) ([]WorkItem, error) {
	var items []WorkItem
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, WorkItem{Index: line, Line: text})
	}
	return items, scanner.Err()
}

// FENProcessor returns a ProcessFunc that parses each line into its own
// Game built with opts and summarises it.
func FENProcessor(log logrus.FieldLogger, opts ...engine.Option) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		g, err := engine.NewGame(item.Line, opts...)
		if err != nil {
			log.WithFields(logrus.Fields{
				"line":  item.Index,
				"error": err,
			}).Warn("skipping record")
			return ProcessResult{
				Index:  item.Index,
				Record: output.FailedBatchRecord(item.Index, item.Line, err),
				Error:  err,
			}
		}
		return ProcessResult{
			Index:  item.Index,
			Record: output.NewBatchRecord(item.Index, item.Line, g),
		}
	}
}

// Run processes items on the pool and returns the results ordered by
// Index. progress, if non-nil, is called after each result. With failFast
// the pool is stopped at the first failed record, so items not yet
// processed produce no result.
func Run(p *Pool, items []WorkItem, failFast bool, progress func(done int)) []ProcessResult {
	p.Start()
	go func() {
		for _, item := range items {
			if p.IsStopped() {
				break
			}
			p.Submit(item)
		}
		p.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for res := range p.Results() {
		results = append(results, res)
		if failFast && res.Error != nil {
			p.Stop()
		}
		if progress != nil {
			progress(len(results))
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
