package cmd

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxLineLen = 16 << 20

type result struct {
	name    string
	out     bytes.Buffer
	matches int
	err     error
}

// scanAll scans every source with at most jobs running at once. Results keep
// argument order; a failing source does not stop the others.
func scanAll(ctx context.Context, m matcher, p *printer, names []string, stdin io.Reader, jobs int, logger *zap.Logger) []*result {
	results := make([]*result, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, name := range names {
		res := &result{name: name}
		if name == "-" {
			res.name = stdinName
		}
		results[i] = res

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				res.err = err
				return nil
			}
			res.err = scanSource(name, stdin, m, p, res)
			logger.Debug("scanned",
				zap.String("file", res.name),
				zap.Int("matches", res.matches),
				zap.Error(res.err))
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func scanSource(name string, stdin io.Reader, m matcher, p *printer, res *result) error {
	if name == "-" {
		return scan(stdin, m, p, res)
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return scan(f, m, p, res)
}

func scan(r io.Reader, m matcher, p *printer, res *result) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	sc.Split(scanLines)

	offset := 0
	for lineNo := 1; sc.Scan(); lineNo++ {
		raw := sc.Bytes()
		line := bytes.TrimSuffix(raw, []byte{'\n'})

		found := m.find(line, p.wantAll())
		if len(found) > 0 {
			res.matches++
			if !p.opts.count {
				p.printLine(&res.out, res.name, lineNo, offset, line, found)
			}
		}
		offset += len(raw)
	}
	if err := sc.Err(); err != nil {
		return err
	}

	if p.opts.count {
		p.printCount(&res.out, res.name, res.matches)
	}
	return nil
}

// scanLines is bufio.ScanLines keeping the newline, so byte offsets stay
// exact for CRLF input.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
