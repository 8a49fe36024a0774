package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/fatih/color"
)

type printer struct {
	opts     *options
	withName bool
	color    bool

	matchStyle *color.Color
	fileStyle  *color.Color
	lineStyle  *color.Color
	sepStyle   *color.Color
}

func newPrinter(opts *options, withName bool) (*printer, error) {
	p := &printer{
		opts:       opts,
		withName:   withName,
		matchStyle: color.New(color.FgRed, color.Bold),
		fileStyle:  color.New(color.FgMagenta),
		lineStyle:  color.New(color.FgGreen),
		sepStyle:   color.New(color.FgCyan),
	}

	styles := []*color.Color{p.matchStyle, p.fileStyle, p.lineStyle, p.sepStyle}
	switch opts.colorMode {
	case "auto":
		p.color = !color.NoColor
	case "always":
		p.color = true
		for _, s := range styles {
			s.EnableColor()
		}
	case "never":
		for _, s := range styles {
			s.DisableColor()
		}
	default:
		return nil, fmt.Errorf("invalid --color value %q (want auto, always or never)", opts.colorMode)
	}
	return p, nil
}

// wantAll reports whether a line needs every match rather than the first:
// -o prints each one and colour highlights each one.
func (p *printer) wantAll() bool {
	return p.opts.onlyMatching || p.color
}

func (p *printer) prefix(buf *bytes.Buffer, name string, lineNo, offset int) {
	if p.withName {
		buf.WriteString(p.fileStyle.Sprint(name))
		buf.WriteString(p.sepStyle.Sprint(":"))
	}
	if p.opts.lineNumber {
		buf.WriteString(p.lineStyle.Sprint(strconv.Itoa(lineNo)))
		buf.WriteString(p.sepStyle.Sprint(":"))
	}
	if p.opts.byteOffset {
		buf.WriteString(p.lineStyle.Sprint(strconv.Itoa(offset)))
		buf.WriteString(p.sepStyle.Sprint(":"))
	}
}

// printLine writes one matching line, or with -o each non-empty match on
// its own line. offset is the byte offset of the line within its source.
func (p *printer) printLine(buf *bytes.Buffer, name string, lineNo, offset int, line []byte, found []match) {
	if p.opts.onlyMatching {
		for _, m := range found {
			if m.end == m.start {
				continue
			}
			p.prefix(buf, name, lineNo, offset+m.start)
			buf.WriteString(p.matchStyle.Sprint(string(line[m.start:m.end])))
			buf.WriteByte('\n')
		}
		return
	}

	p.prefix(buf, name, lineNo, offset)
	last := 0
	for _, m := range found {
		if m.end == m.start {
			continue
		}
		buf.Write(line[last:m.start])
		buf.WriteString(p.matchStyle.Sprint(string(line[m.start:m.end])))
		last = m.end
	}
	buf.Write(line[last:])
	buf.WriteByte('\n')
}

func (p *printer) printCount(buf *bytes.Buffer, name string, n int) {
	if p.withName {
		buf.WriteString(p.fileStyle.Sprint(name))
		buf.WriteString(p.sepStyle.Sprint(":"))
	}
	buf.WriteString(strconv.Itoa(n))
	buf.WriteByte('\n')
}
