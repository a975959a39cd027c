package amr

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Block is one graph of a penman stream together with its metadata.
type Block struct {
	ID        string // from "# ::id", empty if absent
	Sentence  string // from "# ::snt", empty if absent
	Body      string // graph lines joined by single spaces
	Alignment Alignment
}

// BlockReader splits a penman stream into blocks separated by blank lines
// and pairs each block with the next entry of an alignment source.
type BlockReader struct {
	sc     *bufio.Scanner
	align  *AlignmentSource
	logger *log.Logger
}

// NewBlockReader returns a reader over r. align may be nil, in which case no
// block carries an alignment.
func NewBlockReader(r io.Reader, align *AlignmentSource, logger *log.Logger) *BlockReader {
	if align == nil {
		align = ReadAlignment(nil)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &BlockReader{sc: newScanner(r), align: align, logger: logger}
}

// Next returns the next block, or io.EOF after the last one.
func (b *BlockReader) Next() (*Block, error) {
	var (
		blk   Block
		lines []string
	)
	for b.sc.Scan() {
		line := strings.TrimSpace(b.sc.Text())
		switch {
		case line == "":
			if len(lines) > 0 {
				return b.emit(&blk, lines), nil
			}
			blk = Block{}
		case strings.HasPrefix(line, "#"):
			if v, ok := metaValue(line, "# ::id"); ok {
				blk.ID = firstField(v)
			} else if v, ok := metaValue(line, "# ::snt"); ok {
				blk.Sentence = v
			}
		default:
			lines = append(lines, line)
		}
	}
	if err := b.sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) > 0 {
		return b.emit(&blk, lines), nil
	}
	return nil, io.EOF
}

func (b *BlockReader) emit(blk *Block, lines []string) *Block {
	blk.Body = strings.Join(lines, " ")

	id, align, err := b.align.Next()
	switch {
	case err != nil:
		b.logger.Warn("missing alignment", "graph", blk.ID, "err", err)
	case align != nil && id != blk.ID:
		b.logger.Warn("alignment id mismatch, ignoring alignment", "graph", blk.ID, "alignment", id)
	default:
		blk.Alignment = align
	}
	return blk
}
