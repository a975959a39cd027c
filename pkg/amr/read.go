package amr

import (
	"errors"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	perrors "github.com/matzehuels/penman/pkg/errors"
	"github.com/matzehuels/penman/pkg/graph"
	"github.com/matzehuels/penman/pkg/penman"
)

// ReadOptions configures a Reader.
type ReadOptions struct {
	// Full keeps wiki attributes as properties.
	Full bool
	// Reify materializes attributes as nodes.
	Reify bool
	// Text, when set, replaces the "# ::snt" sentence of every graph.
	Text string
	// Quiet suppresses the informational log line for attached input.
	Quiet bool
	// Alignment is an optional alignment stream read in lockstep with the
	// graph stream.
	Alignment io.Reader
	// Logger defaults to log.Default().
	Logger *log.Logger
}

// Reader decodes a penman stream into semantic graphs, one block at a time.
type Reader struct {
	blocks *BlockReader
	opts   ReadOptions
	logger *log.Logger
	n      int // next id for blocks without one
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader, opts ReadOptions) *Reader {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Reader{
		blocks: NewBlockReader(r, ReadAlignment(opts.Alignment), logger),
		opts:   opts,
		logger: logger,
	}
}

// Next returns the graph of the next block and its alignment overlay (nil
// without alignment). It returns io.EOF after the last block.
//
// A block that fails to parse yields an ErrCodeParse error naming its id and
// text; the Reader remains usable and the following call moves on to the
// next block.
func (r *Reader) Next() (*graph.Graph, *graph.Graph, error) {
	blk, err := r.blocks.Next()
	if err != nil {
		return nil, nil, err
	}

	rec, err := penman.Parse(blk.Body)
	if err != nil {
		return nil, nil, perrors.Wrap(perrors.ErrCodeParse, err, "failed to parse #%s (%s)", blk.ID, blk.Body)
	}

	id := r.graphID(blk.ID)
	g, overlay, err := Convert(id, rec, ConvertOptions{
		Full:   r.opts.Full,
		Reify:  r.opts.Reify,
		Logger: r.logger,
	}, blk.Alignment)
	if err != nil {
		return nil, nil, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "failed to convert #%s", id)
	}

	text := r.opts.Text
	if text == "" {
		text = blk.Sentence
	}
	if text != "" {
		g.SetInput(text)
		if !r.opts.Quiet {
			r.logger.Info("attached input", "graph", id, "text", text)
		}
	}
	return g, overlay, nil
}

// graphID normalizes known corpus ids, keeps unknown ones, and numbers
// blocks without an id from 0.
func (r *Reader) graphID(raw string) string {
	if raw == "" {
		id := strconv.Itoa(r.n)
		r.n++
		return id
	}
	id, err := ConvertID(raw)
	if err != nil {
		r.logger.Debug("keeping graph id", "id", raw, "err", err)
		return raw
	}
	return id
}

// Pair is a semantic graph with its optional alignment overlay.
type Pair struct {
	Graph   *graph.Graph
	Overlay *graph.Graph
}

// ReadAll reads every block of r. With skipErrors, blocks that fail to parse
// or convert are logged and skipped; otherwise the first such error stops
// reading and is returned along with the graphs read so far.
func ReadAll(r io.Reader, opts ReadOptions, skipErrors bool) ([]Pair, error) {
	rd := NewReader(r, opts)
	var out []Pair
	for {
		g, overlay, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			if skipErrors && (perrors.Is(err, perrors.ErrCodeParse) || perrors.Is(err, perrors.ErrCodeInvalidInput)) {
				rd.logger.Error("skipping graph", "err", err)
				continue
			}
			return out, err
		}
		out = append(out, Pair{Graph: g, Overlay: overlay})
	}
}
