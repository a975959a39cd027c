package amr

import (
	"bufio"
	"io"
	"slices"
	"strconv"
	"strings"
)

// wikiPath is the property path whose alignments are dropped.
const wikiPath = "wiki"

// PathSpan is the set of character offsets aligned with one path of a node.
// An empty Path aligns the node itself; a one-segment Path aligns the
// property of that name.
type PathSpan struct {
	Path    []string
	Offsets map[int]struct{}
}

// Sorted returns the offsets in ascending order.
func (p *PathSpan) Sorted() []int {
	out := make([]int, 0, len(p.Offsets))
	for o := range p.Offsets {
		out = append(out, o)
	}
	slices.Sort(out)
	return out
}

// Alignment maps a node variable to its aligned paths, in the order the
// paths first appeared.
type Alignment map[string][]*PathSpan

// Add unions the closed range [start, end] into the span of token and path.
func (a Alignment) Add(token string, path []string, start, end int) {
	var ps *PathSpan
	for _, p := range a[token] {
		if slices.Equal(p.Path, path) {
			ps = p
			break
		}
	}
	if ps == nil {
		ps = &PathSpan{Path: slices.Clone(path), Offsets: make(map[int]struct{})}
		a[token] = append(a[token], ps)
	}
	for o := start; o <= end; o++ {
		ps.Offsets[o] = struct{}{}
	}
}

// Tokens returns the aligned node variables in sorted order.
func (a Alignment) Tokens() []string {
	out := make([]string, 0, len(a))
	for t := range a {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// AlignmentSource yields one alignment per blank-line delimited block of an
// alignment stream, in stream order.
type AlignmentSource struct {
	sc *bufio.Scanner
}

// ReadAlignment returns a source reading from r. A nil r gives a source
// that never runs out and always reports that no alignment is available.
func ReadAlignment(r io.Reader) *AlignmentSource {
	if r == nil {
		return &AlignmentSource{}
	}
	return &AlignmentSource{sc: newScanner(r)}
}

// Next returns the graph id and alignment of the next block. It returns
// io.EOF once the stream is exhausted. For a source without a stream it
// returns ("", nil, nil) forever.
func (s *AlignmentSource) Next() (string, Alignment, error) {
	if s.sc == nil {
		return "", nil, nil
	}

	var (
		id      string
		align   = Alignment{}
		started bool
	)
	for s.sc.Scan() {
		line := strings.TrimSpace(s.sc.Text())
		if line == "" {
			if started {
				return id, align, nil
			}
			continue
		}
		started = true
		if strings.HasPrefix(line, "#") {
			if v, ok := metaValue(line, "# ::id"); ok {
				id = firstField(v)
			}
			continue
		}
		parseAlignmentLine(align, line)
	}
	if err := s.sc.Err(); err != nil {
		return "", nil, err
	}
	if started {
		return id, align, nil
	}
	return "", nil, io.EOF
}

// parseAlignmentLine adds one "<token>[ :<path>]\t<start>-<end>" record.
// Malformed lines are skipped.
func parseAlignmentLine(align Alignment, line string) {
	fields := strings.Split(line, "\t")
	if len(fields) != 2 {
		return
	}
	lo, hi, ok := strings.Cut(strings.TrimSpace(fields[1]), "-")
	if !ok {
		return
	}
	start, err := strconv.Atoi(lo)
	if err != nil {
		return
	}
	end, err := strconv.Atoi(hi)
	if err != nil {
		return
	}

	parts := strings.Fields(fields[0])
	if len(parts) == 0 {
		return
	}
	if len(parts) > 1 {
		if seg, ok := strings.CutPrefix(parts[1], ":"); ok {
			if seg == wikiPath {
				return
			}
			parts[1] = seg
		}
	}
	align.Add(parts[0], parts[1:], start, end)
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return sc
}

// metaValue returns the text following prefix on a comment line.
func metaValue(line, prefix string) (string, bool) {
	v, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}
