// Package instance - single-line codec.
package instance

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/knapsack/model"
)

// Sentinel errors.
var (
	// ErrZeroID indicates a problem or solution line with id 0.
	ErrZeroID = errors.New("instance: zero id not permitted")

	// ErrMalformedLine indicates a missing, extra or non-numeric token.
	ErrMalformedLine = errors.New("instance: malformed line")

	// ErrDuplicateID indicates two reference solutions sharing an id.
	ErrDuplicateID = errors.New("instance: duplicate id")

	// ErrInvalidOptions indicates generator options out of range.
	ErrInvalidOptions = errors.New("instance: invalid generator options")
)

// tokens walks the whitespace-separated fields of one line.
type tokens struct {
	f   []string
	pos int
}

func (t *tokens) left() int { return len(t.f) - t.pos }

func (t *tokens) next(what string) (string, error) {
	if t.pos >= len(t.f) {
		return "", errors.Wrapf(ErrMalformedLine, "missing %s", what)
	}
	s := t.f[t.pos]
	t.pos++

	return s, nil
}

func (t *tokens) int(what string) (int, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedLine, "%s %q is not an integer", what, s)
	}

	return v, nil
}

// count reads a non-negative length field.
func (t *tokens) count(what string) (int, error) {
	v, err := t.int(what)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, errors.Wrapf(ErrMalformedLine, "negative %s %d", what, v)
	}

	return v, nil
}

func (t *tokens) end() error {
	if t.left() > 0 {
		return errors.Wrapf(ErrMalformedLine, "%d trailing tokens", t.left())
	}

	return nil
}

// ParseProblem decodes one problem line. Values are checked syntactically
// only; use model.Validate for ranges.
func ParseProblem(line string) (model.Problem, error) {
	var (
		t = tokens{f: strings.Fields(line)}
		p model.Problem
	)
	id, err := t.int("id")
	if err != nil {
		return p, err
	}
	if id == 0 {
		return p, ErrZeroID
	}
	size, err := t.count("size")
	if err != nil {
		return p, err
	}
	if p.Capacity, err = t.int("capacity"); err != nil {
		return p, err
	}
	if id < 0 {
		if p.Threshold, err = t.int("threshold"); err != nil {
			return p, err
		}
		p.HasThreshold = true
		id = -id
	}
	p.ID = id

	// A size larger than the line can back is caught by the missing-token
	// check; capping the hint keeps a bogus size from allocating.
	hint := size
	if hint > t.left()/2 {
		hint = t.left() / 2
	}
	p.Items = make([]model.Item, 0, hint)
	for i := 0; i < size; i++ {
		var it model.Item
		if it.Weight, err = t.int("weight"); err != nil {
			return p, errors.WithMessagef(err, "item %d", i)
		}
		if it.Cost, err = t.int("cost"); err != nil {
			return p, errors.WithMessagef(err, "item %d", i)
		}
		p.Items = append(p.Items, it)
	}

	return p, t.end()
}

// ParseSolution decodes one reference solution line.
func ParseSolution(line string) (model.Solution, error) {
	var (
		t = tokens{f: strings.Fields(line)}
		s model.Solution
	)
	id, err := t.int("id")
	if err != nil {
		return s, err
	}
	switch {
	case id == 0:
		return s, ErrZeroID
	case id < 0:
		return s, errors.Wrapf(ErrMalformedLine, "negative solution id %d", id)
	}
	s.ID = id
	if s.Size, err = t.count("size"); err != nil {
		return s, err
	}
	if s.Cost, err = t.count("cost"); err != nil {
		return s, err
	}
	if s.Size > t.left() {
		return s, errors.Wrapf(ErrMalformedLine, "%d bits for size %d", t.left(), s.Size)
	}
	s.Selection = make([]bool, s.Size)
	for i := range s.Selection {
		b, err := t.next("bit")
		if err != nil {
			return s, err
		}
		switch b {
		case "1":
			s.Selection[i] = true
		case "0":
		default:
			return s, errors.Wrapf(ErrMalformedLine, "bit %d is %q, want 0 or 1", i, b)
		}
	}

	return s, t.end()
}

// FormatProblem encodes p as one line, the inverse of ParseProblem.
func FormatProblem(p model.Problem) string {
	var b []byte
	id := p.ID
	if p.HasThreshold {
		id = -id
	}
	b = strconv.AppendInt(b, int64(id), 10)
	b = appendInts(b, p.Size(), p.Capacity)
	if p.HasThreshold {
		b = appendInts(b, p.Threshold)
	}
	for _, it := range p.Items {
		b = appendInts(b, it.Weight, it.Cost)
	}

	return string(b)
}

// FormatSolution encodes s as one line. A solution without selection has no
// bits.
func FormatSolution(s model.Solution) string {
	b := strconv.AppendInt(nil, int64(s.ID), 10)
	b = appendInts(b, s.Size, s.Cost)
	for _, x := range s.Selection {
		if x {
			b = append(b, " 1"...)
		} else {
			b = append(b, " 0"...)
		}
	}

	return string(b)
}

func appendInts(b []byte, vs ...int) []byte {
	for _, v := range vs {
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(v), 10)
	}

	return b
}
