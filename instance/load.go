// Package instance - file loaders and writers.
package instance

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/knapsack/model"
)

// maxLineBytes bounds a single line; a 10 000-item instance needs ~120 KiB.
const maxLineBytes = 16 << 20

// scanLines calls fn for every non-blank line of r with its 1-based number.
func scanLines(r io.Reader, name string, fn func(line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var n int
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return errors.Wrapf(err, "%s:%d", name, n)
		}
	}

	return errors.Wrapf(sc.Err(), "%s: read", name)
}

// ReadProblems decodes and validates every problem line of r. name is used
// in error messages only.
func ReadProblems(r io.Reader, name string) ([]model.Problem, error) {
	var out []model.Problem
	err := scanLines(r, name, func(line string) error {
		p, err := ParseProblem(line)
		if err != nil {
			return err
		}
		if err = model.Validate(p); err != nil {
			return err
		}
		out = append(out, p)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ReadSolutions decodes every solution line of r.
func ReadSolutions(r io.Reader, name string) ([]model.Solution, error) {
	var out []model.Solution
	err := scanLines(r, name, func(line string) error {
		s, err := ParseSolution(line)
		if err != nil {
			return err
		}
		out = append(out, s)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// LoadProblems reads the problem file at path.
func LoadProblems(path string) ([]model.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open problems")
	}
	defer f.Close()

	return ReadProblems(f, path)
}

// LoadSolutions reads the reference solution file at path.
func LoadSolutions(path string) ([]model.Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open solutions")
	}
	defer f.Close()

	return ReadSolutions(f, path)
}

// IndexSolutions maps solutions by id.
func IndexSolutions(sols []model.Solution) (map[int]model.Solution, error) {
	m := make(map[int]model.Solution, len(sols))
	for _, s := range sols {
		if _, dup := m[s.ID]; dup {
			return nil, errors.Wrapf(ErrDuplicateID, "solution %d", s.ID)
		}
		m[s.ID] = s
	}

	return m, nil
}

// WriteProblems writes one line per problem.
func WriteProblems(w io.Writer, ps []model.Problem) error {
	bw := bufio.NewWriter(w)
	for _, p := range ps {
		if _, err := bw.WriteString(FormatProblem(p) + "\n"); err != nil {
			return errors.Wrap(err, "write problems")
		}
	}

	return errors.Wrap(bw.Flush(), "write problems")
}
