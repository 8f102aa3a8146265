// Package workload loads simulation workloads from the line-oriented text format
// or from YAML, and converts between the two.
package workload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cpusched/schedsim/sim"
)

// Parse failure categories. Use errors.Is to classify a *ParseError.
var (
	ErrMissingHeader    = errors.New("missing or misnamed header field")
	ErrBadNumber        = errors.New("non-integer numeric field")
	ErrUnknownScheduler = errors.New("unknown scheduler")
	ErrMissingQuantum   = errors.New("missing round-robin quantum")
	ErrBadProcessLine   = errors.New("unparseable process line")
	ErrMissingEnd       = errors.New("missing end marker")
	ErrInvalidWorkload  = errors.New("invalid workload")
)

// ParseError reports where a text workload went wrong. Line is 1-based;
// 0 means the problem was found at end of input.
type ParseError struct {
	Line int
	Err  error
	Msg  string
}

func (e *ParseError) Error() string {
	where := "end of input"
	if e.Line > 0 {
		where = fmt.Sprintf("line %d", e.Line)
	}
	if e.Msg == "" {
		return fmt.Sprintf("%s: %v", where, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", where, e.Err, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// line is a comment-stripped, non-blank input line split into fields.
type line struct {
	num    int
	fields []string
}

// ParseFile opens path and parses it as a text workload.
func ParseFile(path string) (*sim.Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workload %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file
	w, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing workload %s: %w", path, err)
	}
	return w, nil
}

// Parse reads a text workload:
//
//	processcount 2
//	runfor 8
//	use rr
//	quantum 2
//	process name P1 arrival 0 burst 3
//	process name P2 arrival 0 burst 3
//	end
//
// Text after '#' is a comment. The quantum line must follow "use rr" and is
// ignored for other schedulers. Lines after "end" are not read.
func Parse(r io.Reader) (*sim.Workload, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	next := func() (line, bool) {
		if len(lines) == 0 {
			return line{}, false
		}
		l := lines[0]
		lines = lines[1:]
		return l, true
	}

	w := &sim.Workload{}

	count, err := headerInt(next, "processcount")
	if err != nil {
		return nil, err
	}
	w.NumProcesses = int(count)

	if w.RunFor, err = headerInt(next, "runfor"); err != nil {
		return nil, err
	}

	use, ok := next()
	if !ok {
		return nil, &ParseError{Err: ErrMissingHeader, Msg: `expected "use <scheduler>"`}
	}
	if use.fields[0] != "use" || len(use.fields) != 2 {
		return nil, &ParseError{Line: use.num, Err: ErrMissingHeader, Msg: `expected "use <scheduler>"`}
	}
	w.Algorithm = use.fields[1]
	if !sim.IsValidScheduler(w.Algorithm) {
		return nil, &ParseError{Line: use.num, Err: ErrUnknownScheduler,
			Msg: fmt.Sprintf("%q; valid: %v", w.Algorithm, sim.ValidSchedulerNames())}
	}

	if w.Algorithm == sim.SchedulerRR {
		q, ok := next()
		if !ok {
			return nil, &ParseError{Err: ErrMissingQuantum}
		}
		if q.fields[0] != "quantum" || len(q.fields) != 2 {
			return nil, &ParseError{Line: q.num, Err: ErrMissingQuantum, Msg: `expected "quantum <int>" after "use rr"`}
		}
		if w.Quantum, err = parseInt(q, q.fields[1]); err != nil {
			return nil, err
		}
		if w.Quantum <= 0 {
			return nil, &ParseError{Line: q.num, Err: ErrMissingQuantum, Msg: fmt.Sprintf("quantum must be positive, got %d", w.Quantum)}
		}
	}

	ended := false
scan:
	for {
		l, ok := next()
		if !ok {
			break
		}
		switch l.fields[0] {
		case "end":
			ended = true
			break scan
		case "quantum":
			logrus.Warnf("line %d: quantum is ignored for scheduler %q", l.num, w.Algorithm)
		case "process":
			p, err := parseProcess(l)
			if err != nil {
				return nil, err
			}
			w.Processes = append(w.Processes, p)
		default:
			return nil, &ParseError{Line: l.num, Err: ErrBadProcessLine, Msg: fmt.Sprintf("unexpected keyword %q", l.fields[0])}
		}
	}
	if !ended {
		return nil, &ParseError{Err: ErrMissingEnd}
	}

	if w.NumProcesses != len(w.Processes) {
		logrus.Warnf("processcount is %d but %d processes were declared", w.NumProcesses, len(w.Processes))
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkload, err)
	}
	return w, nil
}

func readLines(r io.Reader) ([]line, error) {
	var lines []line
	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, line{num: num, fields: fields})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}
	return lines, nil
}

func headerInt(next func() (line, bool), keyword string) (int64, error) {
	l, ok := next()
	if !ok {
		return 0, &ParseError{Err: ErrMissingHeader, Msg: fmt.Sprintf("expected %q", keyword)}
	}
	if l.fields[0] != keyword || len(l.fields) != 2 {
		return 0, &ParseError{Line: l.num, Err: ErrMissingHeader, Msg: fmt.Sprintf("expected %q <int>", keyword)}
	}
	return parseInt(l, l.fields[1])
}

func parseInt(l line, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &ParseError{Line: l.num, Err: ErrBadNumber, Msg: fmt.Sprintf("%q", s)}
	}
	return v, nil
}

// parseProcess reads "process name <id> arrival <int> burst <int>".
// The key/value pairs may come in any order but each must appear exactly once.
func parseProcess(l line) (*sim.Process, error) {
	pairs := l.fields[1:]
	if len(pairs) != 6 {
		return nil, &ParseError{Line: l.num, Err: ErrBadProcessLine, Msg: "expected name, arrival and burst"}
	}
	var (
		name           string
		arrival, burst int64
		haveA, haveB   bool
		err            error
	)
	for i := 0; i < len(pairs); i += 2 {
		key, val := pairs[i], pairs[i+1]
		switch key {
		case "name":
			if name != "" {
				return nil, &ParseError{Line: l.num, Err: ErrBadProcessLine, Msg: "name given twice"}
			}
			name = val
		case "arrival":
			if haveA {
				return nil, &ParseError{Line: l.num, Err: ErrBadProcessLine, Msg: "arrival given twice"}
			}
			if arrival, err = parseInt(l, val); err != nil {
				return nil, err
			}
			haveA = true
		case "burst":
			if haveB {
				return nil, &ParseError{Line: l.num, Err: ErrBadProcessLine, Msg: "burst given twice"}
			}
			if burst, err = parseInt(l, val); err != nil {
				return nil, err
			}
			haveB = true
		default:
			return nil, &ParseError{Line: l.num, Err: ErrBadProcessLine, Msg: fmt.Sprintf("unknown field %q", key)}
		}
	}
	if name == "" || !haveA || !haveB {
		return nil, &ParseError{Line: l.num, Err: ErrBadProcessLine, Msg: "expected name, arrival and burst"}
	}
	if arrival < 0 {
		return nil, &ParseError{Line: l.num, Err: ErrBadProcessLine, Msg: fmt.Sprintf("arrival must be non-negative, got %d", arrival)}
	}
	if burst <= 0 {
		return nil, &ParseError{Line: l.num, Err: ErrBadProcessLine, Msg: fmt.Sprintf("burst must be positive, got %d", burst)}
	}
	return sim.NewProcess(name, arrival, burst), nil
}
