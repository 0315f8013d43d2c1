// Package script parses and executes cache operation scripts.
//
// A script is line-oriented: one operation per line, blank lines and
// lines starting with '#' skipped. Supported operations:
//
//	put <key> <value>   store a value
//	get <key>           look a key up (promotes on hit)
//	peek <key>          look a key up without promoting
//	has <key>           membership test without promoting
//	len                 current entry count
//	keys                keys from most to least recently used
//	oldest              the entry next in line for eviction
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmurray2011/hoard/internal/errors"
)

// Kind identifies a script operation.
type Kind string

const (
	KindPut    Kind = "put"
	KindGet    Kind = "get"
	KindPeek   Kind = "peek"
	KindHas    Kind = "has"
	KindLen    Kind = "len"
	KindKeys   Kind = "keys"
	KindOldest Kind = "oldest"
)

// opNames lists every operation, for suggestion errors.
var opNames = []string{
	string(KindPut), string(KindGet), string(KindPeek), string(KindHas),
	string(KindLen), string(KindKeys), string(KindOldest),
}

// argCount maps each operation to the number of integer arguments it takes.
var argCount = map[Kind]int{
	KindPut:    2,
	KindGet:    1,
	KindPeek:   1,
	KindHas:    1,
	KindLen:    0,
	KindKeys:   0,
	KindOldest: 0,
}

// Op is a single parsed operation.
type Op struct {
	Kind  Kind
	Key   int
	Value int
	Line  int // 1-based line number in the source script
}

// String renders the op the way it appears in a script.
func (o Op) String() string {
	switch argCount[o.Kind] {
	case 2:
		return fmt.Sprintf("%s %d %d", o.Kind, o.Key, o.Value)
	case 1:
		return fmt.Sprintf("%s %d", o.Kind, o.Key)
	default:
		return string(o.Kind)
	}
}

// Parse reads a script and returns its operations in order.
// Parsing stops at the first malformed line.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		op, err := parseLine(line, lineNum)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	return ops, nil
}

func parseLine(line string, lineNum int) (Op, error) {
	fields := strings.Fields(line)
	kind := Kind(strings.ToLower(fields[0]))

	want, known := argCount[kind]
	if !known {
		return Op{}, errors.UnknownOpError(fields[0], lineNum, opNames)
	}

	args := fields[1:]
	if len(args) != want {
		return Op{}, fmt.Errorf("line %d: %s expects %d argument(s), got %d", lineNum, kind, want, len(args))
	}

	op := Op{Kind: kind, Line: lineNum}
	if want >= 1 {
		key, err := strconv.Atoi(args[0])
		if err != nil {
			return Op{}, fmt.Errorf("line %d: invalid key %q: must be an integer", lineNum, args[0])
		}
		op.Key = key
	}
	if want == 2 {
		value, err := strconv.Atoi(args[1])
		if err != nil {
			return Op{}, fmt.Errorf("line %d: invalid value %q: must be an integer", lineNum, args[1])
		}
		op.Value = value
	}

	return op, nil
}
