package dataio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/mat"
)

// DefaultDelimiter separates fields when no delimiter is configured.
const DefaultDelimiter = " "

// commentPrefix starts a comment that runs to end of line.
const commentPrefix = "#"

// maxLineBytes bounds a single input line. Wide design matrices produce long
// lines, so the bufio default of 64 KiB is too small.
const maxLineBytes = 64 << 20

// Options controls how text files are parsed.
type Options struct {
	// Delimiter separates fields within a line. Must be non-empty.
	Delimiter string

	// SkipRows is the number of leading physical lines to discard.
	SkipRows int
}

// DefaultOptions returns single-space delimited parsing with no skipped rows.
func DefaultOptions() Options {
	return Options{Delimiter: DefaultDelimiter}
}

// LoadMatrix reads a delimited text file into an n×m matrix.
func LoadMatrix(path string, opts Options) (*mat.Dense, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadMatrix(f, path, opts)
}

// LoadVector reads a delimited text file into a vector. The file may hold a
// single column or a single row.
func LoadVector(path string, opts Options) (*mat.VecDense, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadVector(f, path, opts)
}

// ReadMatrix parses delimited text from r. name is used in error messages.
func ReadMatrix(r io.Reader, name string, opts Options) (*mat.Dense, error) {
	data, rows, cols, err := readTable(r, name, opts)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(rows, cols, data), nil
}

// ReadVector parses delimited text from r as a single column or single row.
func ReadVector(r io.Reader, name string, opts Options) (*mat.VecDense, error) {
	data, rows, cols, err := readTable(r, name, opts)
	if err != nil {
		return nil, err
	}
	if rows > 1 && cols > 1 {
		return nil, parseError(name, 0, fmt.Sprintf("expected a single column or row, got %d×%d", rows, cols), nil)
	}
	return mat.NewVecDense(len(data), data), nil
}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeFileNotFound, Path: path, Message: "file not found", Err: err}
	}
	if err != nil {
		return nil, parseError(path, 0, "cannot open file", err)
	}
	return f, nil
}

// readTable returns the row-major values of the table along with its shape.
func readTable(r io.Reader, name string, opts Options) ([]float64, int, int, error) {
	if opts.Delimiter == "" {
		return nil, 0, 0, parseError(name, 0, "delimiter must not be empty", nil)
	}
	if opts.SkipRows < 0 {
		return nil, 0, 0, parseError(name, 0, fmt.Sprintf("skip rows must be >= 0, got %d", opts.SkipRows), nil)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		data []float64
		rows int
		cols int
		line int
	)

	for scanner.Scan() {
		line++
		if line <= opts.SkipRows {
			continue
		}

		text := scanner.Text()
		if i := strings.Index(text, commentPrefix); i >= 0 {
			// Whitespace before the comment would otherwise split into an
			// empty trailing field under a space delimiter.
			text = strings.TrimRightFunc(text[:i], unicode.IsSpace)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Split(text, opts.Delimiter)
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, 0, 0, parseError(name, line,
				fmt.Sprintf("inconsistent number of columns: got %d, expected %d", len(fields), cols), nil)
		}

		for i, field := range fields {
			field = strings.TrimSpace(field)
			if field == "" {
				return nil, 0, 0, parseError(name, line, fmt.Sprintf("empty field in column %d", i+1), nil)
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, 0, 0, parseError(name, line, fmt.Sprintf("cannot parse %q in column %d as a number", field, i+1), err)
			}
			data = append(data, v)
		}
		rows++
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, 0, parseError(name, line+1, "read failed", err)
	}
	if rows == 0 {
		return nil, 0, 0, parseError(name, 0, "no data rows", nil)
	}

	return data, rows, cols, nil
}
