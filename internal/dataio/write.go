package dataio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
)

// valueFormat is numpy's savetxt default: 18 significant decimals after the
// point, exponent notation.
const valueFormat = "%.18e\n"

// WriteVector writes v to w, one value per line.
func WriteVector(w io.Writer, v mat.Vector) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < v.Len(); i++ {
		if _, err := fmt.Fprintf(bw, valueFormat, v.AtVec(i)); err != nil {
			return fmt.Errorf("write value %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// WriteVectorFile writes v to path, creating or truncating the file.
func WriteVectorFile(path string, v mat.Vector) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", closeErr)
		}
	}()

	return WriteVector(f, v)
}
