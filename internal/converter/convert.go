package converter

import (
	"errors"
	"io"
)

// Convert streams a source dump from in to the target script on out.
// Malformed clauses are reported through opts.OnDiagnostic and dropped; only
// a ResourceError aborts the run, leaving the output without its final COMMIT.
func Convert(in io.Reader, out io.Writer, opts Options) (Stats, error) {
	src := NewLineSource(in, opts.InputPath)
	asm := NewAssembler(out, opts.OutputPath)
	p := NewParser(asm, opts)

	if err := asm.Preamble(); err != nil {
		return p.Stats(), err
	}
	for {
		line, ok, err := src.Next()
		if err != nil {
			if ferr := asm.Flush(); ferr != nil {
				err = errors.Join(err, ferr)
			}
			return p.Stats(), err
		}
		if !ok {
			break
		}
		if err := p.Feed(src.LineNo(), line); err != nil {
			return p.Stats(), err
		}
		if opts.OnLine != nil {
			opts.OnLine(p.Stats())
		}
	}
	return p.Stats(), p.Finish()
}

// ConvertFiles opens the input and output paths ("-" for the standard
// streams) and runs Convert. Both are closed on every exit path.
func ConvertFiles(inPath, outPath string, opts Options) (stats Stats, err error) {
	opts.InputPath, opts.OutputPath = inPath, outPath

	in, err := OpenInput(inPath)
	if err != nil {
		return stats, err
	}
	defer in.Close()

	out, err := OpenOutput(outPath)
	if err != nil {
		return stats, err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &ResourceError{Op: "close", Path: outPath, Err: cerr}
		}
	}()

	return Convert(in, out, opts)
}
