package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/riverfjs/drafthtml"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// commonFlags are shared by every command. sequentialKeys is only registered
// for the commands that produce a document.
type commonFlags struct {
	input          string
	output         string
	format         string
	charset        string
	sequentialKeys bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags, withKeys bool) {
	fs.StringVarP(&f.input, "input", "i", "", "input file (default stdin)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.StringVarP(&f.format, "format", "f", formatJSON, "document format: json or yaml")
	fs.StringVar(&f.charset, "charset", "", "input character encoding, e.g. windows-1252 (default utf-8)")
	if withKeys {
		fs.BoolVar(&f.sequentialKeys, "sequential-keys", false, "number block keys 0, 1, 2, ...")
	}
}

func parseFlags(name string, args []string, withKeys bool, stderr io.Writer) (*commonFlags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &commonFlags{}
	addCommonFlags(fs, f, withKeys)
	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if f.format != formatJSON && f.format != formatYAML {
		return nil, fmt.Errorf("invalid --format %q: want json or yaml", f.format)
	}
	if _, err := inputDecoder(f.charset); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 && f.input == "" {
		f.input = fs.Arg(0)
	}
	return f, nil
}

func (f *commonFlags) options() []drafthtml.Option {
	if f.sequentialKeys {
		return []drafthtml.Option{drafthtml.WithKeyGenerator(drafthtml.SequentialKeys())}
	}
	return nil
}

func readInput(f *commonFlags, stdin io.Reader) ([]byte, error) {
	var r io.Reader = stdin
	if f.input != "" && f.input != "-" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		defer file.Close()
		r = file
	}
	dec, err := decodeReader(r, f.charset)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

func writeOutput(f *commonFlags, stdout io.Writer, data []byte) error {
	if f.output == "" || f.output == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(f.output, data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func encodeDocument(f *commonFlags, doc *drafthtml.Document) ([]byte, error) {
	if f.format == formatYAML {
		return drafthtml.MarshalDocumentYAML(doc)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return append(data, '\n'), nil
}

func runToHTML(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	f, err := parseFlags("to-html", args, false, stderr)
	if err != nil {
		return err
	}
	data, err := readInput(f, stdin)
	if err != nil {
		return err
	}

	var doc *drafthtml.Document
	if f.format == formatYAML {
		doc, err = drafthtml.UnmarshalDocumentYAML(data)
	} else {
		doc, err = drafthtml.UnmarshalDocument(data)
	}
	if err != nil {
		return err
	}
	return writeOutput(f, stdout, []byte(drafthtml.ToHTML(doc, f.options()...)+"\n"))
}

func runFromHTML(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	f, err := parseFlags("from-html", args, true, stderr)
	if err != nil {
		return err
	}
	data, err := readInput(f, stdin)
	if err != nil {
		return err
	}
	doc := drafthtml.FromHTML(string(data), f.options()...)
	out, err := encodeDocument(f, &doc)
	if err != nil {
		return err
	}
	return writeOutput(f, stdout, out)
}

func runFromMarkdown(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	f, err := parseFlags("from-markdown", args, true, stderr)
	if err != nil {
		return err
	}
	data, err := readInput(f, stdin)
	if err != nil {
		return err
	}
	doc := drafthtml.FromMarkdown(string(data), f.options()...)
	out, err := encodeDocument(f, &doc)
	if err != nil {
		return err
	}
	return writeOutput(f, stdout, out)
}
