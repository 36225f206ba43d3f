// Command drafthtml converts between Draft.js raw content, HTML and Markdown.
//
// Usage:
//
//	drafthtml to-html [-i doc.json] [-f json|yaml] [-o out.html]
//	drafthtml from-html [-i page.html] [-f json|yaml] [--charset name] [--sequential-keys]
//	drafthtml from-markdown [-i README.md] [-f json|yaml] [--sequential-keys]
package main

import (
	"fmt"
	"io"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run dispatches a command. Usage text for bad invocations goes to stderr.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return fmt.Errorf("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "to-html":
		return runToHTML(rest, stdin, stdout, stderr)
	case "from-html":
		return runFromHTML(rest, stdin, stdout, stderr)
	case "from-markdown":
		return runFromMarkdown(rest, stdin, stdout, stderr)
	case "version", "--version":
		fmt.Fprintf(stdout, "drafthtml %s\n", Version)
		return nil
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: drafthtml <command> [flags]

Commands:
  to-html        render a Draft.js document (JSON or YAML) as HTML
  from-html      parse HTML into a Draft.js document
  from-markdown  import Markdown as a Draft.js document
  version        print the version

Flags:
  -i, --input string     input file (default stdin)
  -o, --output string    output file (default stdout)
  -f, --format string    document format: json or yaml (default "json")
      --charset string   input character encoding, e.g. windows-1252 (default utf-8)
      --sequential-keys  number block keys 0, 1, 2, ... instead of random keys
                         (from-html and from-markdown only)`)
}
