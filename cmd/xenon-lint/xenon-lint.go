package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/xenon"
	"github.com/lestrrat-go/xenon/internal/cliutil"
	"github.com/lestrrat-go/xenon/node"
)

type cmdopts struct {
	Format   bool `long:"format"`
	Blanks   bool `long:"blanks"`
	Validate bool `long:"validate"`
	Version  bool `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("xenon-lint: using xenon version %s\n", xenon.Version)
}

func showUsage() {
	fmt.Printf(`Usage : xenon-lint [options] XMLfiles ...
	Parse the XML files and output the result of the parsing
	--format : reformat and reindent the output
	--blanks : keep whitespace between markup as nodes
	--validate : enforce name and attribute validity
	--version : display the version of the XML library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	var flagset node.ParseOption
	if opts.Blanks {
		flagset |= node.ParseOptionPreserveWhitespace
	}
	if opts.Validate {
		flagset |= node.ParseOptionValidate
	}

	inputCh := make(chan io.Reader)
	errCh := make(chan error)
	switch {
	case len(args) > 0: // filename present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- fh
			}
		}()
	case !cliutil.IsTty(os.Stdin.Fd()):
		go func() {
			defer close(inputCh)
			inputCh <- os.Stdin
		}()
	default:
		showUsage()
		return 1
	}

	p := xenon.NewParser(xenon.WithParseFlags(flagset))
	for in := range inputCh {
		doc, err := p.ParseReader(in)
		if c, ok := in.(io.Closer); ok {
			_ = c.Close()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		d := xenon.Dumper{Pretty: opts.Format}
		if err := d.DumpDoc(os.Stdout, doc); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		fmt.Println()
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s", err)
		return 1
	default:
	}

	return 0
}
