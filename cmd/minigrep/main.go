package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"unicode/utf8"

	"github.com/quasilyte/minigrep"
)

// Following the grep tool convention.
const (
	exitMatched    = 0
	exitNotMatched = 1
	exitError      = 2
)

func main() {
	log.SetFlags(0)

	var args arguments
	parseFlags(&args)

	p := &program{
		args:   args,
		stdout: os.Stdout,
	}
	exitCode, err := p.run()
	if err != nil {
		log.Printf("error: %v", err)
		if errors.Is(err, errUsage) {
			flag.Usage()
		}
	}
	os.Exit(exitCode)
}

type arguments struct {
	verbose    bool
	countMode  bool
	ignoreCase bool
	limit      uint64

	cpuProfile string
	memProfile string

	// Positional arguments, in order.
	// Anything beyond query and filename is kept to report a usage error.
	positional []string
}

func parseFlags(args *arguments) {
	flag.Usage = func() {
		const usage = `Usage: minigrep [flags...] query file
Where:
  flags are command-line arguments that are listed in -help (see below)
  query is a string to look for, it's matched literally
  file is a path to the file to search in
Examples:
  # Print all lines that contain "duct".
  minigrep duct poem.txt
  # Ignore the letter case.
  IGNORE_CASE=1 minigrep rust poem.txt
  # Print only the number of matching lines.
  minigrep -c to poem.txt

Exit status:
  0 if something is matched
  1 if nothing is matched
  2 if error occurred

Supported command-line flags:
`
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}

	flag.BoolVar(&args.verbose, "v", false,
		`verbose mode: turn on additional debug logging`)
	flag.Uint64Var(&args.limit, "limit", 0,
		`stop after this many matching lines, 0 for unlimited`)
	flag.BoolVar(&args.countMode, "c", false,
		`count mode that prints the number of matching lines instead of the lines`)
	flag.BoolVar(&args.ignoreCase, "i", envVarIsSet("IGNORE_CASE"),
		`ignore the letter case, defaults to true if $IGNORE_CASE is set`)
	flag.StringVar(&args.memProfile, "memprofile", "",
		`write memory profile to the specified file`)
	flag.StringVar(&args.cpuProfile, "cpuprofile", "",
		`write CPU profile to the specified file`)

	flag.Parse()

	args.positional = flag.Args()

	if args.verbose {
		log.Printf("debug: positional args: %q", args.positional)
		log.Printf("debug: ignore case: %v", args.ignoreCase)
	}
}

type program struct {
	args arguments

	stdout io.Writer

	query    string
	filename string
	policy   minigrep.MatchPolicy

	text    string
	matches []string

	cpuProfile   bytes.Buffer
	cpuProfiling bool
}

func (p *program) run() (int, error) {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"validate args", p.validateArgs},
		{"start profiling", p.startProfiling},
		{"read file", p.readFile},
		{"search", p.search},
		{"print matches", p.printMatches},
		{"finish profiling", p.finishProfiling},
	}

	// Keep the CPU profile even if some step fails.
	defer func() {
		if err := p.stopCPUProfile(); err != nil {
			log.Printf("error: %v", err)
		}
	}()

	for _, step := range steps {
		if p.args.verbose {
			log.Printf("debug: starting %q step", step.name)
		}
		if err := step.fn(); err != nil {
			return exitError, fmt.Errorf("%s: %w", step.name, err)
		}
	}

	if len(p.matches) == 0 {
		return exitNotMatched, nil
	}
	return exitMatched, nil
}

func (p *program) validateArgs() error {
	switch n := len(p.args.positional); {
	case n < 2:
		return fmt.Errorf("%w: expected query and file, got %d argument(s)", errUsage, n)
	case n > 2:
		return fmt.Errorf("%w: unexpected extra arguments: %q", errUsage, p.args.positional[2:])
	}

	p.query = p.args.positional[0]
	p.filename = p.args.positional[1]
	if !utf8.ValidString(p.query) {
		return fmt.Errorf("%w: query is not valid UTF-8: %q", errUsage, p.query)
	}
	if p.filename == "" {
		return fmt.Errorf("%w: file can't be empty", errUsage)
	}

	p.policy = minigrep.MatchExact
	if p.args.ignoreCase {
		p.policy = minigrep.MatchCaseInsensitive
	}

	if p.args.verbose {
		log.Printf("debug: query: %q", p.query)
		log.Printf("debug: file: %s", p.filename)
		log.Printf("debug: policy: %s", p.policy)
	}

	return nil
}

func (p *program) startProfiling() error {
	if p.args.cpuProfile == "" {
		return nil
	}

	if err := pprof.StartCPUProfile(&p.cpuProfile); err != nil {
		return fmt.Errorf("could not start CPU profile: %v", err)
	}
	p.cpuProfiling = true

	return nil
}

func (p *program) readFile() error {
	text, err := readTextFile(p.filename)
	if err != nil {
		return err
	}
	p.text = text

	if p.args.verbose {
		log.Printf("debug: read %d bytes", len(p.text))
	}
	return nil
}

func (p *program) search() error {
	limit := p.args.limit
	minigrep.MatchLines(p.policy, p.query, p.text, func(m minigrep.MatchData) bool {
		p.matches = append(p.matches, m.Line)
		return limit == 0 || uint64(len(p.matches)) < limit
	})

	if p.args.verbose {
		log.Printf("debug: found %d matching lines", len(p.matches))
	}
	return nil
}

func (p *program) printMatches() error {
	if p.args.countMode {
		_, err := fmt.Fprintln(p.stdout, len(p.matches))
		return err
	}

	w := newLineWriter(p.stdout)
	for _, line := range p.matches {
		if err := w.WriteLine(line); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if p.args.limit != 0 && uint64(len(p.matches)) >= p.args.limit {
		log.Printf("results limited to %d matches", p.args.limit)
	}
	return nil
}

func (p *program) finishProfiling() error {
	if err := p.stopCPUProfile(); err != nil {
		return err
	}

	if p.args.memProfile != "" {
		f, err := os.Create(p.args.memProfile)
		if err != nil {
			return fmt.Errorf("create mem profile: %v", err)
		}
		defer f.Close()
		runtime.GC() // get up-to-date statistics
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("write mem profile: %v", err)
		}
	}

	return nil
}

func (p *program) stopCPUProfile() error {
	if !p.cpuProfiling {
		return nil
	}
	pprof.StopCPUProfile()
	p.cpuProfiling = false
	if err := os.WriteFile(p.args.cpuProfile, p.cpuProfile.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write CPU profile: %v", err)
	}
	return nil
}
