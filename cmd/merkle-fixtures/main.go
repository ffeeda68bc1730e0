// package main provides a tool named merkle-fixtures, which derives SHA-512
// Merkle tree test vectors from a list of known digests.
//
// Install:
//
//	$ go install sigsum.org/merkle-fixtures/cmd/merkle-fixtures@latest
//
// Usage, in the directory holding sha512.input:
//
//	$ merkle-fixtures
//	$ merkle-fixtures check
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pborman/getopt/v2"

	"sigsum.org/merkle-fixtures/internal/version"
	"sigsum.org/merkle-fixtures/pkg/fixture"
	"sigsum.org/merkle-fixtures/pkg/log"
)

const usage = `
Derive SHA-512 Merkle tree test vectors.  Digests are read from
sha512.input, and leaf and node hashes are written to
sha512-merkle-leaves.input and sha512-merkle-nodes.input, in the
current directory.

Usage: merkle-fixtures [generate] [options]
   or: merkle-fixtures check [options]
   or: merkle-fixtures export [options]
   or: merkle-fixtures [--help|help] [--version|version]

Commands:
  generate   Write the leaf and node files (default)
  check      Verify the leaf and node files against the input
  export     Write the leaf and node records as a CBOR bundle

Options:
      --help     Show usage message and exit
  -v, --version  Show program version and exit
`

type Settings struct {
	diagnostics string
}

type ExportSettings struct {
	Settings
	outputFile string
}

func main() {
	log.SetDate(false)

	args := os.Args
	if len(args) < 2 {
		args = []string{args[0], "generate"}
	}

	store := fixture.NewDirStore(".")
	switch args[1] {
	default:
		fmt.Fprint(os.Stderr, usage[1:])
		os.Exit(1)
	case "help", "--help":
		fmt.Print(usage[1:])
		os.Exit(0)
	case "version", "--version", "-v":
		version.DisplayVersion("merkle-fixtures")
		os.Exit(0)
	case "generate":
		var settings Settings
		settings.parse(args, `
Read digests from sha512.input and replace the leaf and node files.
`)
		summary, err := fixture.Generate(store)
		if err != nil {
			log.Fatal("generating fixtures failed: %v", err)
		}
		log.Info("%d digests: wrote %d records to %s and %d records to %s",
			summary.Digests, summary.Leaves, fixture.LeavesFile,
			summary.Nodes, fixture.NodesFile)
	case "check":
		var settings Settings
		settings.parse(args, `
Verify every record in the leaf and node files, and that the files
are up to date with sha512.input.
`)
		if err := fixture.Check(store); err != nil {
			log.Fatal("check failed: %v", err)
		}
		log.Info("%s and %s are valid", fixture.LeavesFile, fixture.NodesFile)
	case "export":
		var settings ExportSettings
		settings.parse(args)
		withOutput(settings.outputFile, 0644, func(w io.Writer) error {
			return fixture.Export(store, w)
		})
	}
}

func newOptionSet(args []string, params string) *getopt.Set {
	set := getopt.New()
	set.SetProgram(args[0] + " " + args[1])
	set.SetParameters(params)
	return set
}

// Also adds and processes the help and diagnostics options.
func parseNoArgs(set *getopt.Set, s *Settings, args []string, usage string) {
	help := false
	s.diagnostics = "info"
	set.FlagLong(&help, "help", 0, "Show usage message and exit")
	set.FlagLong(&s.diagnostics, "diagnostics", 0, "One of \"fatal\", \"error\", \"warning\", \"info\", or \"debug\"", "level")
	err := set.Getopt(args[1:], nil)
	if help {
		fmt.Print(usage[1:] + "\n")
		set.PrintUsage(os.Stdout)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "err: %v\n", err)
		set.PrintUsage(os.Stderr)
		os.Exit(1)
	}
	if set.NArgs() > 0 {
		log.Fatal("Too many arguments.")
	}
	if err := log.SetLevelFromString(s.diagnostics); err != nil {
		log.Fatal("%v", err)
	}
}

func (s *Settings) parse(args []string, usage string) {
	set := newOptionSet(args, "")
	parseNoArgs(set, s, args, usage)
}

func (s *ExportSettings) parse(args []string) {
	const usage = `
Read the leaf and node files and write them as one CBOR map,
{1: [[digest, hash], ...], 2: [[left, right, hash], ...]}, using
deterministic encoding.  Output is written on stdout unless the -o
option is given.
`
	set := newOptionSet(args, "")
	set.FlagLong(&s.outputFile, "output", 'o', "CBOR output file", "output-file")
	parseNoArgs(set, &s.Settings, args, usage)
}

// If outputFile is non-empty: open file, pass to f, and automatically
// close it after f returns. Otherwise, just pass os.Stdout to f. Also
// exit program on error from f.
func withOutput(outputFile string, mode os.FileMode, f func(io.Writer) error) {
	file := os.Stdout
	if len(outputFile) > 0 {
		var err error
		file, err = os.OpenFile(outputFile,
			os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
		if err != nil {
			log.Fatal("failed to open file '%v': %v", outputFile, err)
		}
		defer file.Close()
	}
	if err := f(file); err != nil {
		log.Fatal("writing output failed: %v", err)
	}
}
