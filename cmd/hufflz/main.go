// Command hufflz compresses and inspects files with the Huffman and LZ77
// codecs.  The two codecs are independent: each subcommand uses one.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/sebargith/Proyecto-Estructuras-Codificacion-y-Compresi-n/lz77"
)

type CliCommand struct {
	fn       func(args []string) error
	flagset  *flag.FlagSet
	argsdesc string // argument description
	desc     string
}

// PrintCmdUsage describes how to use a given command.
func PrintCmdUsage(name string, cmd CliCommand) {
	fmt.Printf("%s %s - %s\n", name, cmd.argsdesc, cmd.desc)
	count := 0
	cmd.flagset.VisitAll(func(_ *flag.Flag) {
		count++
	})
	if count != 0 {
		cmd.flagset.PrintDefaults()
	}
}

func PrintUsage(commands map[string]CliCommand) {
	fmt.Println()
	fmt.Println("Usage: hufflz <command> [arguments]")
	fmt.Println("Commands available:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("    %-10s %s\n", name, commands[name].desc)
	}
}

// lzFlags registers the LZ77 parameter flags on fs.  The returned function
// resolves them into Params after fs.Parse.
func lzFlags(fs *flag.FlagSet) func() (lz77.Params, error) {
	window := fs.Int("window", lz77.DefaultParams.WindowSize, "search window size in bytes")
	maxLen := fs.Int("maxlen", lz77.DefaultParams.MaxMatchLength, "longest match in bytes (0 = unbounded)")
	search := fs.String("search", lz77.DefaultParams.Search.String(), "match search strategy (indexed|linear)")
	return func() (lz77.Params, error) {
		mode, err := lz77.ParseSearchMode(*search)
		if err != nil {
			return lz77.Params{}, err
		}
		p := lz77.Params{WindowSize: *window, MaxMatchLength: *maxLen, Search: mode}
		return p, p.Validate()
	}
}

// expectArgs parses args into fs and checks the positional argument count.
// n < 0 means at least -n arguments.
func expectArgs(fs *flag.FlagSet, args []string, n int, desc string) []string {
	_ = fs.Parse(args)
	files := fs.Args()
	if (n >= 0 && len(files) != n) || (n < 0 && len(files) < -n) {
		fmt.Printf("'%s' command: expected %s arguments\n", fs.Name(), desc)
		os.Exit(1)
	}
	return files
}

func main() {
	huffFlags := flag.NewFlagSet("huff", flag.ExitOnError)
	unhuffFlags := flag.NewFlagSet("unhuff", flag.ExitOnError)
	lzCmdFlags := flag.NewFlagSet("lz", flag.ExitOnError)
	unlzFlags := flag.NewFlagSet("unlz", flag.ExitOnError)
	codesFlags := flag.NewFlagSet("codes", flag.ExitOnError)
	tokensFlags := flag.NewFlagSet("tokens", flag.ExitOnError)
	benchFlags := flag.NewFlagSet("bench", flag.ExitOnError)
	helpFlags := flag.NewFlagSet("help", flag.ExitOnError)

	huffVerbose := huffFlags.Bool("verbose", false, "verbose output")
	unhuffVerbose := unhuffFlags.Bool("verbose", false, "verbose output")
	lzVerbose := lzCmdFlags.Bool("verbose", false, "verbose output")
	lzParams := lzFlags(lzCmdFlags)
	unlzVerbose := unlzFlags.Bool("verbose", false, "verbose output")
	unlzMaxOut := unlzFlags.Int("maxout", 1<<30, "largest restored size in bytes")
	codesChart := codesFlags.String("chart", "", "write an SVG chart of code lengths to this file")
	codesVerbose := codesFlags.Bool("verbose", false, "also print the frequency table and tree")
	tokensChart := tokensFlags.String("chart", "", "write an SVG chart of match lengths to this file")
	tokensParams := lzFlags(tokensFlags)
	benchParams := lzFlags(benchFlags)
	var commands map[string]CliCommand

	cmdHuff := func(args []string) error {
		files := expectArgs(huffFlags, args, 2, "<input> <output>")
		return CommandHuff(files[0], files[1], *huffVerbose, os.Stdout)
	}

	cmdUnhuff := func(args []string) error {
		files := expectArgs(unhuffFlags, args, 2, "<input> <output>")
		return CommandUnhuff(files[0], files[1], *unhuffVerbose, os.Stdout)
	}

	cmdLZ := func(args []string) error {
		files := expectArgs(lzCmdFlags, args, 2, "<input> <output>")
		p, err := lzParams()
		if err != nil {
			return err
		}
		return CommandLZ(files[0], files[1], p, *lzVerbose, os.Stdout)
	}

	cmdUnLZ := func(args []string) error {
		files := expectArgs(unlzFlags, args, 2, "<input> <output>")
		return CommandUnLZ(files[0], files[1], *unlzMaxOut, *unlzVerbose, os.Stdout)
	}

	cmdCodes := func(args []string) error {
		files := expectArgs(codesFlags, args, 1, "<input>")
		return CommandCodes(files[0], *codesChart, *codesVerbose, os.Stdout)
	}

	cmdTokens := func(args []string) error {
		files := expectArgs(tokensFlags, args, 1, "<input>")
		p, err := tokensParams()
		if err != nil {
			return err
		}
		return CommandTokens(files[0], *tokensChart, p, os.Stdout)
	}

	cmdBench := func(args []string) error {
		files := expectArgs(benchFlags, args, -1, "<input>...")
		p, err := benchParams()
		if err != nil {
			return err
		}
		return CommandBench(files, p, os.Stdout)
	}

	cmdHelp := func(args []string) error {
		_ = helpFlags.Parse(args)
		names := helpFlags.Args()
		if len(names) > 0 {
			cmd, found := commands[names[0]]
			if !found {
				fmt.Println("error: unknown command for help")
				PrintUsage(commands)
				os.Exit(1)
			}
			PrintCmdUsage(names[0], cmd)
		} else {
			PrintUsage(commands)
		}
		return nil
	}

	commands = map[string]CliCommand{
		"huff":   {cmdHuff, huffFlags, "<input> <output>", "compress a file with Huffman coding"},
		"unhuff": {cmdUnhuff, unhuffFlags, "<input> <output>", "restore a file packed by 'huff'"},
		"lz":     {cmdLZ, lzCmdFlags, "<input> <output>", "compress a file into LZ77 tokens"},
		"unlz":   {cmdUnLZ, unlzFlags, "<input> <output>", "restore a file packed by 'lz'"},
		"codes":  {cmdCodes, codesFlags, "<input>", "print the Huffman code table of a file"},
		"tokens": {cmdTokens, tokensFlags, "<input>", "print the LZ77 tokens of a file"},
		"bench":  {cmdBench, benchFlags, "<input>...", "time both codecs over files (CSV output)"},
		"help":   {cmdHelp, helpFlags, "", "list commands or describe a single command"},
	}

	if len(os.Args) < 2 {
		fmt.Println("error: expected a command")
		PrintUsage(commands)
		os.Exit(1)
	}

	cmd, found := commands[os.Args[1]]
	if !found {
		fmt.Println("error: unknown command")
		PrintUsage(commands)
		os.Exit(1)
	}

	if err := cmd.fn(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error in %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}
