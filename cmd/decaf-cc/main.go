package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/raymyers/decaf-cc/pkg/ast"
	"github.com/raymyers/decaf-cc/pkg/lexer"
	"github.com/raymyers/decaf-cc/pkg/parser"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Debug flags for dumping frontend output
var (
	dTokens bool
	dParse  bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// debugFlagNames lists the debug flags that also accept single-dash style
var debugFlagNames = []string{"dtokens", "dparse"}

// normalizeFlags converts single-dash flags like -dparse to --dparse
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		for _, flagName := range debugFlagNames {
			if arg == "-"+flagName {
				result[i] = "--" + flagName
				break
			}
		}
		if result[i] == "" {
			result[i] = arg
		}
	}
	return result
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "decaf-cc [file]",
		Short: "decaf-cc is a Decaf compiler frontend",
		Long: `decaf-cc is a compiler frontend for the Decaf teaching language.
It tokenizes and parses Decaf source and can dump the token stream or
the parsed AST for inspection by later compilation stages.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Help()
				return nil
			}
			filename := args[0]

			// Handle --dtokens: lex and dump the token stream
			if dTokens {
				return doTokens(filename, out, errOut)
			}

			// Handle --dparse: parse and dump the AST
			if dParse {
				return doParse(filename, out, errOut)
			}

			// Default: parse only, report success
			if _, err := parseFile(filename, errOut); err != nil {
				return err
			}
			fmt.Fprintf(errOut, "decaf-cc: checked %s\n", filename)
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().BoolVar(&dTokens, "dtokens", false, "Dump the token stream")
	rootCmd.Flags().BoolVar(&dParse, "dparse", false, "Dump the AST after parsing")

	return rootCmd
}

// lexFile reads a Decaf file and returns its token sequence
func lexFile(filename string, errOut io.Writer) ([]lexer.Token, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(errOut, "decaf-cc: error reading %s: %v\n", filename, err)
		return nil, err
	}
	tokens, err := lexer.Tokenize(string(content))
	if err != nil {
		fmt.Fprintf(errOut, "decaf-cc: %s: %v\n", filename, err)
		return nil, err
	}
	return tokens, nil
}

// parseFile lexes and parses a Decaf file, returning the AST
func parseFile(filename string, errOut io.Writer) (*ast.Program, error) {
	tokens, err := lexFile(filename, errOut)
	if err != nil {
		return nil, err
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		fmt.Fprintf(errOut, "decaf-cc: %s: %v\n", filename, err)
		return nil, err
	}
	return program, nil
}

// doTokens lexes the file and writes the token stream to a .tokens file
func doTokens(filename string, out, errOut io.Writer) error {
	tokens, err := lexFile(filename, errOut)
	if err != nil {
		return err
	}

	outputFilename := tokensOutputFilename(filename)
	outFile, err := os.Create(outputFilename)
	if err != nil {
		fmt.Fprintf(errOut, "decaf-cc: error creating %s: %v\n", outputFilename, err)
		return err
	}
	defer outFile.Close()

	writeTokens(outFile, tokens)

	// Also print to stdout for convenience
	writeTokens(out, tokens)

	return nil
}

func writeTokens(w io.Writer, tokens []lexer.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%s %q line %d\n", tok.Kind, tok.Text, tok.Line)
	}
}

// tokensOutputFilename returns the output filename for --dtokens
// input.decaf -> input.tokens
func tokensOutputFilename(filename string) string {
	ext := ".decaf"
	if strings.HasSuffix(filename, ext) {
		return filename[:len(filename)-len(ext)] + ".tokens"
	}
	return filename + ".tokens"
}

// doParse parses the file and writes the AST to a .ast file
func doParse(filename string, out, errOut io.Writer) error {
	program, err := parseFile(filename, errOut)
	if err != nil {
		return err
	}

	outputFilename := parsedOutputFilename(filename)
	outFile, err := os.Create(outputFilename)
	if err != nil {
		fmt.Fprintf(errOut, "decaf-cc: error creating %s: %v\n", outputFilename, err)
		return err
	}
	defer outFile.Close()

	// Print the AST to the file
	printer := ast.NewPrinter(outFile)
	printer.PrintProgram(program)

	// Also print to stdout for convenience
	printer = ast.NewPrinter(out)
	printer.PrintProgram(program)

	return nil
}

// parsedOutputFilename returns the output filename for --dparse
// input.decaf -> input.ast
func parsedOutputFilename(filename string) string {
	ext := ".decaf"
	if strings.HasSuffix(filename, ext) {
		return filename[:len(filename)-len(ext)] + ".ast"
	}
	return filename + ".ast"
}
