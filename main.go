package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/IntelligentRoboticsLab/coppelia-zmq/cpp"
	"github.com/IntelligentRoboticsLab/coppelia-zmq/emit"
	"github.com/IntelligentRoboticsLab/coppelia-zmq/parse"
	"github.com/IntelligentRoboticsLab/coppelia-zmq/report"
)

func printVersion() {
	fmt.Println("coppelia-zmq header parser version 0.01")
}

func printUsage() {
	printVersion()
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  coppelia-zmq [FLAGS] remote_api_header.h")
	fmt.Println()
	fmt.Println("Reads remote API function declarations and writes them back in canonical form.")
	fmt.Println("Use - to read the header from stdin.")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  HDRDEBUG=true enables extended error messages for debugging the parser.")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

func openInput(path string) (string, io.ReadCloser, error) {
	if path == "-" {
		return "<stdin>", io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open header %s: %w", path, err)
	}
	return path, f, nil
}

func parseFile(path string) ([]*parse.FunctionSignature, error) {
	name, f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	start := time.Now()
	sigs, err := parse.Parse(cpp.Lex(name, f))
	if err != nil {
		return nil, err
	}
	slog.Debug("parsed header", "file", name, "functions", len(sigs), "elapsed", time.Since(start))
	return sigs, nil
}

func compileFile(path string, out io.Writer) error {
	sigs, err := parseFile(path)
	if err != nil {
		return err
	}
	return emit.Emit(sigs, out)
}

func dumpFile(path string, out io.Writer) error {
	sigs, err := parseFile(path)
	if err != nil {
		return err
	}
	return emit.Dump(sigs, out)
}

func tokenizeFile(path string, out io.Writer) error {
	name, f, err := openInput(path)
	if err != nil {
		return err
	}
	defer f.Close()
	lexer := cpp.Lex(name, f)
	ntoks := 0
	for {
		tok, err := lexer.Next()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s:%s:%d:%d\n", tok.Kind, tok.Val, tok.Pos.Line, tok.Pos.Col)
		if tok.Kind == cpp.EOF {
			slog.Debug("tokenized header", "file", name, "tokens", ntoks)
			return nil
		}
		ntoks++
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

func main() {
	flag.Usage = printUsage
	tokenizeOnly := flag.Bool("T", false, "Print tokens after lexing (For debugging).")
	dumpOnly := flag.Bool("A", false, "Print parsed signatures (For debugging).")
	verbose := flag.Bool("v", false, "Log progress to stderr.")
	version := flag.Bool("version", false, "Print version info and exit.")
	outputPath := flag.String("o", "-", "Write output to `file`, '-' for stdout.")
	flag.Parse()

	if *version {
		printVersion()
		return
	}
	setupLogging(*verbose)
	if flag.NArg() == 0 {
		printUsage()
		os.Exit(1)
	}
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Bad number of args, please specify a single header file.\n")
		os.Exit(1)
	}

	input := flag.Args()[0]
	var output io.WriteCloser
	var err error

	if *outputPath == "-" {
		output = os.Stdout
	} else {
		output, err = os.Create(*outputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open output file %s\n", err)
			os.Exit(1)
		}
	}

	switch {
	case *tokenizeOnly:
		err = tokenizeFile(input, output)
	case *dumpOnly:
		err = dumpFile(input, output)
	default:
		err = compileFile(input, output)
	}
	if cerr := output.Close(); err == nil && *outputPath != "-" {
		err = cerr
	}
	if err != nil {
		report.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
