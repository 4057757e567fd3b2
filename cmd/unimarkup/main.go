// Command unimarkup is the CLI entry point (spec.md §6): it reads a
// Unimarkup source file, parses it, and writes out each requested render
// format. Grounded on the teacher's root main.go for flag handling, log
// setup, and its exitWithError pattern.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/unimarkup/unimarkup-go"
	"github.com/unimarkup/unimarkup-go/config"
	"github.com/unimarkup/unimarkup-go/errs"
	"github.com/unimarkup/unimarkup-go/render/html"
	"github.com/unimarkup/unimarkup-go/render/pdf"
	"github.com/unimarkup/unimarkup-go/render/umi"
)

// defaultConfigPath resolves to $XDG_CONFIG_HOME/unimarkup/config.yaml (or
// the platform equivalent xdg falls back to), mirroring how the teacher
// locates its own user config file.
var defaultConfigPath = filepath.Join(xdg.ConfigHome, "unimarkup", "config.yaml")

var (
	formatsFlag    = flag.String("formats", "html", "comma-separated output formats: html,umi,pdf")
	outputFileFlag = flag.String("output-file", "", "output file path (default: input path with the format's extension)")
	langFlag       = flag.String("lang", "", "document locale, overriding i18n.lang")
	overwriteFlag  = flag.Bool("overwrite", false, "allow overwriting an existing output file")
	configFlag     = flag.String("config", defaultConfigPath, "path to a YAML config file overlaid onto the defaults")
	logpath        = flag.String("log", "", "log to file")
)

// Exit codes mirror spec.md §6: 0 success, 1 invalid arguments, 2 read
// failure, 3 parse/render failure, 4 write failure.
const (
	exitInvalidArgs        = 1
	exitReadFailure        = 2
	exitParseRenderFailure = 3
	exitWriteFailure       = 4
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if *logpath != "" {
		logFile, err := os.Create(*logpath)
		if err != nil {
			exitWithError(exitInvalidArgs, err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	inputPath := flag.Arg(0)
	if inputPath == "" {
		flag.Usage()
		os.Exit(exitInvalidArgs)
	}

	formats, err := parseFormats(*formatsFlag)
	if err != nil {
		exitWithError(exitInvalidArgs, err)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		exitWithError(exitReadFailure, errs.IO(inputPath, err))
	}

	cfg := config.Default()
	if *configFlag != "" {
		if loaded, err := config.LoadFile(*configFlag); err == nil {
			cfg = loaded
		} else if !os.IsNotExist(err) {
			exitWithError(exitInvalidArgs, errs.IO(*configFlag, err))
		}
	}
	if *langFlag != "" {
		cfg.I18n.Lang = *langFlag
	}
	if len(formats) > 0 {
		cfg.Output.Formats = formats
	}
	if *overwriteFlag {
		cfg.Output.Overwrite = true
	}

	doc, err := unimarkup.Parse(string(data), cfg)
	if err != nil {
		exitWithError(exitParseRenderFailure, err)
	}
	log.Printf("parsed %d blocks from %q\n", len(doc.Blocks), inputPath)

	for _, format := range doc.Config.Output.Formats {
		renderFormat(format, doc, inputPath)
	}
}

// renderFormat renders and writes a single output format, exiting the
// process on failure: a render error exits 3, a write error exits 4
// (spec.md §6).
func renderFormat(format string, doc unimarkup.Document, inputPath string) {
	outPath := outputPath(inputPath, format)
	if !doc.Config.Output.Overwrite {
		if _, err := os.Stat(outPath); err == nil {
			exitWithError(exitWriteFailure, errs.IO(outPath, fmt.Errorf("output file already exists; pass --overwrite to replace it")))
		}
	}

	var content []byte
	switch format {
	case "html":
		content = []byte(html.Render(doc))
	case "umi":
		content = []byte(umi.Render(doc))
	case "pdf":
		out, err := pdf.Render(context.Background(), doc)
		if err != nil {
			exitWithError(exitParseRenderFailure, err)
		}
		content = out
	default:
		exitWithError(exitParseRenderFailure, errs.Render(format, fmt.Errorf("unsupported output format %q", format)))
	}

	if err := os.WriteFile(outPath, content, 0o644); err != nil {
		exitWithError(exitWriteFailure, errs.IO(outPath, err))
	}
	log.Printf("wrote %s (%d bytes)\n", outPath, len(content))
}

func outputPath(inputPath, format string) string {
	if *outputFileFlag != "" {
		return *outputFileFlag
	}
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return fmt.Sprintf("%s.%s", base, format)
}

func parseFormats(raw string) ([]string, error) {
	var out []string
	for _, f := range strings.Split(raw, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		switch f {
		case "html", "umi", "pdf":
			out = append(out, f)
		default:
			return nil, fmt.Errorf("unknown format %q (want one of html,umi,pdf)", f)
		}
	}
	return out, nil
}

func printUsage() {
	f := flag.CommandLine.Output()
	fmt.Fprintf(f, "Usage: %s [options] <input-file>\n", os.Args[0])
	flag.PrintDefaults()
}

func exitWithError(code int, err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(code)
}
