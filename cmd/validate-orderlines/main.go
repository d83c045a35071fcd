package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/orderlines/pkg/validate"
)

// CLI-приложение для валидации строк заказов (.json или .jsonl).
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads JSONL from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	format := validate.InputFormat(*formatStr)
	switch format {
	case validate.FormatAuto, validate.FormatJSON, validate.FormatJSONL:
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q (want auto|json|jsonl)\n", *formatStr)
		os.Exit(2)
	}

	path := *inputPath
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	summary, err := validate.ValidateFile(context.Background(), validate.NewOrderLineValidator(), path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	if summary.Invalid > 0 {
		fmt.Fprintf(os.Stderr, "validation failed (%s)\n", summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
