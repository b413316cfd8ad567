package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/common"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/comuna"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/normalize"
)

// comuna-match is a debugging tool: it runs the restoration dictionary and the
// fuzzy gazetteer matcher on comuna names given as arguments or on stdin, one
// per line, and prints how each resolved.
func main() {
	threshold := flag.Float64("threshold", 0, "similarity cutoff (defaults to FUZZY_COMUNA_THRESHOLD)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *threshold == 0 {
		*threshold = cfg.Pipeline.FuzzyThreshold
	}

	gaz := comuna.NewGazetteer(constants.DefaultComunas)
	matcher := comuna.NewMatcher(gaz, *threshold, logger)
	restorer := normalize.NewRestorer(constants.DefaultRestorations)

	inputs := flag.Args()
	if len(inputs) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			inputs = append(inputs, sc.Text())
		}
		if err := sc.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
			os.Exit(1)
		}
	}

	unresolved := 0
	for _, in := range inputs {
		restored := restorer.Apply(in)
		m := matcher.Match(restored)
		if m.Resolved {
			fmt.Printf("%-30s -> %-25s score=%.3f\n", in, m.Canonical, m.Score)
		} else {
			fmt.Printf("%-30s -> UNRESOLVED (best score below %.2f)\n", in, *threshold)
			unresolved++
		}
	}
	if unresolved > 0 {
		os.Exit(1)
	}
}
