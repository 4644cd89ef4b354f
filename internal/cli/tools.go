package cli

import (
	"github.com/aretw0/tbx"
	"github.com/aretw0/tbx/internal/config"
	"github.com/aretw0/tbx/internal/presentation/report"
	"github.com/aretw0/tbx/pkg/freq"
	"github.com/aretw0/tbx/pkg/scan"
	"github.com/aretw0/tbx/pkg/textenc"
)

// Tool describes one of the tbx analyses.
type Tool struct {
	Name      string
	Short     string
	Usage     string
	NeedsTier bool

	run func(eng *tbx.Engine, cfg config.Config, out *report.Writer) error
}

const tierUsage = "Please provide the name of the Toolbox tier and the name(s) of the file(s) to be searched!"

var (
	// Tokens counts the whitespace-separated tokens of a tier.
	Tokens = Tool{
		Name:      "tokens",
		Short:     "Count all tokens contained in one tier",
		Usage:     tierUsage,
		NeedsTier: true,
		run: func(eng *tbx.Engine, cfg config.Config, out *report.Writer) error {
			table, err := eng.Count(cfg.Files, cfg.Tier, scan.ModeWords)
			if err != nil {
				return err
			}
			return out.Tokens(cfg.Tier, table.Total())
		},
	}

	// Types reports the type/token statistics and word frequencies of a tier.
	Types = Tool{
		Name:      "types",
		Short:     "Count all types contained in one tier",
		Usage:     tierUsage,
		NeedsTier: true,
		run:       frequencies(scan.ModeWords),
	}

	// Values reports the frequencies of whole tier values.
	Values = Tool{
		Name:      "values",
		Short:     "Count all values (whole lines) contained in one tier",
		Usage:     tierUsage,
		NeedsTier: true,
		run:       frequencies(scan.ModeValues),
	}

	// Markers lists the markers used in the files.
	Markers = Tool{
		Name:  "markers",
		Short: "List all Toolbox markers contained in the files",
		Usage: "Please provide the name(s) of the file(s) to be searched for Toolbox markers!",
		run: func(eng *tbx.Engine, cfg config.Config, out *report.Writer) error {
			set, err := eng.Markers(cfg.Files)
			if err != nil {
				return err
			}
			return out.Markers(set.Sorted())
		},
	}

	// Characters lists every character of the files with its count.
	Characters = Tool{
		Name:  "chars",
		Short: "List all characters contained in the files",
		Usage: "Please provide the name(s) of the file(s) to be searched for characters!",
		run: func(eng *tbx.Engine, cfg config.Config, out *report.Writer) error {
			table, err := eng.Count(cfg.Files, "", scan.ModeCharacters)
			if err != nil {
				return err
			}
			return out.Characters(freq.Sorted(table))
		},
	}

	// Validate reports the lines that do not decode under the encoding.
	Validate = Tool{
		Name:  "validate",
		Short: "Validate the encoding of the files line by line",
		Usage: "Please provide the name(s) of the file(s) whose encoding is to be validated!",
		run: func(eng *tbx.Engine, cfg config.Config, out *report.Writer) error {
			var problems []textenc.Problem
			_, err := eng.Validate(cfg.Files, func(p textenc.Problem) {
				problems = append(problems, p)
			})
			if err != nil {
				return err
			}
			for _, p := range problems {
				if err := out.Problem(p); err != nil {
					return err
				}
			}
			return nil
		},
	}
)

// All lists the tools in the order the CLI registers them.
var All = []Tool{Tokens, Types, Values, Markers, Characters, Validate}

func frequencies(mode scan.Mode) func(*tbx.Engine, config.Config, *report.Writer) error {
	return func(eng *tbx.Engine, cfg config.Config, out *report.Writer) error {
		table, err := eng.Count(cfg.Files, cfg.Tier, mode)
		if err != nil {
			return err
		}
		return out.Types(cfg.Tier, table)
	}
}
