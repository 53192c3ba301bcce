package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Conceptual-Machines/songbook-api/internal/config"
	"github.com/Conceptual-Machines/songbook-api/internal/services"
	"github.com/Conceptual-Machines/songbook-api/internal/theory"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var errNoShift = errors.New("either --interval or both --from and --to are required")

func newRootCmd() *cobra.Command {
	var svc *services.ChordService

	root := &cobra.Command{
		Use:   "songbook",
		Short: "Normalize, transpose and suggest chord symbols",
		Long: `songbook runs the lead-sheet chord engine from the terminal.

Examples:
  songbook normalize Cmaj7 D-7 G7
  songbook transpose --from C --to Eb C Am7 F G7
  songbook interval G C
  songbook suggest --tonic A --mode minor --category twoFiveOne`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			svc, err = services.NewChordService(config.Load().ChordCacheSize)
			if err != nil {
				return fmt.Errorf("failed to start chord service: %w", err)
			}
			return nil
		},
	}

	service := func() *services.ChordService { return svc }

	root.AddCommand(newNormalizeCmd(service))
	root.AddCommand(newTransposeCmd(service))
	root.AddCommand(newIntervalCmd(service))
	root.AddCommand(newSuggestCmd(service))
	return root
}

func newNormalizeCmd(service func() *services.ChordService) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <chord...>",
		Short: "Rewrite chord aliases to their canonical spelling",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, symbol := range args {
				fmt.Fprintln(out, service().Normalize(symbol))
			}
			return nil
		},
	}
}

func newTransposeCmd(service func() *services.ChordService) *cobra.Command {
	var (
		interval int
		fromKey  string
		toKey    string
	)

	cmd := &cobra.Command{
		Use:   "transpose <chord...>",
		Short: "Shift chords by an interval or from one key to another",
		Long: `Shift chords by a number of semitones, or by the distance between two keys.
Bar separators and text without a note name are printed unchanged.

Examples:
  songbook transpose --interval 2 C Am7/G
  songbook transpose --from G --to A G Em C D7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			byKeys := cmd.Flags().Changed("from") || cmd.Flags().Changed("to")
			switch {
			case byKeys && (fromKey == "" || toKey == ""):
				return errNoShift
			case byKeys:
				interval = int(service().Interval(fromKey, toKey))
			case !cmd.Flags().Changed("interval"):
				return errNoShift
			}

			out := cmd.OutOrStdout()
			transposed := make([]string, 0, len(args))
			for _, symbol := range args {
				transposed = append(transposed, service().Transpose(symbol, interval))
			}
			fmt.Fprintln(out, strings.Join(transposed, " "))
			return nil
		},
	}

	cmd.Flags().IntVarP(&interval, "interval", "i", 0, "Semitones to shift (may be negative)")
	cmd.Flags().StringVar(&fromKey, "from", "", "Current key")
	cmd.Flags().StringVar(&toKey, "to", "", "Target key")
	return cmd
}

func newIntervalCmd(service func() *services.ChordService) *cobra.Command {
	return &cobra.Command{
		Use:   "interval <from> <to>",
		Short: "Print the upward semitone distance between two keys",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), service().Interval(args[0], args[1]))
			return nil
		},
	}
}

func newSuggestCmd(service func() *services.ChordService) *cobra.Command {
	var (
		tonic    string
		mode     string
		category string
		preset   string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "List suggested chords for a key",
		Long: `List the suggestion panel for a tonic and mode. Without --category every
list is printed.

Categories: diatonic, secondary, subdominantMinor, twoFiveOne, tritoneSub, suspended`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := theory.ParseMode(mode)
			if !ok {
				return fmt.Errorf("invalid mode %q (want major or minor)", mode)
			}
			p, ok := theory.ParsePreset(preset)
			if !ok {
				return fmt.Errorf("invalid preset %q (want triad or seventh)", preset)
			}

			all := service().SuggestAll(tonic, m, p)
			if category == "" {
				return writeSuggestions(cmd.OutOrStdout(), format, all)
			}

			c, ok := theory.ParseCategory(category)
			if !ok {
				return fmt.Errorf("invalid category %q", category)
			}
			return writeCategory(cmd.OutOrStdout(), format, c, all.Get(c))
		},
	}

	cmd.Flags().StringVarP(&tonic, "tonic", "t", "C", "Tonic of the key")
	cmd.Flags().StringVarP(&mode, "mode", "m", string(theory.ModeMajor), "major or minor")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only print one category")
	cmd.Flags().StringVarP(&preset, "preset", "p", string(theory.PresetTriad), "Diatonic preset: triad or seventh")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json or yaml")
	return cmd
}

func writeSuggestions(w io.Writer, format string, all theory.Suggestions) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	case formatYAML:
		return encodeYAML(w, all)
	case formatText:
		fmt.Fprintf(w, "%s %s (%s)\n", all.Tonic, all.Mode, all.Preset)
		for _, c := range theory.Categories() {
			fmt.Fprintf(w, "  %-17s %s\n", c+":", strings.Join(all.Get(c), " "))
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeCategory(w io.Writer, format string, category theory.Category, chords []string) error {
	switch format {
	case formatJSON:
		return json.NewEncoder(w).Encode(map[theory.Category][]string{category: chords})
	case formatYAML:
		return encodeYAML(w, map[theory.Category][]string{category: chords})
	case formatText:
		fmt.Fprintln(w, strings.Join(chords, " "))
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
