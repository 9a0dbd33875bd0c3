package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coolbeans/waybill/pkg/extract"
	"github.com/coolbeans/waybill/pkg/keywords"
	"github.com/coolbeans/waybill/pkg/pdftext"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "waybill",
		Short: "Transport order extraction",
		Long: `Waybill converts the text of a freight forwarder's transport order
into a normalized order document.

It recognizes the carrier layout from configured validation keywords and
extracts customer, pickup and delivery locations with time windows, cargo
entries, order reference, freight price, and comments as JSON.`,
		Version: version,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(keywordsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	var (
		source      string
		attachment  string
		output      string
		keywordsDir string
	)

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a transport order document",
		Long: `Parse a transport order document and print the normalized order as JSON.

The source may be a text file (one document line per file line) or a PDF
with a text layer.

Example:
  waybill parse --source order.pdf
  waybill parse --source order.txt --attachment order.pdf --output order.json
  waybill parse --source order.txt --keywords ./keywords`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				return fmt.Errorf("--source is required")
			}

			lines, err := readLines(source)
			if err != nil {
				return err
			}

			registry, err := loadKeywords(keywordsDir)
			if err != nil {
				return err
			}

			dispatcher := extract.NewDispatcher(
				extract.NewZieglerStrategy(registry.Get("ziegler")),
				extract.NewTransallianceStrategy(registry.Get("transalliance")),
			)

			if attachment == "" {
				attachment = filepath.Base(source)
			}

			doc, err := dispatcher.Dispatch(lines, attachment)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding order: %w", err)
			}

			if output != "" {
				if err := os.WriteFile(output, data, 0644); err != nil {
					return fmt.Errorf("writing %s: %w", output, err)
				}
				fmt.Printf("Wrote normalized order to %s\n", output)
				return nil
			}

			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Source document (.txt or .pdf)")
	cmd.Flags().StringVar(&attachment, "attachment", "", "Attachment filename to record (defaults to the source basename)")
	cmd.Flags().StringVar(&output, "output", "", "Write JSON to a file instead of stdout")
	cmd.Flags().StringVar(&keywordsDir, "keywords", "", "Directory of keyword set YAML files (defaults to built-in sets)")

	return cmd
}

func keywordsCmd() *cobra.Command {
	var keywordsDir string

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "List the loaded validation keyword sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadKeywords(keywordsDir)
			if err != nil {
				return err
			}

			sets := registry.List()
			if len(sets) == 0 {
				fmt.Println("No keyword sets loaded.")
				return nil
			}

			fmt.Printf("Loaded %d keyword set(s):\n", len(sets))
			for _, set := range sets {
				fmt.Printf("  %-16s %s\n", set.Strategy, strings.Join(set.Keywords, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&keywordsDir, "keywords", "", "Directory of keyword set YAML files (defaults to built-in sets)")

	return cmd
}

// readLines produces the raw line stream for a source file. PDF sources go
// through the text-layer extractor; anything else is read as plain text.
func readLines(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return pdftext.Lines(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(text, "\n"), nil
}

func loadKeywords(dir string) (*keywords.Registry, error) {
	if dir == "" {
		return keywords.Default(), nil
	}
	return keywords.NewRegistryWithDirectory(dir)
}
