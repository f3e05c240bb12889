package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tlogic-co/pqrs-service/internal/letter"
	"github.com/tlogic-co/pqrs-service/internal/pqrs"
)

var (
	letterCategory string
	letterContract string
	letterOut      string
)

var letterCmd = &cobra.Command{
	Use:   "letter",
	Short: "Generate one reply letter straight to a .docx file",
	Long: `Generates a single reply letter without starting the server: synthesizes
the customer record, drafts the reply and writes the .docx to disk.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(runLetter())
	},
}

func runLetter() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := pqrs.ParseCategory(letterCategory)
	if err != nil {
		return err
	}

	service, err := buildService(cfg)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(fmt.Sprintf("Drafting %s reply", cat.Label())),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(os.Stderr),
	)
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				bar.Add(1)
			}
		}
	}()

	reply, err := service.Generate(context.Background(), cat, letterContract)
	close(done)
	bar.Finish()
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}

	doc := buildComposer(cfg).ComposeWithID(reply.Category, reply.Record, reply.Body, reply.CaseID, reply.GeneratedAt)
	data, err := letter.NewDocxExporter().Export(doc)
	if err != nil {
		return err
	}

	out := letterOut
	if out == "" {
		out = reply.CaseID + letter.FileExtension
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	fmt.Printf("Radicado %s — %s\n", reply.CaseID, reply.Record.FullName)
	fmt.Printf("Letter written to %s\n", out)
	return nil
}

func init() {
	letterCmd.Flags().StringVarP(&letterCategory, "type", "t", "", "PQRS category: P, Q, R or S")
	letterCmd.Flags().StringVarP(&letterContract, "contract", "c", "", "10-digit contract number")
	letterCmd.Flags().StringVarP(&letterOut, "out", "o", "", "output path (default <radicado>.docx)")
	letterCmd.MarkFlagRequired("type")
	letterCmd.MarkFlagRequired("contract")
	rootCmd.AddCommand(letterCmd)
}
