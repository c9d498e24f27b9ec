package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"soilsense/adapters/excel"
	"soilsense/domain/soil"
	"soilsense/internal/batch"
	"soilsense/internal/config"
	"soilsense/internal/report"
	"soilsense/internal/validation"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "soilsense",
		Short: "Validate soil-test data and generate advisory reports",
	}

	rootCmd.AddCommand(
		newValidateCmd(),
		newRangesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newValidateCmd() *cobra.Command {
	var (
		format string
		state  string
		crop   string
		season string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "validate <report.xlsx|report.csv>",
		Short: "Validate every record in a lab report file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			reader := excel.NewReportReader(args[0])
			records, err := reader.ReadRecords()
			if err != nil {
				return err
			}

			// Flags override per-record context from the sheet.
			for i := range records {
				opts := soil.DefaultOptions()
				if records[i].Options != nil {
					opts = *records[i].Options
				}
				opts.StrictMode = strict || cfg.Engine.StrictMode
				opts.ConfidenceThreshold = cfg.Engine.ConfidenceThreshold
				if state != "" {
					opts.Location = &soil.Location{State: state}
				}
				if crop != "" {
					opts.CropType = crop
				}
				if season != "" {
					opts.Season = soil.Season(season)
				}
				records[i].Options = &opts
			}

			engine := validation.NewEngine()
			processor := batch.NewProcessor(engine, cfg.Batch.Workers)
			items, err := processor.ValidateAll(context.Background(), records)
			if err != nil {
				return err
			}

			assembler := report.NewAssembler(engine)
			invalid := 0
			for _, item := range items {
				if item.Err != nil {
					fmt.Fprintf(os.Stderr, "record %s: %v\n", item.Record.FieldID, item.Err)
					invalid++
					continue
				}
				rep, err := assembler.Assemble(cmd.Context(), item.Record)
				if err != nil {
					return err
				}
				if !rep.Result.Valid {
					invalid++
				}
				switch format {
				case "json":
					enc := json.NewEncoder(os.Stdout)
					enc.SetIndent("", "  ")
					if err := enc.Encode(rep); err != nil {
						return err
					}
				default:
					fmt.Println(rep.Markdown())
				}
			}

			if invalid > 0 {
				fmt.Fprintf(os.Stderr, "%d of %d record(s) need review\n", invalid, len(items))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "markdown", "output format: markdown or json")
	cmd.Flags().StringVar(&state, "state", "", "state for regional validation")
	cmd.Flags().StringVar(&crop, "crop", "", "crop type for crop-specific validation")
	cmd.Flags().StringVar(&season, "season", "", "season (kharif|rabi|zaid)")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat out-of-range values as critical")
	return cmd
}

func newRangesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ranges",
		Short: "Print the built-in parameter range catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := validation.NewEngine()
			names := []string{
				soil.ParamPH, soil.ParamNitrogen, soil.ParamPhosphorus,
				soil.ParamPotassium, soil.ParamOrganicCarbon, soil.ParamElectricalConductivity,
				soil.ParamZinc, soil.ParamIron, soil.ParamManganese,
				soil.ParamCopper, soil.ParamBoron, soil.ParamSulfur,
			}
			for _, name := range names {
				r := engine.Catalog().Ranges(name, nil)
				fmt.Printf("%-24s absolute %g-%g  typical %g-%g  optimal %g-%g\n",
					name, r.Absolute.Min, r.Absolute.Max,
					r.Typical.Min, r.Typical.Max,
					r.Optimal.Min, r.Optimal.Max)
			}
			return nil
		},
	}
}
