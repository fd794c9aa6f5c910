package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ytranscript/internal/services"
)

func newLanguagesCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "languages <video_id>",
		Short: "List the transcripts available for a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoID := strings.TrimSpace(args[0])
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			client, err := ctx.newClient(cfg, logger)
			if err != nil {
				return err
			}

			list, err := client.ListTranscripts(services.WithVideoID(cmd.Context(), videoID), videoID)
			if err != nil {
				return services.Wrap(services.ErrExternalService, "youtube", "list transcripts", videoID, err)
			}
			transcripts := list.All()

			if asJSON || !isTerminal(cmd.OutOrStdout()) {
				return writeJSON(cmd, transcripts)
			}

			out := cmd.OutOrStdout()
			if len(transcripts) == 0 {
				fmt.Fprintln(out, "No transcripts available")
				return nil
			}
			rows := make([][]string, 0, len(transcripts))
			for i, t := range transcripts {
				kind := "manual"
				if t.Generated {
					kind = "generated"
				}
				rows = append(rows, []string{strconv.Itoa(i + 1), t.LanguageCode, t.Language, kind, yesNo(t.Translatable)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Code", "Language", "Type", "Translatable"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON even when stdout is a terminal")
	return cmd
}
