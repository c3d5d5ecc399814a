package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/bot"
	"github.com/tartampluch/go-contacts/internal/calendar"
	"github.com/tartampluch/go-contacts/internal/config"
)

// export: write all contact birthdays as an iCalendar file.
func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write an iCalendar file with all contact birthdays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			b, err := store.Load(ctx)
			if err != nil {
				return err
			}

			gen := &calendar.Generator{
				Clock:         book.RealClock{},
				FormatSummary: bot.NewMessages(lang).EventSummary,
			}
			data, err := gen.Generate(ctx, b)
			if err != nil {
				return err
			}
			return os.WriteFile(output, data, config.FilePermUserRW)
		},
	}

	cmd.Flags().StringVarP(&output, config.FlagOutput, "o",
		config.DefaultExportFile, config.FlagDescOutput)
	return cmd
}
