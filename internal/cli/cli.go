// Package cli is the operator command line for the front desk.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"frontdesk/infras/hotelapi"
	guestService "frontdesk/internal/domains/guest/service"
	roomService "frontdesk/internal/domains/room/service"
	roomTypeService "frontdesk/internal/domains/roomtype/service"
	sessionService "frontdesk/internal/domains/session/service"
	wizardService "frontdesk/internal/domains/wizard/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// App is the set of services the commands run against.
type App struct {
	RoomType roomTypeService.RoomType
	Room     roomService.Room
	Guest    guestService.Guest
	Session  sessionService.Session
	Wizard   wizardService.Wizard
}

type cli struct {
	app    *App
	output string
	token  string
}

func NewRootCmd(app *App) *cobra.Command {
	c := &cli{app: app}

	rootCmd := &cobra.Command{
		Use:           "frontdesk",
		Short:         "Front desk console for rooms, guests and sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch c.output {
			case OutputTable, OutputJSON, OutputYAML:
			default:
				return fmt.Errorf("invalid output format: %s\nValid formats: table, json, yaml", c.output)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if c.token != "" {
				ctx = hotelapi.WithBearerToken(ctx, c.token)
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&c.output, "output", "o", OutputTable, "Output format: table, json or yaml")
	rootCmd.PersistentFlags().StringVar(&c.token, "token", "", "Bearer token forwarded to the hotel backend")

	rootCmd.AddCommand(c.roomsCmd())
	rootCmd.AddCommand(c.roomTypesCmd())
	rootCmd.AddCommand(c.guestsCmd())
	rootCmd.AddCommand(c.sessionsCmd())
	rootCmd.AddCommand(c.checkinCmd())

	return rootCmd
}

// render writes data in the selected format; table draws the human layout.
func (c *cli) render(out io.Writer, data any, table func(w io.Writer)) error {
	switch c.output {
	case OutputJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(data)
	case OutputYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)

		if err := encoder.Encode(data); err != nil {
			return err
		}

		return encoder.Close()
	default:
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		table(w)

		return w.Flush()
	}
}
