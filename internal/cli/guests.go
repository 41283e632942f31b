package cli

import (
	"fmt"
	"io"

	"frontdesk/internal/domains/guest/model"

	"github.com/spf13/cobra"
)

func (c *cli) guestsCmd() *cobra.Command {
	guestsCmd := &cobra.Command{
		Use:   "guests",
		Short: "Look up guests",
	}

	guestsCmd.AddCommand(&cobra.Command{
		Use:   "search [query]",
		Short: "Search guests by name, phone, email or NIC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guests, err := c.app.Guest.Search(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to search guests: %w", err)
			}

			return c.renderGuests(cmd.OutOrStdout(), guests)
		},
	})

	guestsCmd.AddCommand(&cobra.Command{
		Use:   "get [id]",
		Short: "Show a guest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guest, err := c.app.Guest.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get guest: %w", err)
			}

			return c.renderGuest(cmd.OutOrStdout(), guest)
		},
	})

	guestsCmd.AddCommand(&cobra.Command{
		Use:   "nic [nic-card-number]",
		Short: "Show the guest holding a national identity card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guest, err := c.app.Guest.GetByNIC(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get guest: %w", err)
			}

			return c.renderGuest(cmd.OutOrStdout(), guest)
		},
	})

	return guestsCmd
}

func (c *cli) renderGuests(out io.Writer, guests []model.Guest) error {
	return c.render(out, guests, func(w io.Writer) {
		if len(guests) == 0 {
			fmt.Fprintln(w, "No guests found")

			return
		}

		fmt.Fprintln(w, "ID\tNAME\tPHONE\tEMAIL\tNIC")
		fmt.Fprintln(w, "--\t----\t-----\t-----\t---")

		for _, guest := range guests {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", guest.ID, guest.Name, guest.Phone, guest.Email, guest.NICCardNum)
		}
	})
}

func (c *cli) renderGuest(out io.Writer, guest model.Guest) error {
	return c.render(out, guest, func(w io.Writer) {
		fmt.Fprintf(w, "ID:\t%s\n", guest.ID)
		fmt.Fprintf(w, "Name:\t%s\n", guest.Name)
		fmt.Fprintf(w, "Phone:\t%s\n", guest.Phone)
		fmt.Fprintf(w, "Email:\t%s\n", guest.Email)
		fmt.Fprintf(w, "Address:\t%s\n", guest.Address)
		fmt.Fprintf(w, "NIC:\t%s\n", guest.NICCardNum)
	})
}
