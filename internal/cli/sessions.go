package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"frontdesk/internal/domains/session/model/dto"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"

	"github.com/spf13/cobra"
)

func (c *cli) sessionsCmd() *cobra.Command {
	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage room occupancy sessions",
	}

	var activeOnly bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sessions, err := c.app.Session.GetAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}

			if activeOnly {
				active := sessions[:0:0]
				for _, session := range sessions {
					if session.IsActive {
						active = append(active, session)
					}
				}

				sessions = active
			}

			return c.render(cmd.OutOrStdout(), sessions, func(w io.Writer) {
				if len(sessions) == 0 {
					fmt.Fprintln(w, "No sessions found")

					return
				}

				fmt.Fprintln(w, "ID\tROOM\tEXTRA BEDS\tCHECK-IN\tCHECK-OUT\tACTIVE")
				fmt.Fprintln(w, "--\t----\t----------\t--------\t---------\t------")

				for _, session := range sessions {
					fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\n",
						session.ID, session.RoomNumber, session.NumberOfExtraBeds,
						timestamp(&session.ActualCheckIn), timestamp(session.ActualCheckOut), yesNo(session.IsActive))
				}
			})
		},
	}

	listCmd.Flags().BoolVar(&activeOnly, "active", false, "Only sessions still in progress")

	var checkOut string

	endCmd := &cobra.Command{
		Use:   "end [id]",
		Short: "Check the guests of a session out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid session id: %s", args[0])
			}

			at := timezone.Now()
			if checkOut != "" {
				if at, err = time.Parse(constant.DateFormat, checkOut); err != nil {
					return fmt.Errorf("invalid --at value, expected RFC 3339: %w", err)
				}
			}

			session, err := c.app.Session.End(cmd.Context(), id, dto.EndSessionRequest{ActualCheckOut: at})
			if err != nil {
				return fmt.Errorf("failed to end session: %w", err)
			}

			return c.render(cmd.OutOrStdout(), session, func(w io.Writer) {
				fmt.Fprintf(w, "%s Ended session %d for room %s at %s\n", okMark, session.ID, session.RoomNumber, timestamp(session.ActualCheckOut))
			})
		},
	}

	endCmd.Flags().StringVar(&checkOut, "at", "", "Check-out time (RFC 3339), defaults to now")

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid session id: %s", args[0])
			}

			if err := c.app.Session.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete session: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted session %d\n", okMark, id)

			return nil
		},
	}

	sessionsCmd.AddCommand(listCmd, endCmd, deleteCmd)

	return sessionsCmd
}
