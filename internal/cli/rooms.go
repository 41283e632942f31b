package cli

import (
	"fmt"
	"io"

	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared/roomfilter"

	"github.com/spf13/cobra"
)

func (c *cli) roomsCmd() *cobra.Command {
	roomsCmd := &cobra.Command{
		Use:   "rooms",
		Short: "Browse rooms",
	}

	var (
		params dto.GetRoomsRequest
		search string
		status string
		order  string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List rooms, optionally filtered and sorted by room number",
		RunE: func(cmd *cobra.Command, _ []string) error {
			statusFilter, err := roomfilter.ParseStatus(status)
			if err != nil {
				return err
			}

			sortOrder, err := roomfilter.ParseOrder(order)
			if err != nil {
				return err
			}

			rooms, err := c.app.Room.GetAll(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to list rooms: %w", err)
			}

			rooms = roomfilter.FilterAndSort(rooms, search, statusFilter, sortOrder)

			return c.render(cmd.OutOrStdout(), rooms, func(w io.Writer) {
				if len(rooms) == 0 {
					fmt.Fprintln(w, "No rooms found")

					return
				}

				fmt.Fprintln(w, "ROOM\tFLOOR\tTYPE\tSTATUS")
				fmt.Fprintln(w, "----\t-----\t----\t------")

				for _, room := range rooms {
					fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", room.RoomNumber, room.FloorNumber, room.RoomType.Name, statusLabel(room.Status))
				}
			})
		},
	}

	listCmd.Flags().IntVar(&params.RoomTypeID, "room-type", 0, "Room type id")
	listCmd.Flags().IntVar(&params.Floor, "floor", 0, "Floor number")
	listCmd.Flags().StringVar(&search, "search", "", "Room type name or room number")
	listCmd.Flags().StringVar(&status, "status", "all", "all, available, notAvailable, booked or inSession")
	listCmd.Flags().StringVar(&order, "sort", "", "ascending or descending")

	roomsCmd.AddCommand(listCmd)

	return roomsCmd
}

func (c *cli) roomTypesCmd() *cobra.Command {
	roomTypesCmd := &cobra.Command{
		Use:   "room-types",
		Short: "Browse room types",
	}

	roomTypesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List room types with capacity and prices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			roomTypes, err := c.app.RoomType.GetAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list room types: %w", err)
			}

			return c.render(cmd.OutOrStdout(), roomTypes, func(w io.Writer) {
				fmt.Fprintln(w, "ID\tNAME\tPAX\tWITH BREAKFAST\tWITHOUT BREAKFAST")
				fmt.Fprintln(w, "--\t----\t---\t--------------\t-----------------")

				for _, roomType := range roomTypes {
					fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
						roomType.ID, roomType.Name, roomType.Pax,
						price(roomType.PriceWithBreakfast), price(roomType.PriceWithoutBreakfast))
				}
			})
		},
	})

	return roomTypesCmd
}
