package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"frontdesk/internal/domains/wizard/model"
	"frontdesk/shared/failure"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errNoInput = errors.New("input ended before the check-in was complete")

type checkinOptions struct {
	roomTypeID int
	floor      int
	roomNumber string
	guestIDs   []string
	extraBeds  int
	breakfast  bool
	note       string
	yes        bool
}

// checkin walks one wizard from room selection to submit. Values given as flags are
// applied directly; everything else is asked for on the input stream.
type checkin struct {
	cli    *cli
	opts   checkinOptions
	flags  func(name string) bool
	in     *bufio.Scanner
	out    io.Writer
	wizard model.Wizard
}

func (c *cli) checkinCmd() *cobra.Command {
	var opts checkinOptions

	checkinCmd := &cobra.Command{
		Use:   "checkin",
		Short: "Check guests into a room",
		Long: `Runs the three step check-in: pick a room type, floor and room, pick the guests,
then confirm the summary and total price. Flags skip the matching prompts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run := &checkin{
				cli:   c,
				opts:  opts,
				flags: cmd.Flags().Changed,
				in:    bufio.NewScanner(cmd.InOrStdin()),
				out:   cmd.OutOrStdout(),
			}

			return run.run(cmd.Context())
		},
	}

	checkinCmd.Flags().IntVar(&opts.roomTypeID, "room-type", 0, "Room type id")
	checkinCmd.Flags().IntVar(&opts.floor, "floor", 0, "Floor number")
	checkinCmd.Flags().StringVar(&opts.roomNumber, "room", "", "Room number")
	checkinCmd.Flags().StringSliceVar(&opts.guestIDs, "guest", nil, "Guest id (repeatable)")
	checkinCmd.Flags().IntVar(&opts.extraBeds, "extra-beds", 0, "Number of extra beds (0-10)")
	checkinCmd.Flags().BoolVar(&opts.breakfast, "breakfast", false, "Include breakfast")
	checkinCmd.Flags().StringVar(&opts.note, "note", "", "Note for the session")
	checkinCmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Submit without asking for confirmation")

	return checkinCmd
}

func (r *checkin) run(ctx context.Context) (err error) {
	wizards := r.cli.app.Wizard

	r.wizard, err = wizards.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to start check-in: %w", err)
	}

	submitted := false

	defer func() {
		if !submitted {
			_ = wizards.Cancel(context.WithoutCancel(ctx), r.wizard.ID)
		}
	}()

	if err = r.selectRoom(ctx); err != nil {
		return err
	}

	if err = r.step(ctx, wizards.Next); err != nil {
		return err
	}

	if err = r.selectGuests(ctx); err != nil {
		return err
	}

	if err = r.step(ctx, wizards.Next); err != nil {
		return err
	}

	summary, err := wizards.Confirmation(ctx, r.wizard.ID)
	if err != nil {
		return err
	}

	r.printSummary(summary)

	if !r.opts.yes {
		answer, err := r.ask("Create session? [y/N]")
		if err != nil {
			return err
		}

		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			fmt.Fprintln(r.out, "Check-in cancelled")

			return nil
		}
	}

	session, err := wizards.Submit(ctx, r.wizard.ID)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	submitted = true

	fmt.Fprintf(r.out, "%s Session %d created for room %s\n", okMark, session.ID, session.RoomNumber)

	return nil
}

func (r *checkin) selectRoom(ctx context.Context) error {
	wizards := r.cli.app.Wizard

	fmt.Fprintln(r.out, color.New(color.Bold).Sprint("Room types"))

	for _, roomType := range r.wizard.RoomTypes {
		fmt.Fprintf(r.out, "  %d  %s (pax %d)\n", roomType.ID, roomType.Name, roomType.Pax)
	}

	err := r.retry("room-type", func() error {
		id, err := r.intValue("room-type", r.opts.roomTypeID, "Room type id")
		if err != nil {
			return err
		}

		r.wizard, err = wizards.SelectRoomType(ctx, r.wizard.ID, id)

		return err
	})
	if err != nil {
		return err
	}

	err = r.retry("floor", func() error {
		floor, err := r.intValue("floor", r.opts.floor, "Floor")
		if err != nil {
			return err
		}

		r.wizard, err = wizards.SelectFloor(ctx, r.wizard.ID, floor)

		return err
	})
	if err != nil {
		return err
	}

	if len(r.wizard.AvailableRooms) == 0 {
		return fmt.Errorf("no available rooms of this type on floor %d", r.wizard.Draft.SelectedFloor)
	}

	numbers := make([]string, len(r.wizard.AvailableRooms))
	for i, room := range r.wizard.AvailableRooms {
		numbers[i] = room.RoomNumber
	}

	fmt.Fprintf(r.out, "Available rooms: %s\n", strings.Join(numbers, ", "))

	err = r.retry("room", func() error {
		number := r.opts.roomNumber
		if !r.flags("room") {
			answer, err := r.ask("Room number")
			if err != nil {
				return err
			}

			number = answer
		}

		var err error
		r.wizard, err = wizards.SelectRoom(ctx, r.wizard.ID, number)

		return err
	})
	if err != nil {
		return err
	}

	return r.selectExtras(ctx)
}

func (r *checkin) selectExtras(ctx context.Context) (err error) {
	wizards := r.cli.app.Wizard

	extraBeds := r.opts.extraBeds
	if !r.flags("extra-beds") {
		if extraBeds, err = r.optionalInt("Extra beds [0]"); err != nil {
			return err
		}
	}

	if r.wizard, err = wizards.SetExtraBeds(ctx, r.wizard.ID, extraBeds); err != nil {
		return err
	}

	breakfast := r.opts.breakfast
	if !r.flags("breakfast") {
		answer, err := r.ask("Breakfast included? [y/N]")
		if err != nil {
			return err
		}

		breakfast = strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
	}

	if r.wizard, err = wizards.SetBreakfast(ctx, r.wizard.ID, breakfast); err != nil {
		return err
	}

	note := r.opts.note
	if !r.flags("note") {
		if note, err = r.ask("Note (optional)"); err != nil {
			return err
		}
	}

	r.wizard, err = wizards.SetNote(ctx, r.wizard.ID, note)

	return err
}

func (r *checkin) selectGuests(ctx context.Context) error {
	wizards := r.cli.app.Wizard

	if r.flags("guest") {
		for _, guestID := range r.opts.guestIDs {
			var err error
			if r.wizard, err = wizards.AddGuest(ctx, r.wizard.ID, guestID); err != nil {
				return err
			}
		}

		return nil
	}

	fmt.Fprintf(r.out, "Select up to %d guests. Leave the search empty when done.\n", r.wizard.MaxOccupancy)

	for {
		query, err := r.ask("Search guest")
		if err != nil {
			return err
		}

		if query == "" {
			if len(r.wizard.Draft.GuestIDs) > 0 {
				return nil
			}

			fmt.Fprintf(r.out, "%s At least one guest is required\n", failMark)

			continue
		}

		result, err := wizards.SearchGuests(ctx, r.wizard.ID, query)
		if err != nil {
			return err
		}

		if len(result.Results) == 0 {
			fmt.Fprintln(r.out, "No guests found")

			continue
		}

		for _, guest := range result.Results {
			fmt.Fprintf(r.out, "  %s  %s  %s\n", guest.ID, guest.Name, guest.NICCardNum)
		}

		guestID, err := r.ask("Guest id")
		if err != nil {
			return err
		}

		if guestID == "" {
			continue
		}

		next, err := wizards.AddGuest(ctx, r.wizard.ID, guestID)
		if err != nil {
			fmt.Fprintf(r.out, "%s %s\n", failMark, err)

			continue
		}

		r.wizard = next

		fmt.Fprintf(r.out, "%s %d of %d guests selected\n", okMark, len(r.wizard.Draft.GuestIDs), r.wizard.MaxOccupancy)
	}
}

func (r *checkin) step(ctx context.Context, move func(ctx context.Context, id string) (model.Wizard, error)) error {
	next, err := move(ctx, r.wizard.ID)
	if err != nil {
		return err
	}

	r.wizard = next

	return nil
}

func (r *checkin) printSummary(summary model.Summary) {
	fmt.Fprintln(r.out, color.New(color.Bold).Sprint("Confirmation"))
	fmt.Fprintf(r.out, "  Room:        %s (%s, floor %d)\n", summary.RoomNumber, summary.RoomTypeName, summary.Floor)
	fmt.Fprintf(r.out, "  Check-in:    %s\n", timestamp(&summary.ActualCheckIn))
	fmt.Fprintf(r.out, "  Guests:      %d\n", summary.GuestCount)

	for _, guest := range summary.Guests {
		fmt.Fprintf(r.out, "               %s %s\n", guest.ID, guest.Name)
	}

	fmt.Fprintf(r.out, "  Extra beds:  %d\n", summary.NumberOfExtraBeds)
	fmt.Fprintf(r.out, "  Breakfast:   %s\n", yesNo(summary.IsBreakfastIncluded))

	if summary.Note != "" {
		fmt.Fprintf(r.out, "  Note:        %s\n", summary.Note)
	}

	fmt.Fprintf(r.out, "  Total price: %s\n", color.New(color.FgGreen, color.Bold).Sprint(price(summary.TotalPrice)))
}

// retry repeats fn while it is rejected as a bad request, unless the value came from flag.
func (r *checkin) retry(flag string, fn func() error) error {
	for {
		err := fn()
		if err == nil || r.flags(flag) || failure.GetCode(err) != http.StatusBadRequest || errors.Is(err, errNoInput) {
			return err
		}

		fmt.Fprintf(r.out, "%s %s\n", failMark, err)
	}
}

func (r *checkin) intValue(flag string, value int, prompt string) (int, error) {
	if r.flags(flag) {
		return value, nil
	}

	answer, err := r.ask(prompt)
	if err != nil {
		return 0, err
	}

	number, err := strconv.Atoi(answer)
	if err != nil {
		return 0, failure.BadRequestFromString(fmt.Sprintf("%q is not a number", answer))
	}

	return number, nil
}

func (r *checkin) optionalInt(prompt string) (int, error) {
	answer, err := r.ask(prompt)
	if err != nil || answer == "" {
		return 0, err
	}

	number, err := strconv.Atoi(answer)
	if err != nil {
		return 0, failure.BadRequestFromString(fmt.Sprintf("%q is not a number", answer))
	}

	return number, nil
}

func (r *checkin) ask(prompt string) (string, error) {
	fmt.Fprintf(r.out, "%s: ", prompt)

	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", err
		}

		return "", errNoInput
	}

	return strings.TrimSpace(r.in.Text()), nil
}
