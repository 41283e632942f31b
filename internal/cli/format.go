package cli

import (
	"strconv"
	"time"

	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"

	"github.com/fatih/color"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
)

func statusLabel(status roomModel.Status) string {
	label := status.Label
	if label == "" {
		label = roomModel.StatusLabel(status.ID)
	}

	switch status.ID {
	case roomModel.StatusAvailable:
		return color.New(color.FgGreen).Sprint(label)
	case roomModel.StatusInSession:
		return color.New(color.FgCyan).Sprint(label)
	case roomModel.StatusBooked:
		return color.New(color.FgYellow).Sprint(label)
	case roomModel.StatusNotAvailable:
		return color.New(color.FgRed).Sprint(label)
	default:
		return label
	}
}

func price(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func timestamp(value *time.Time) string {
	if value == nil || value.IsZero() {
		return "-"
	}

	return value.Format(constant.DateFormat)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
