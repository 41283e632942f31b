// Package timezone keeps the hotel's wall-clock location.
//
// Check-in and check-out timestamps are produced and rendered in this location:
//
//	timezone.Setup(cfg)                       // once, from main
//	checkIn := timezone.Now()                 // wizard default check-in
//	label := timezone.Format(checkIn, "2006-01-02 15:04")
//
// Until Setup runs (tests, library use) everything is UTC.
package timezone
