// Package timezone provides time utilities for the application.
//
// Two concerns live here:
//
//  1. Dataset timestamps. Records carry epoch milliseconds or civil wall-clock
//     strings ("2025-09-10 09:00:00" or "2025-09-10T09:00:00") that are always
//     read at a fixed UTC+9 offset, independent of the host zone or DST:
//     ms, err := timezone.ParseCivil("2025-09-10 09:00:00")
//     ms, err := timezone.ToEpochMillis(value) // number or string
//     ms = timezone.TruncateToMinute(ms)
//
//  2. Display. Times are rendered in the application timezone:
//     now := timezone.Now()
//     formatted := timezone.Format(timezone.FromMillis(ms), "2006/01/02 15:04")
//
// The display timezone is configured via the APP_APP_TIMEZONE environment
// variable and defaults to Asia/Tokyo. When the tz database is not available
// the fixed UTC+9 zone is used instead.
package timezone
