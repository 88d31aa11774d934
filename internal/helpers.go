package internal

import "time"

const (
	formatDDMMYYYY     = "02.01.2006"
	formatDDMMYYYYHHMM = "02.01.2006 15:04 MST"
)

func Format(date time.Time) string {
	return date.Format(formatDDMMYYYY)
}

func FormatDateTime(date time.Time) string {
	return date.UTC().Format(formatDDMMYYYYHHMM)
}
