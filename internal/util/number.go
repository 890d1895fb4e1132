package util

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var groupingPrinter = message.NewPrinter(language.Japanese)

// FormatGrouped floors v and renders it with thousands separators ("12,345").
func FormatGrouped(v float64) string {
	return groupingPrinter.Sprintf("%d", int64(math.Floor(v)))
}

// FormatPercent renders v with one decimal and a percent suffix. v is already in percent units.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// FormatRaw renders v with the shortest exact representation.
func FormatRaw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
