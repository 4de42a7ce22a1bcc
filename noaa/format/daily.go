package format

import (
	"fmt"
	"strconv"
)

// ------------------------------
// Variable   Columns   Type
// ------------------------------
// ID            1-11   Character
// YEAR         12-15   Integer
// MONTH        16-17   Integer
// ELEMENT      18-21   Character
// VALUE1       22-26   Integer
// MFLAG1       27-27   Character
// QFLAG1       28-28   Character
// SFLAG1       29-29   Character
//   .           .          .
// VALUE31    262-266   Integer
// MFLAG31    267-267   Character
// QFLAG31    268-268   Character
// SFLAG31    269-269   Character
// ------------------------------

const (
	// Day slots reserved on every line, regardless of the month length
	DAY_SLOTS int = 31
	// Width of a single (value, mflag, qflag, sflag) group
	SLOT_WIDTH int = 8
	// Full width of a daily line
	DAILY_LINE_WIDTH int = 21 + DAY_SLOTS*SLOT_WIDTH

	// Reserved value for days without observations
	MISSING_VALUE int = -9999
)

var (
	dailyID      = Column{"id", 0, 11}
	dailyYear    = Column{"year", 11, 4}
	dailyMonth   = Column{"month", 15, 2}
	dailyElement = Column{"element", 17, 4}

	// Columns of the first day slot, shift by SLOT_WIDTH*(day-1) for the others
	slotValue = Column{"value", 21, 5}
	slotMFlag = Column{"mflag", 26, 1}
	slotQFlag = Column{"qflag", 27, 1}
	slotSFlag = Column{"sflag", 28, 1}
)

// Single day observation decoded from a daily line.
// Empty flags mean the flag was not set (blank in the file).
type DailyRecord struct {
	// ID of the weather station
	StationID string `csv:"id" db:"id"`

	// Date of the observation
	Year  int    `csv:"year" db:"year"`
	Month int    `csv:"month" db:"month"`
	Day   int    `csv:"day" db:"day"`
	Date  string `csv:"date" db:"date"`

	// Measured quantity (PRCP, TMAX, ...)
	Element string `csv:"element" db:"element"`

	// Observed value, MISSING_VALUE if there is no observation
	Value int `csv:"value" db:"value"`

	// Measurement flag
	MFlag string `csv:"mflag" db:"mflag"`
	// Quality flag
	QFlag string `csv:"qflag" db:"qflag"`
	// Source flag
	SFlag string `csv:"sflag" db:"sflag"`
}

func (r *DailyRecord) IsMissing() bool {
	return r.Value == MISSING_VALUE
}

// Formats a date as YYYY-MM-DD
func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// DecodeDailyLine expands one line into the records of its valid days, in
// ascending day order. Slots that do not correspond to a real date (e.g.
// February 30) are skipped. If any field is malformed the whole line is
// rejected with a *MalformedFieldError and no records.
func DecodeDailyLine(line string) ([]DailyRecord, error) {
	cols := NewColumns(line)

	id := cols.Slice(dailyID)
	year, err := parseInt(cols, dailyYear, id)
	if err != nil {
		return nil, err
	}
	month, err := parseInt(cols, dailyMonth, id)
	if err != nil {
		return nil, err
	}
	element := cols.Slice(dailyElement)

	days := make([]DailyRecord, 0, DaysInMonth(year, month))
	for day := 1; day <= DAY_SLOTS; day++ {
		// Checked before parsing, short months can leave the trailing slots empty
		if !IsValidDate(year, month, day) {
			continue
		}

		shift := (day - 1) * SLOT_WIDTH
		value, err := parseInt(cols, slotValue.Shift(shift), id)
		if err != nil {
			err.Field = fmt.Sprintf("value%d", day)
			return nil, err
		}

		days = append(days, DailyRecord{
			StationID: id,
			Year:      year,
			Month:     month,
			Day:       day,
			Date:      FormatDate(year, month, day),
			Element:   element,
			Value:     value,
			MFlag:     cols.Slice(slotMFlag.Shift(shift)),
			QFlag:     cols.Slice(slotQFlag.Shift(shift)),
			SFlag:     cols.Slice(slotSFlag.Shift(shift)),
		})
	}

	return days, nil
}

func parseInt(cols Columns, c Column, id string) (int, *MalformedFieldError) {
	raw := cols.Slice(c)
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &MalformedFieldError{StationID: id, Field: c.Name, Raw: raw, Err: err}
	}
	return val, nil
}
