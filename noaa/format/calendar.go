package format

// Gregorian leap year rule: every 4 years, except centuries not divisible by 400
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Returns the number of days in the month, or 0 if the month is not in [1, 12]
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// IsValidDate reports whether (year, month, day) is a real calendar date.
// The daily format always reserves 31 day slots, so impossible dates like
// February 30 show up in every file and are filtered with this.
func IsValidDate(year, month, day int) bool {
	return day >= 1 && day <= DaysInMonth(year, month)
}
