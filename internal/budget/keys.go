// Package budget implements the persisted data model of the household
// budgeting application: credentials, per-user settings, month data keyed
// by "YYYY-MM", profiles, and the derived operations over them.
package budget

import (
	"fmt"
	"strconv"
	"strings"
)

// Storage key layout. Credentials live under a single global key; every
// other key is prefixed with "<username>_". The layout is part of the data
// portability contract and must not change.
const (
	KeyUsers          = "tagihan_users"
	KeyGlobalSettings = "tagihan_global_settings"
	KeyMonthData      = "tagihan_data"
	KeyUserProfile    = "user_profile"
	KeySession        = "tagihan_session"
	KeySessionSecret  = "tagihan_session_secret"
)

// MonthNames are the twelve canonical English month names used in settings
// and month selection.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// monthNumbers aligns index-for-index with MonthNames.
var monthNumbers = []string{
	"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12",
}

// PrefixedKey namespaces key for username.
func PrefixedKey(username, key string) string {
	if username == "" {
		return key
	}
	return username + "_" + key
}

// MonthKey derives the canonical "YYYY-MM" key from a year and a canonical
// month name. Unrecognized month names fall back to "01".
func MonthKey(year int, monthName string) string {
	monthNum := "01"
	for i, name := range MonthNames {
		if name == monthName {
			monthNum = monthNumbers[i]
			break
		}
	}
	return fmt.Sprintf("%d-%s", year, monthNum)
}

// MonthNameFromKey recovers the canonical month name from a "YYYY-MM" key.
// Unrecognized keys degrade to "January".
func MonthNameFromKey(key string) string {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return "January"
	}
	for i, num := range monthNumbers {
		if num == parts[1] {
			return MonthNames[i]
		}
	}
	return "January"
}

// PreviousMonthKey returns the chronologically preceding month key,
// handling year rollover (YYYY-01 precedes to (YYYY-1)-12). Keys whose
// month part is unrecognized are treated as "01".
func PreviousMonthKey(key string) string {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return key
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return key
	}

	monthIndex := 0
	for i, num := range monthNumbers {
		if num == parts[1] {
			monthIndex = i
			break
		}
	}

	prevYear := year
	prevIndex := monthIndex - 1
	if prevIndex < 0 {
		prevYear = year - 1
		prevIndex = 11
	}
	return fmt.Sprintf("%d-%s", prevYear, monthNumbers[prevIndex])
}

// IsValidMonthName reports whether name is one of the twelve canonical
// month names.
func IsValidMonthName(name string) bool {
	for _, m := range MonthNames {
		if m == name {
			return true
		}
	}
	return false
}
