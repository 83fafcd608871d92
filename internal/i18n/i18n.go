// Package i18n provides the message catalog and lookup helper for the two
// supported interface languages, English ("en") and Indonesian ("id").
package i18n

import "strings"

// T looks up key in the table for lang, falling back to English, falling
// back to the raw key. Each vars entry replaces the literal "{name}"
// placeholder in the message.
func T(lang, key string, vars map[string]string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations["en"]
	}

	text, ok := table[key]
	if !ok {
		text, ok = translations["en"][key]
	}
	if !ok {
		text = key
	}

	for name, value := range vars {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

var translations = map[string]map[string]string{
	"en": {
		"appName":                "Tagihan Serampangan",
		"requiredFields":         "Please fill in all required fields",
		"passwordsMismatch":      "Passwords do not match",
		"loginFailed":            "Invalid username or password",
		"loginSuccess":           "Login successful!",
		"logoutSuccess":          "Logged out",
		"usernameExists":         "Username already exists. Please try logging in or choose another username.",
		"passwordSetSuccess":     "Account created successfully",
		"invalidRowFormat":       "Invalid row format: {row}",
		"invalidAllocation":      "Invalid allocation for {name}",
		"categoryNotFound":       "Category {category} not found for {name}, using default",
		"bulkAddSuccess":         "Budget items added successfully",
		"bulkAddError":           "No budget items could be added",
		"bulkRealizationSuccess": "Realizations updated successfully",
		"invalidPercentage":      "Percentage must be between 0 and 100",
		"noExpensesToUpdate":     "No budget items to update",
		"copySuccess":            "Data copied from previous month",
		"copyError":              "Previous month has no data to copy",
		"exportSuccess":          "Data exported successfully",
		"exportError":            "Failed to export data",
		"fileTooLarge":           "File is too large (max 1 MB)",
		"confirmOverwrite":       "This will overwrite the current month's data. Continue?",
		"importSuccess":          "Data imported successfully",
		"invalidJsonFile":        "Invalid JSON file",
		"categoryAdded":          "Category added",
		"categoryUpdated":        "Category updated",
		"categoryDeleted":        "Category deleted",
		"categoryExists":         "Category already exists",
		"nameUpdated":            "Name updated",
		"avatarUpdated":          "Avatar updated",
		"passwordUpdated":        "Password updated",
		"invalidCurrentPassword": "Current password is incorrect",
		"passwordUpdateFailed":   "Failed to update password",
		"totalIncome":            "Total Income",
		"budgetedExpenses":       "Budgeted Expenses",
		"totalSpending":          "Total Spending",
		"totalSavings":           "Total Savings",
		"grams":                  "gram",
		"shares":                 "shares",
	},
	"id": {
		"appName":                "Tagihan Serampangan",
		"requiredFields":         "Mohon isi semua kolom yang wajib",
		"passwordsMismatch":      "Kata sandi tidak cocok",
		"loginFailed":            "Nama pengguna atau kata sandi salah",
		"loginSuccess":           "Berhasil masuk!",
		"logoutSuccess":          "Berhasil keluar",
		"usernameExists":         "Nama pengguna sudah terdaftar. Silakan masuk atau pilih nama lain.",
		"passwordSetSuccess":     "Akun berhasil dibuat",
		"invalidRowFormat":       "Format baris tidak valid: {row}",
		"invalidAllocation":      "Alokasi tidak valid untuk {name}",
		"categoryNotFound":       "Kategori {category} tidak ditemukan untuk {name}, memakai kategori bawaan",
		"bulkAddSuccess":         "Pos anggaran berhasil ditambahkan",
		"bulkAddError":           "Tidak ada pos anggaran yang bisa ditambahkan",
		"bulkRealizationSuccess": "Realisasi berhasil diperbarui",
		"invalidPercentage":      "Persentase harus antara 0 dan 100",
		"noExpensesToUpdate":     "Tidak ada pos anggaran untuk diperbarui",
		"copySuccess":            "Data disalin dari bulan sebelumnya",
		"copyError":              "Bulan sebelumnya tidak punya data untuk disalin",
		"exportSuccess":          "Data berhasil diekspor",
		"exportError":            "Gagal mengekspor data",
		"fileTooLarge":           "Berkas terlalu besar (maks 1 MB)",
		"confirmOverwrite":       "Ini akan menimpa data bulan berjalan. Lanjutkan?",
		"importSuccess":          "Data berhasil diimpor",
		"invalidJsonFile":        "Berkas JSON tidak valid",
		"categoryAdded":          "Kategori ditambahkan",
		"categoryUpdated":        "Kategori diperbarui",
		"categoryDeleted":        "Kategori dihapus",
		"categoryExists":         "Kategori sudah ada",
		"nameUpdated":            "Nama diperbarui",
		"avatarUpdated":          "Avatar diperbarui",
		"passwordUpdated":        "Kata sandi diperbarui",
		"invalidCurrentPassword": "Kata sandi saat ini salah",
		"passwordUpdateFailed":   "Gagal memperbarui kata sandi",
		"totalIncome":            "Total Pemasukan",
		"budgetedExpenses":       "Anggaran Pengeluaran",
		"totalSpending":          "Total Pengeluaran",
		"totalSavings":           "Total Tabungan",
		"grams":                  "gram",
		"shares":                 "lembar",
	},
}
