package domain

// AvailableColorCodes is the fixed palette of 15 easily distinguishable task
// colors offered by the color picker.
var AvailableColorCodes = []string{
	"#FF5252", // red
	"#FF9800", // orange
	"#FFC107", // amber
	"#FFEB3B", // yellow
	"#CDDC39", // lime
	"#8BC34A", // light green
	"#4CAF50", // green
	"#009688", // teal
	"#00BCD4", // cyan
	"#2196F3", // blue
	"#3F51B5", // indigo
	"#673AB7", // deep purple
	"#9C27B0", // purple
	"#E91E63", // pink
	"#795548", // brown
}

// AvailableColors returns the palette colors not present in used, preserving
// palette order. A color already assigned to a task is not offered again,
// though the store itself never rejects duplicates (imports may introduce
// them).
func AvailableColors(used []string) []string {
	usedSet := make(map[string]bool, len(used))
	for _, c := range used {
		usedSet[c] = true
	}

	var available []string
	for _, c := range AvailableColorCodes {
		if !usedSet[c] {
			available = append(available, c)
		}
	}
	return available
}

// IsPaletteColor reports whether colorCode is one of the palette colors.
func IsPaletteColor(colorCode string) bool {
	for _, c := range AvailableColorCodes {
		if c == colorCode {
			return true
		}
	}
	return false
}
