package present

import "strconv"

// ContrastOf returns "black" or "white", whichever reads better on the given
// background. hexColor must be exactly six hex digits without a leading '#'.
// Other input is not rejected; it yields an unspecified but stable result.
//
// http://24ways.org/2010/calculating-color-contrast/
func ContrastOf(hexColor string) string {
	r := hexByte(hexColor, 0)
	g := hexByte(hexColor, 2)
	b := hexByte(hexColor, 4)

	// (299R + 587G + 114B) / 1000 >= 128, kept in integers to avoid rounding
	if r*299+g*587+b*114 >= 128*1000 {
		return "black"
	}
	return "white"
}

// hexByte decodes the two digits at offset, treating missing or invalid digits as zero
func hexByte(s string, offset int) int {
	if offset >= len(s) {
		return 0
	}
	end := min(offset+2, len(s))
	v, err := strconv.ParseUint(s[offset:end], 16, 8)
	if err != nil {
		return 0
	}
	return int(v)
}
