// internal/tables/tns.go
package tables

// Highest scalefactor band temporal noise shaping may cover, per
// sample rate index.
var (
	tnsMaxBandsLong = [12]int{
		31, 31, 34, 40, 42, 51, 46, 46, 42, 42, 42, 39,
	}
	tnsMaxBandsShort = [12]int{
		9, 9, 10, 14, 14, 14, 14, 14, 14, 14, 14, 14,
	}
)

// TNSMaxBands returns the TNS band limit for a sample rate index, or
// 0 when the index has no table entry.
func TNSMaxBands(srIndex uint8, short bool) int {
	if srIndex >= 12 {
		return 0
	}
	if short {
		return tnsMaxBandsShort[srIndex]
	}
	return tnsMaxBandsLong[srIndex]
}
