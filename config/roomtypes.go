package config

// RoomTypes is the fixed, ordered list of room-type labels. As with
// SupportedCities, the position of a label is its categorical encoding.
var RoomTypes = []string{
	"Entire home/apt",
	"Private room",
	"Shared room",
}

// RoomTypeIndex returns the stable 0-based encoding of a room-type label,
// or -1 for an unknown label.
func RoomTypeIndex(label string) int {
	for i, rt := range RoomTypes {
		if rt == label {
			return i
		}
	}
	return -1
}
