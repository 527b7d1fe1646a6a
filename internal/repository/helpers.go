package repository

import "encoding/json"

// dateLayout is the storage format for calendar dates (no time component).
const dateLayout = "2006-01-02"

// encodeTags serializes a tag list as a JSON array for the tags column.
// A nil list encodes as "[]" so the column never holds NULL.
func encodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeTags parses the tags column. Malformed JSON degrades to no tags
// rather than failing the whole load.
func decodeTags(s string) []string {
	if s == "" || s == "[]" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil
	}
	return tags
}

// boolToInt converts a Go bool to 0/1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite 0/1 back to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
