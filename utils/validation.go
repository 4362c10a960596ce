package utils

func IsValidValueOfConstant(value string, constantValues []string) bool {
	for _, v := range constantValues {
		if v == value {
			return true
		}
	}
	return false
}

// AllInVocabulary reports whether every item belongs to the fixed
// vocabulary (used for the amenities multi-select).
func AllInVocabulary(items, vocabulary []string) bool {
	for _, item := range items {
		if !IsValidValueOfConstant(item, vocabulary) {
			return false
		}
	}
	return true
}
