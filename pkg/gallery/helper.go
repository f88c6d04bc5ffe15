package gallery

/**************************************************************************************************
** Contains checks if a string is present in a slice of strings.
**
** @param list - Slice of strings to search
** @param s - String to search for
** @return bool - True if string is present in slice, false otherwise
**************************************************************************************************/
func Contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

/**************************************************************************************************
** ContainsAny checks if any element of wanted is present in have. Used for the use-case
** filter, which is the one OR-across-values clause in the criteria model.
**
** @param have - Slice to search in
** @param wanted - Values to search for
** @return bool - True if at least one wanted value is present in have
**************************************************************************************************/
func ContainsAny(have []string, wanted []string) bool {
	for _, w := range wanted {
		if Contains(have, w) {
			return true
		}
	}
	return false
}

/**************************************************************************************************
** RemoveEmptyStrings removes all empty strings from a string array and returns a new array
** without the empty strings. Preserves the order of non-empty strings.
**
** @param arr - Array to process
** @return []string - New array containing only non-empty strings
**************************************************************************************************/
func RemoveEmptyStrings(arr []string) []string {
	result := make([]string, 0, len(arr))

	for _, str := range arr {
		if str != "" {
			result = append(result, str)
		}
	}

	return result
}

/**************************************************************************************************
** AverageQualityScore computes the unweighted mean of the four quality scores. The divisor
** is always 4: a metadata record with a missing sub-score (decoded as zero) drags the
** average down instead of being skipped. Downstream thresholds depend on this exact
** arithmetic, so keep the constant divisor.
**
** @param m - Metadata record to average (must be non-nil)
** @return float64 - Mean of sharpness, exposure accuracy, composition and emotional impact
**************************************************************************************************/
func AverageQualityScore(m *TPhotoMetadata) float64 {
	return (m.Sharpness + m.ExposureAccuracy + m.CompositionScore + m.EmotionalImpact) / 4
}
