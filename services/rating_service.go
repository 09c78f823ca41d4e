package services

// ApplyNewRating folds a new 1-5 rating into a running average without
// rescanning existing reviews. A non-positive count is the empty base case,
// so the function never divides by zero. The result is equivalent to the
// arithmetic mean over all ratings within double precision.
func ApplyNewRating(currentAverage float64, currentCount int, newRating int) (float64, int) {
	if currentCount <= 0 {
		return float64(newRating), 1
	}
	newCount := currentCount + 1
	newAverage := (currentAverage*float64(currentCount) + float64(newRating)) / float64(newCount)
	return newAverage, newCount
}
