package scoring

import (
	"math"
	"strconv"
	"strings"

	"branchaudit/models"
)

var ratingValues = map[string]int{
	models.RatingExcellent: 100,
	models.RatingGood:      80,
	models.RatingAverage:   60,
	models.RatingPoor:      40,
}

// RatingValue maps a rating level to its numeric value.
func RatingValue(level string) (int, bool) {
	v, ok := ratingValues[strings.TrimSpace(level)]
	return v, ok
}

// StaffScore is the derived part of a staff evaluation.
type StaffScore struct {
	Score      int    `json:"scoreOutOf100"`
	Grade      string `json:"grade"`
	TotalMarks string `json:"totalMarks"`
	Answered   int    `json:"answered"`
	// OK is false when no parameter carried a known rating; Score is then 0
	// and Grade "-", and the caller must not persist the result.
	OK bool `json:"ok"`
}

// IsRemarksKey reports whether a ratings key holds free-text remarks.
func IsRemarksKey(key string) bool {
	return strings.HasSuffix(key, models.RemarksSuffix)
}

// ScoreStaff averages the values of all rated parameters.
func ScoreStaff(ratings map[string]string) StaffScore {
	sum, n := 0, 0
	for key, level := range ratings {
		if IsRemarksKey(key) {
			continue
		}
		if v, ok := RatingValue(level); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return StaffScore{Grade: "-"}
	}
	score := int(math.Round(float64(sum) / float64(n)))
	return StaffScore{
		Score:      score,
		Grade:      Grade(score),
		TotalMarks: strconv.Itoa(score),
		Answered:   n,
		OK:         true,
	}
}

// Grade converts a staff score to a letter.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 75:
		return "B"
	case score >= 60:
		return "C"
	}
	return "D"
}

// Label describes an average score in words.
func Label(avg float64) string {
	switch {
	case avg >= 90:
		return models.RatingExcellent
	case avg >= 75:
		return models.RatingGood
	case avg >= 60:
		return models.RatingAverage
	}
	return models.RatingPoor
}
