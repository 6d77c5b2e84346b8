package models

import "strconv"

// ClassGrade is the school class a student belongs to, 1 through 12.
type ClassGrade int

const (
	MinClassGrade ClassGrade = 1
	MaxClassGrade ClassGrade = 12
)

func (cg ClassGrade) Valid() bool {
	return cg >= MinClassGrade && cg <= MaxClassGrade
}

func (cg ClassGrade) Int() int {
	return int(cg)
}

// ParseClassGrade parses the textual grade clients send in JSON and
// form fields. Reports false for anything outside the valid range.
func ParseClassGrade(s string) (ClassGrade, bool) {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	grade := ClassGrade(value)
	if !grade.Valid() {
		return 0, false
	}

	return grade, true
}
