package services

import "github.com/essaehaan/Profile/internal/client/models"

// Stats are the admin dashboard totals.
type Stats struct {
	Courses int
	Revenue float64
}

// Summarize counts courses and sums their prices.
func Summarize(courses []models.Course) Stats {
	st := Stats{Courses: len(courses)}
	for _, c := range courses {
		st.Revenue += float64(c.Price)
	}
	return st
}
