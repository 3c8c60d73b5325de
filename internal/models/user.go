package models

import "time"

// User is the root of the record. Terms keep the order they were entered in.
type User struct {
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creation_date"`
	Terms        []*Term   `json:"terms"`
}

// Link restamps every back-reference by walking the owning edges from u.
// Decoded documents carry no back-references, so loaders call this.
func Link(u *User) {
	if u == nil {
		return
	}
	for _, term := range u.Terms {
		if term == nil {
			continue
		}
		term.User = u
		for _, course := range term.Courses {
			if course == nil {
				continue
			}
			course.Term = term
			for _, activity := range course.Activities {
				if activity != nil {
					activity.Course = course
				}
			}
		}
	}
}
