package curriculum

import "fmt"

// Unit is one teaching unit of a subject with its topic list.
// Topic order is display order only.
type Unit struct {
	ID     string
	Name   string
	Topics []string
}

// Subject describes one school subject of the 5th grade curriculum.
// TimePerQuestion is the seconds allotted per question when a quiz
// on this subject is started.
type Subject struct {
	Name            string
	Icon            string
	Color           string // hex color for the subject card
	TimePerQuestion int
	Units           []Unit
}

// Unit returns the unit with the given ID, or an error if the subject
// has no such unit.
func (s Subject) Unit(id string) (Unit, error) {
	for _, u := range s.Units {
		if u.ID == id {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("subject %q has no unit %q", s.Name, id)
}

// Subjects returns the full catalog in display order.
func Subjects() []Subject {
	return catalog
}

// SubjectByName looks a subject up by its display name.
func SubjectByName(name string) (Subject, error) {
	for _, s := range catalog {
		if s.Name == name {
			return s, nil
		}
	}
	return Subject{}, fmt.Errorf("unknown subject %q", name)
}
