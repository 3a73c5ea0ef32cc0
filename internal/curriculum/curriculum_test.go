package curriculum

import "testing"

func TestSubjectByName(t *testing.T) {
	s, err := SubjectByName(Math)
	if err != nil {
		t.Fatalf("SubjectByName(Math): %v", err)
	}
	if s.TimePerQuestion != 120 {
		t.Errorf("TimePerQuestion = %d, want 120", s.TimePerQuestion)
	}
	if len(s.Units) != 7 {
		t.Errorf("len(Units) = %d, want 7", len(s.Units))
	}
}

func TestSubjectByName_Unknown(t *testing.T) {
	if _, err := SubjectByName("Felsefe"); err == nil {
		t.Error("expected error for unknown subject")
	}
}

func TestUnitLookup(t *testing.T) {
	s, _ := SubjectByName(Turkish)

	u, err := s.Unit("t4")
	if err != nil {
		t.Fatalf("Unit(t4): %v", err)
	}
	if u.Name != "4. Bölüm: Dil Bilgisi" {
		t.Errorf("unit name = %q", u.Name)
	}

	if _, err := s.Unit("m1"); err == nil {
		t.Error("expected error for unit of another subject")
	}
}

func TestCatalogShape(t *testing.T) {
	subjects := Subjects()
	if len(subjects) != 6 {
		t.Fatalf("len(subjects) = %d, want 6", len(subjects))
	}

	seen := make(map[string]bool)
	for _, s := range subjects {
		if s.TimePerQuestion <= 0 {
			t.Errorf("%s: TimePerQuestion = %d, want > 0", s.Name, s.TimePerQuestion)
		}
		if len(s.Units) == 0 {
			t.Errorf("%s: no units", s.Name)
		}
		for _, u := range s.Units {
			if seen[u.ID] {
				t.Errorf("duplicate unit ID %q", u.ID)
			}
			seen[u.ID] = true
			if len(u.Topics) == 0 {
				t.Errorf("unit %s has no topics", u.ID)
			}
		}
	}
}
