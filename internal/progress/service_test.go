package progress

import "testing"

// memStore is an in-memory Store recording every save.
type memStore struct {
	roster []Profile
	saves  int
}

func (m *memStore) LoadRoster() []Profile {
	return append([]Profile(nil), m.roster...)
}

func (m *memStore) SaveRoster(roster []Profile) {
	m.roster = append([]Profile(nil), roster...)
	m.saves++
}

func TestAddProfileActivatesAndPersists(t *testing.T) {
	st := &memStore{}
	svc := NewService(st)

	p := svc.AddProfile("Mina")
	if p == nil {
		t.Fatal("AddProfile returned nil for a fresh name")
	}
	if p.Stars != 0 || len(p.CompletedLessons) != 0 {
		t.Errorf("new profile = %+v, want zero stars and no completions", p)
	}
	if svc.Active() == nil || svc.Active().Name != "Mina" {
		t.Error("new profile should become active")
	}
	if st.saves != 1 {
		t.Errorf("saves = %d, want 1", st.saves)
	}
	if p.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestAddProfileRejectsEmptyAndDuplicate(t *testing.T) {
	svc := NewService(&memStore{})
	svc.AddProfile("Mina")

	if svc.AddProfile("") != nil {
		t.Error("empty name should be rejected")
	}
	if svc.AddProfile("Mina") != nil {
		t.Error("duplicate name should be rejected")
	}
	if len(svc.Profiles()) != 1 {
		t.Errorf("roster size = %d, want 1", len(svc.Profiles()))
	}
}

func TestSelectAndDeselect(t *testing.T) {
	svc := NewService(&memStore{roster: []Profile{{Name: "Mina"}, {Name: "Leo"}}})

	if svc.Active() != nil {
		t.Error("no profile should be active after load")
	}

	svc.SelectProfile("Leo")
	if a := svc.Active(); a == nil || a.Name != "Leo" {
		t.Fatalf("active = %+v, want Leo", a)
	}

	svc.SelectProfile("Nobody")
	if a := svc.Active(); a == nil || a.Name != "Leo" {
		t.Error("selecting an unknown name must not change the active profile")
	}

	svc.Deselect()
	if svc.Active() != nil {
		t.Error("Deselect should clear the active profile")
	}
}

func TestDeleteProfile(t *testing.T) {
	st := &memStore{roster: []Profile{{Name: "Mina"}, {Name: "Leo"}, {Name: "Sue"}}}
	svc := NewService(st)

	// Deleting the active profile logs it out.
	svc.SelectProfile("Leo")
	svc.DeleteProfile("Leo")
	if svc.Active() != nil {
		t.Error("deleting the active profile should clear the selection")
	}
	if len(svc.Profiles()) != 2 {
		t.Fatalf("roster size = %d, want 2", len(svc.Profiles()))
	}

	// Deleting before the active index keeps the same profile active.
	svc.SelectProfile("Sue")
	svc.DeleteProfile("Mina")
	if a := svc.Active(); a == nil || a.Name != "Sue" {
		t.Errorf("active = %+v, want Sue after deleting earlier profile", a)
	}

	// Unknown name is a no-op.
	saves := st.saves
	svc.DeleteProfile("Nobody")
	if st.saves != saves {
		t.Error("deleting an unknown profile should not persist")
	}
}

func TestAddStars(t *testing.T) {
	st := &memStore{}
	svc := NewService(st)

	// No active profile: silently dropped.
	svc.AddStars(5)
	if st.saves != 0 {
		t.Error("AddStars without an active profile should not persist")
	}

	svc.AddProfile("Mina")
	svc.AddStars(5)
	svc.AddStars(AnswerReward)
	if got := svc.Active().Stars; got != 10 {
		t.Errorf("stars = %d, want 10", got)
	}

	svc.AddStars(0)
	svc.AddStars(-3)
	if got := svc.Active().Stars; got != 10 {
		t.Errorf("stars = %d after non-positive amounts, want 10", got)
	}

	// Persisted on every successful mutation.
	if st.roster[0].Stars != 10 {
		t.Errorf("persisted stars = %d, want 10", st.roster[0].Stars)
	}
}

func TestMarkLessonCompleteIdempotent(t *testing.T) {
	svc := NewService(&memStore{})
	svc.AddProfile("Mina")

	if svc.IsLessonComplete(1, 0) {
		t.Fatal("fresh profile should have no completions")
	}

	svc.MarkLessonComplete(1, 0)
	svc.MarkLessonComplete(1, 0)
	if !svc.IsLessonComplete(1, 0) {
		t.Error("lesson 1-0 should be complete")
	}
	if got := len(svc.Active().CompletedLessons); got != 1 {
		t.Errorf("completions = %d, want 1 after double mark", got)
	}
	if svc.Active().Stars != 0 {
		t.Error("MarkLessonComplete must not award stars")
	}

	// No active profile: no-op.
	svc.Deselect()
	svc.MarkLessonComplete(2, 0)
	if svc.IsLessonComplete(2, 0) {
		t.Error("IsLessonComplete should be false without an active profile")
	}
}

func TestLessonKeysDistinguishStageAndIndex(t *testing.T) {
	svc := NewService(&memStore{})
	svc.AddProfile("Mina")

	// Stage 1 lesson 12 and stage 11 lesson 2 must not collide.
	svc.MarkLessonComplete(1, 12)
	if svc.IsLessonComplete(11, 2) {
		t.Error("composite keys collided across stage/index boundaries")
	}
}

func TestStageProgress(t *testing.T) {
	svc := NewService(&memStore{})

	sp := svc.StageProgress(1, 26)
	if sp.Completed != 0 || sp.Total != 26 {
		t.Errorf("progress without profile = %+v, want 0/26", sp)
	}

	svc.AddProfile("Mina")
	svc.MarkLessonComplete(1, 0)
	svc.MarkLessonComplete(1, 3)
	svc.MarkLessonComplete(2, 1) // other stage, must not count

	sp = svc.StageProgress(1, 26)
	if sp.Completed != 2 || sp.Total != 26 {
		t.Errorf("progress = %+v, want 2/26", sp)
	}
}

func TestRosterSurvivesReload(t *testing.T) {
	st := &memStore{}

	svc := NewService(st)
	svc.AddProfile("Mina")
	svc.AddStars(7)
	svc.MarkLessonComplete(3, 2)

	// A second service over the same store sees the saved state.
	svc2 := NewService(st)
	svc2.SelectProfile("Mina")
	if got := svc2.Active().Stars; got != 7 {
		t.Errorf("stars after reload = %d, want 7", got)
	}
	if !svc2.IsLessonComplete(3, 2) {
		t.Error("completion lost across reload")
	}
}
