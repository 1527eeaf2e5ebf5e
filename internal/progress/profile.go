// Package progress owns learner profiles: the roster, the active profile,
// star rewards, lesson completion, and the derived level and stage-progress
// views.
package progress

import (
	"fmt"
	"time"
)

// Star amounts awarded by the screens. The model itself never awards stars;
// callers decide and call AddStars explicitly.
const (
	LessonReward = 15 // first-time lesson completion
	AnswerReward = 5  // correct answer in a lesson or game
)

// Profile is one learner. Name is the primary key within the roster.
type Profile struct {
	Name             string          `json:"name"`
	Stars            int             `json:"stars"`
	CompletedLessons map[string]bool `json:"completedLessons"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// StageProgress is the completed/total view for one stage.
type StageProgress struct {
	Completed int
	Total     int
}

// lessonKey builds the composite completion key for a stage/lesson pair.
func lessonKey(stageID, lessonIndex int) string {
	return fmt.Sprintf("%d-%d", stageID, lessonIndex)
}
