// Package content holds the static catalogs the companion draws from.
package content

// Activity is an energy lab exercise.
type Activity struct {
	ID          string `json:"id"`
	Emoji       string `json:"emoji"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration,omitempty"`
}

func (a Activity) CandidateID() string { return a.ID }

// Distraction is a fact, joke, riddle, puzzle or quote.
type Distraction struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Answer  string `json:"answer,omitempty"`
}

func (d Distraction) CandidateID() string { return d.ID }

// Affirmation is a short positive statement.
type Affirmation struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

func (a Affirmation) CandidateID() string { return a.ID }

// Line is a plain text item with an id, used for power thoughts and replies.
type Line struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (l Line) CandidateID() string { return l.ID }

// ActivitiesFor returns the activities suggested for mood, or the default
// set when the mood has none.
func ActivitiesFor(mood string) []Activity {
	if acts, ok := activitiesByMood[mood]; ok {
		return acts
	}
	return defaultActivities
}

// FindActivity looks an activity up by id across every mood.
func FindActivity(id string) (Activity, bool) {
	for _, a := range defaultActivities {
		if a.ID == id {
			return a, true
		}
	}
	for _, acts := range activitiesByMood {
		for _, a := range acts {
			if a.ID == id {
				return a, true
			}
		}
	}
	return Activity{}, false
}

// Distractions returns the distraction pool.
func Distractions() []Distraction { return distractions }

// Affirmations returns the affirmation pool.
func Affirmations() []Affirmation { return affirmations }

// FindAffirmation looks an affirmation up by id.
func FindAffirmation(id string) (Affirmation, bool) {
	for _, a := range affirmations {
		if a.ID == id {
			return a, true
		}
	}
	return Affirmation{}, false
}

// PowerThoughts returns the daily power thought pool.
func PowerThoughts() []Line { return powerThoughts }

// JournalReplies returns the supportive replies shown after a dump zone entry.
func JournalReplies() []Line { return journalReplies }

// MoodReply returns the companion's reaction to a mood check-in.
func MoodReply(mood string) string {
	return moodReplies[mood]
}
