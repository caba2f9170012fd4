// Package adaptive holds the scoring and recommendation engine: pure
// functions over static tables, no storage and no HTTP.
package adaptive

// PlacementQuestion is one entry of the fixed placement bank. Every user
// sees the same questions in the same order.
type PlacementQuestion struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Correct int      `json:"-"`
}

var placementBank = []PlacementQuestion{
	{
		ID:      "p1",
		Text:    "What does a variable hold?",
		Options: []string{"A value", "A file", "A monitor", "A compiler"},
		Correct: 0,
	},
	{
		ID:      "p2",
		Text:    "Which of these is a loop construct?",
		Options: []string{"if", "for", "var", "return"},
		Correct: 1,
	},
	{
		ID:      "p3",
		Text:    "What is 2^10?",
		Options: []string{"100", "512", "1024", "2048"},
		Correct: 2,
	},
	{
		ID:      "p4",
		Text:    "A function that calls itself is called?",
		Options: []string{"Iterative", "Recursive", "Anonymous", "Static"},
		Correct: 1,
	},
	{
		ID:      "p5",
		Text:    "Which data structure is LIFO?",
		Options: []string{"Queue", "Heap", "Stack", "Graph"},
		Correct: 2,
	},
}

// PlacementBank returns the fixed question list, correct answers hidden via
// the json tag.
func PlacementBank() []PlacementQuestion {
	return placementBank
}

// PlacementAnswer pairs a question index with the option the user chose.
type PlacementAnswer struct {
	QuestionIndex int `json:"questionIndex"`
	ChosenOption  int `json:"chosenOption"`
}

// ScorePlacement walks the answers in order: +1.0 for a correct choice,
// -0.5 otherwise. Out-of-range question indexes are skipped. Theta is
// unbounded.
func ScorePlacement(answers []PlacementAnswer) (float64, []bool) {
	theta := 0.0
	correctness := make([]bool, 0, len(answers))
	for _, a := range answers {
		if a.QuestionIndex < 0 || a.QuestionIndex >= len(placementBank) {
			continue
		}
		correct := a.ChosenOption == placementBank[a.QuestionIndex].Correct
		if correct {
			theta += 1.0
		} else {
			theta -= 0.5
		}
		correctness = append(correctness, correct)
	}
	return theta, correctness
}

// UnlockedForTheta maps a placement score to the initially unlocked node
// set. Both roots always unlock; cs102 and ds101 need strictly more than
// their thresholds (theta of exactly 1.5 does not unlock cs102).
func UnlockedForTheta(theta float64) []string {
	unlocked := []string{"cs101", "math101"}
	if theta > 1.5 {
		unlocked = append(unlocked, "cs102")
	}
	if theta > 2.5 {
		unlocked = append(unlocked, "ds101")
	}
	return unlocked
}
