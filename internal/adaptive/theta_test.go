package adaptive

import "testing"

func allCorrect(n int) []PlacementAnswer {
	answers := make([]PlacementAnswer, n)
	for i := 0; i < n; i++ {
		answers[i] = PlacementAnswer{QuestionIndex: i, ChosenOption: placementBank[i].Correct}
	}
	return answers
}

func TestScorePlacementAllCorrect(t *testing.T) {
	for n := 1; n <= len(placementBank); n++ {
		theta, correctness := ScorePlacement(allCorrect(n))
		if theta != float64(n) {
			t.Errorf("ScorePlacement(%d correct) theta = %v, want %v", n, theta, float64(n))
		}
		if len(correctness) != n {
			t.Fatalf("correctness length = %d, want %d", len(correctness), n)
		}
		for i, c := range correctness {
			if !c {
				t.Errorf("question %d marked wrong, want correct", i)
			}
		}
	}
}

func TestScorePlacementMixed(t *testing.T) {
	answers := []PlacementAnswer{
		{QuestionIndex: 0, ChosenOption: placementBank[0].Correct},
		{QuestionIndex: 1, ChosenOption: (placementBank[1].Correct + 1) % 4},
		{QuestionIndex: 2, ChosenOption: placementBank[2].Correct},
	}
	theta, correctness := ScorePlacement(answers)
	if theta != 1.5 {
		t.Errorf("theta = %v, want 1.5", theta)
	}
	want := []bool{true, false, true}
	for i := range want {
		if correctness[i] != want[i] {
			t.Errorf("correctness[%d] = %v, want %v", i, correctness[i], want[i])
		}
	}
}

func TestScorePlacementSkipsOutOfRange(t *testing.T) {
	theta, correctness := ScorePlacement([]PlacementAnswer{
		{QuestionIndex: -1, ChosenOption: 0},
		{QuestionIndex: 99, ChosenOption: 0},
	})
	if theta != 0 || len(correctness) != 0 {
		t.Errorf("out-of-range answers scored: theta=%v correctness=%v", theta, correctness)
	}
}

func TestUnlockedForTheta(t *testing.T) {
	tests := []struct {
		theta float64
		want  []string
	}{
		{-2.5, []string{"cs101", "math101"}},
		{0, []string{"cs101", "math101"}},
		{1.5, []string{"cs101", "math101"}}, // exactly 1.5 does not unlock cs102
		{1.6, []string{"cs101", "math101", "cs102"}},
		{2.5, []string{"cs101", "math101", "cs102"}},
		{2.6, []string{"cs101", "math101", "cs102", "ds101"}},
		{5, []string{"cs101", "math101", "cs102", "ds101"}},
	}

	for _, tt := range tests {
		got := UnlockedForTheta(tt.theta)
		if len(got) != len(tt.want) {
			t.Errorf("UnlockedForTheta(%v) = %v, want %v", tt.theta, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("UnlockedForTheta(%v) = %v, want %v", tt.theta, got, tt.want)
				break
			}
		}
	}
}
