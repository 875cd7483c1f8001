package injuries

import "testing"

func TestClassifyOutVocabulary(t *testing.T) {
	for _, raw := range []string{"OUT", "out", "IR", "SUSPENSION", "PUP", "COVID-19", "Injured Reserve", "INJURY_RESERVE", "Out (ankle)"} {
		if got := Classify(raw); got != StatusOut {
			t.Fatalf("Classify(%q) = %s, want out", raw, got)
		}
	}
}

func TestClassifyQuestionableVocabulary(t *testing.T) {
	for _, raw := range []string{"Questionable", "QUESTIONABLE", "Doubtful", "Probable", "Q", "d", "P", "Day-To-Day", "DAY_TO_DAY"} {
		if got := Classify(raw); got != StatusQuestionable {
			t.Fatalf("Classify(%q) = %s, want questionable", raw, got)
		}
	}
}

func TestClassifyDefaultsToHealthy(t *testing.T) {
	for _, raw := range []string{"", "   ", "ACTIVE", "NORMAL", "Healthy"} {
		if got := Classify(raw); got != StatusHealthy {
			t.Fatalf("Classify(%q) = %s, want healthy", raw, got)
		}
	}
}

func TestClassifyMatchesWholeTokensOnly(t *testing.T) {
	for _, raw := range []string{"TIMEOUT", "DIRECT", "OUTSTANDING", "QB", "PROBABLY"} {
		if got := Classify(raw); got != StatusHealthy {
			t.Fatalf("Classify(%q) = %s, want healthy", raw, got)
		}
	}
}

func TestClassifyOutWinsOverQuestionable(t *testing.T) {
	for _, raw := range []string{"Questionable / Out", "Doubtful, IR", "Q OUT"} {
		if got := Classify(raw); got != StatusOut {
			t.Fatalf("Classify(%q) = %s, want out", raw, got)
		}
	}
}

func TestStatusWorse(t *testing.T) {
	if !StatusOut.Worse(StatusQuestionable) || !StatusQuestionable.Worse(StatusHealthy) {
		t.Fatalf("expected out > questionable > healthy")
	}
	if StatusHealthy.Worse(StatusHealthy) || StatusQuestionable.Worse(StatusOut) {
		t.Fatalf("unexpected severity ordering")
	}
}
