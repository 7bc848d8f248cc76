package domain

// HoleScore is the stroke count recorded for one hole.
// Two scores are equal (==) when both fields match; Key identifies the hole alone.
type HoleScore struct {
	HoleNumber int `json:"holeNumber"`
	Strokes    int `json:"strokes"`
}

// NewHoleScore returns hole n with no strokes.
func NewHoleScore(n int) HoleScore {
	return HoleScore{HoleNumber: n}
}

// Key is the lookup identity used for ordering and display.
func (h HoleScore) Key() int {
	return h.HoleNumber
}
