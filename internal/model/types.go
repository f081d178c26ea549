package model

// Result is JSON-serialisable as-is.
type Result struct {
	A        string `json:"a"`        // first input
	B        string `json:"b"`        // second input
	Fast     bool   `json:"fast"`     // byte mode when true
	Distance int    `json:"distance"` // edit distance in the selected unit
	ALen     int    `json:"aLen"`     // element count of a (bytes or runes)
	BLen     int    `json:"bLen"`     // element count of b (bytes or runes)
}
