package models

// WordPair is the secret word pairing for one game. The normal faction all
// receive Normal, the undercover faction receive Undercover. White players
// receive neither (see game.WhiteWord).
type WordPair struct {
	Normal     string `json:"normal"`
	Undercover string `json:"undercover"`
}
