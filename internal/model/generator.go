package model

// GenerateRequest represents a password generation request.
// Pointer bools carry tri-state class policies: nil means the class is
// required (the default), true requires it explicitly, false forbids it.
type GenerateRequest struct {
	Length      int    `json:"length"`
	Count       int    `json:"count"`
	Uppercase   *bool  `json:"uppercase"`
	Numerals    *bool  `json:"numerals"`
	Symbols     bool   `json:"symbols"`
	Secure      bool   `json:"secure"`
	NoAmbiguous bool   `json:"no_ambiguous"`
	NoVowels    bool   `json:"no_vowels"`
	Exclude     string `json:"exclude"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []string `json:"passwords"`
	Length    int      `json:"length"`
	Count     int      `json:"count"`
}
