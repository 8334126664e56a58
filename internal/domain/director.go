package domain

// Director is a film director
type Director struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthYear int    `json:"birthYear"`
}
