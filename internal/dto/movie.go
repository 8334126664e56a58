package dto

// MovieRequest is the body of create and update movie requests
type MovieRequest struct {
	Title    string `json:"title"`
	Director string `json:"director"`
	Year     int    `json:"year"`
}

// Validate validates the MovieRequest
func (r *MovieRequest) Validate() (bool, string) {
	if r.Title == "" || r.Director == "" || r.Year == 0 {
		return false, "title, director and year are required"
	}
	return true, ""
}
