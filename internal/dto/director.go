package dto

// DirectorRequest is the body of create and update director requests
type DirectorRequest struct {
	Name      string `json:"name"`
	BirthYear int    `json:"birthYear"`
}

// Validate validates the DirectorRequest
func (r *DirectorRequest) Validate() (bool, string) {
	if r.Name == "" || r.BirthYear == 0 {
		return false, "name and birthYear are required"
	}
	return true, ""
}
