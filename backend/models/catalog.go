package models

// Video is a single lesson inside a course.
type Video struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Duration string `json:"duration"`
}

// Course is a catalog entry on the marketing site.
type Course struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Mentor       string   `json:"mentor"`
	MentorTitle  string   `json:"mentorTitle"`
	MentorBio    string   `json:"mentorBio"`
	Level        string   `json:"level"`
	Duration     string   `json:"duration"`
	Rating       float64  `json:"rating"`
	Videos       []Video  `json:"videos"`
	Topics       []string `json:"topics"`
	Requirements []string `json:"requirements"`
}

// Mentor is an instructor profile.
type Mentor struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Bio          string   `json:"bio"`
	Email        string   `json:"email"`
	Expertise    []string `json:"expertise"`
	Courses      []int    `json:"courses"`
	Students     int      `json:"students"`
	Rating       float64  `json:"rating"`
	TotalReviews int      `json:"totalReviews"`
	Availability string   `json:"availability"`
	Languages    []string `json:"languages"`
	Experience   string   `json:"experience"`
}
