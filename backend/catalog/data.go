package catalog

import "skillshub/backend/models"

var courses = []models.Course{
	{
		ID:          1,
		Title:       "Digital Marketing",
		Description: "Learn the fundamentals of digital marketing, including SEO, social media marketing, email campaigns, and analytics.",
		Mentor:      "Marcus Johnson",
		MentorTitle: "Digital Marketing Expert",
		MentorBio:   "10+ years of experience in digital marketing strategy and execution",
		Level:       "Beginner",
		Duration:    "8 weeks",
		Rating:      4.8,
		Videos: []models.Video{
			{ID: 1, Title: "Digital Marketing Full Course 2026", URL: "https://www.youtube.com/watch?v=BZLUEKnMfIY", Duration: "8:52:07"},
			{ID: 2, Title: "Complete SEO Fundamentals for Beginners", URL: "https://www.youtube.com/watch?v=xsVTqzratPs", Duration: "1:57:02"},
			{ID: 3, Title: "Social Media Marketing Full Course", URL: "https://www.youtube.com/watch?v=i7MrqwbmN4Y", Duration: "7:36:35"},
			{ID: 4, Title: "Content Marketing Trends You Can't Ignore in 2025", URL: "https://www.youtube.com/watch?v=0BRO25Fj91U", Duration: "1:15:35"},
			{ID: 5, Title: "Email Marketing Campaigns", URL: "https://www.youtube.com/watch?v=DvwUgqX3ZF4", Duration: "3:10:23"},
			{ID: 6, Title: "Google Ads Basics", URL: "https://www.youtube.com/watch?v=a-JmhK9nKJk", Duration: "1:00:59"},
			{ID: 7, Title: "Facebook & Instagram Ads", URL: "https://www.youtube.com/watch?v=8LBrajllEPk", Duration: "34:33"},
			{ID: 8, Title: "Digital Marketing Metrics and Measurement", URL: "https://www.youtube.com/watch?v=KdSxujyEBZQ", Duration: "1:26:41"},
			{ID: 9, Title: "How to Build & Sell AI Automations", URL: "https://www.youtube.com/watch?v=5TxSqvPbnWw", Duration: "1:50:22"},
		},
		Topics:       []string{"SEO", "Social Media", "Email Marketing", "Digital Marketing", "Analytics"},
		Requirements: []string{"Basic computer skills", "Internet connection", "Willingness to learn"},
	},
	{
		ID:          2,
		Title:       "Figma Design",
		Description: "Master Figma for UI/UX design. Learn to create wireframes, prototypes, and design systems for modern applications.",
		Mentor:      "Sarah Chen",
		MentorTitle: "Figma Design Specialist",
		MentorBio:   "Senior product designer with expertise in design systems and prototyping",
		Level:       "Beginner",
		Duration:    "6 weeks",
		Rating:      4.9,
		Videos: []models.Video{
			{ID: 1, Title: "Introduction to Figma", URL: "https://www.youtube.com/embed/dXQ7IHkTiMM", Duration: "12:45"},
			{ID: 2, Title: "Figma Interface & Tools", URL: "https://www.youtube.com/watch?v=GrZZuv2m2_0", Duration: "7:07"},
			{ID: 3, Title: "Creating Frames & Layouts", URL: "https://www.youtube.com/embed/wvFd-z7jSaA", Duration: "20:15"},
			{ID: 4, Title: "Working with Components", URL: "https://www.youtube.com/embed/k74IrUNaJVk", Duration: "25:40"},
			{ID: 5, Title: "Auto Layout Mastery", URL: "https://www.youtube.com/embed/TyaGpGDFczw", Duration: "22:20"},
			{ID: 6, Title: "Prototyping & Interactions", URL: "https://www.youtube.com/embed/k1iwiHJrAWI", Duration: "20:35"},
			{ID: 7, Title: "Design Systems in Figma", URL: "https://www.youtube.com/embed/Dtd40cHQQlk", Duration: "30:45"},
		},
		Topics:       []string{"Interface Design", "Prototyping", "Components", "Auto Layout", "Design Systems"},
		Requirements: []string{"Computer with internet", "Figma account (free)", "Basic design sense"},
	},
	{
		ID:          3,
		Title:       "UI/UX Design",
		Description: "Comprehensive UI/UX design course covering user research, wireframing, prototyping, and usability testing.",
		Mentor:      "Elena Rodriguez",
		MentorTitle: "UI/UX Design Expert",
		MentorBio:   "Lead UX designer with 8+ years creating user-centered digital experiences",
		Level:       "Beginner",
		Duration:    "10 weeks",
		Rating:      4.7,
		Videos: []models.Video{
			{ID: 1, Title: "Introduction to UX", URL: "https://www.youtube.com/embed/c9Wg6Cb_YlU", Duration: "1:26:21"},
			{ID: 2, Title: "User Research Methods", URL: "https://www.youtube.com/embed/WpzmOH0hrEM", Duration: "1:38:29"},
			{ID: 3, Title: "Creating User Personas", URL: "https://www.youtube.com/embed/XnG4c4gXaQY", Duration: "12:52"},
			{ID: 4, Title: "Information Architecture", URL: "https://www.youtube.com/embed/OJLfjgVlwDo", Duration: "17:20"},
			{ID: 5, Title: "Wireframing & Prototyping", URL: "https://www.youtube.com/embed/qpH7-KFWZRI", Duration: "25:20"},
			{ID: 6, Title: "Usability Testing", URL: "https://www.youtube.com/embed/nYCJTea1AUQ", Duration: "1:03:36"},
			{ID: 7, Title: "Color Theory for Beginners", URL: "https://www.youtube.com/embed/2QTHs7QSR9o", Duration: "24:45"},
			{ID: 8, Title: "Mobile UI Design", URL: "https://www.youtube.com/embed/ThmHV38Ecqk", Duration: "4:14:45"},
			{ID: 9, Title: "UX Portfolio Creation", URL: "https://www.youtube.com/embed/mmgxspm9JWs", Duration: "17:16"},
		},
		Topics:       []string{"User Research", "Wireframing", "Portfolio Creation", "Usability", "Design Thinking"},
		Requirements: []string{"Creative mindset", "Basic computer skills", "Design software (Figma/Sketch)"},
	},
}

var mentors = []models.Mentor{
	{
		ID:           1,
		Name:         "Marcus Johnson",
		Title:        "Digital Marketing Expert",
		Bio:          "10+ years of experience in digital marketing strategy and execution. Specialized in SEO, content marketing, and social media campaigns.",
		Email:        "marcus.j@digitalskillshub.com",
		Expertise:    []string{"Digital Marketing", "SEO", "Social Media", "Content Strategy", "Analytics"},
		Courses:      []int{1},
		Students:     156,
		Rating:       4.8,
		TotalReviews: 89,
		Availability: "Monday-Friday, 9 AM - 5 PM EST",
		Languages:    []string{"English", "Spanish"},
		Experience:   "10 years",
	},
	{
		ID:           2,
		Name:         "Sarah Chen",
		Title:        "Figma Design Specialist",
		Bio:          "Senior product designer with expertise in design systems and prototyping. Passionate about creating intuitive user experiences.",
		Email:        "sarah.c@digitalskillshub.com",
		Expertise:    []string{"Figma", "UI Design", "Design Systems", "Prototyping", "User Research"},
		Courses:      []int{2},
		Students:     203,
		Rating:       4.9,
		TotalReviews: 124,
		Availability: "Tuesday-Saturday, 10 AM - 6 PM PST",
		Languages:    []string{"English", "Mandarin"},
		Experience:   "7 years",
	},
	{
		ID:           3,
		Name:         "Elena Rodriguez",
		Title:        "UI/UX Design Expert",
		Bio:          "Lead UX designer with 8+ years creating user-centered digital experiences. Advocate for accessible and inclusive design.",
		Email:        "elena.r@digitalskillshub.com",
		Expertise:    []string{"UI/UX Design", "User Research", "Wireframing", "Usability Testing", "Design Thinking"},
		Courses:      []int{3},
		Students:     187,
		Rating:       4.7,
		TotalReviews: 96,
		Availability: "Monday-Friday, 11 AM - 7 PM EST",
		Languages:    []string{"English", "Portuguese"},
		Experience:   "8 years",
	},
}
