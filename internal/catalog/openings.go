package catalog

import "go-careerpath-backend/internal/domain"

// jobOpenings returns the static catalogue scored for recommendations.
// Encounter order is the tie-break for equal match scores, so keep new
// entries appended rather than inserted.
func jobOpenings() []domain.JobOpening {
	return []domain.JobOpening{
		{
			Title:      "Python Developer",
			Company:    "Tech Corp",
			Location:   "Remote",
			Skills:     []string{"Python", "Django", "MySQL", "Git"},
			Experience: domain.ExperienceMid,
			Salary:     "$70,000 - $90,000",
		},
		{
			Title:      "Full Stack Developer",
			Company:    "StartupXYZ",
			Location:   "New York",
			Skills:     []string{"JavaScript", "React", "Node.js", "MongoDB"},
			Experience: domain.ExperienceMid,
			Salary:     "$80,000 - $100,000",
		},
		{
			Title:      "Data Scientist",
			Company:    "Data Analytics Inc",
			Location:   "San Francisco",
			Skills:     []string{"Python", "Machine Learning", "Data Science"},
			Experience: domain.ExperienceSenior,
			Salary:     "$100,000 - $130,000",
		},
		{
			Title:      "DevOps Engineer",
			Company:    "Cloud Solutions",
			Location:   "Remote",
			Skills:     []string{"AWS", "Docker", "Kubernetes", "Linux"},
			Experience: domain.ExperienceMid,
			Salary:     "$85,000 - $110,000",
		},
		{
			Title:      "Frontend Developer",
			Company:    "Design Studio",
			Location:   "Los Angeles",
			Skills:     []string{"JavaScript", "React", "HTML5", "CSS3"},
			Experience: domain.ExperienceEntry,
			Salary:     "$60,000 - $80,000",
		},
		{
			Title:      "Java Developer",
			Company:    "Tech Corp",
			Location:   "Remote",
			Skills:     []string{"Java", "Spring Boot", "MySQL", "Maven", "Git"},
			Experience: domain.ExperienceMid,
			Salary:     "$70,000 - $90,000",
		},
		{
			Title:      "Java Full Stack Developer",
			Company:    "StartupXYZ",
			Location:   "New York",
			Skills:     []string{"Java", "Spring Boot", "JavaScript", "React", "MySQL"},
			Experience: domain.ExperienceMid,
			Salary:     "$80,000 - $100,000",
		},
		{
			Title:      "Enterprise Java Developer",
			Company:    "Data Analytics Inc",
			Location:   "San Francisco",
			Skills:     []string{"Java", "Spring Framework", "JPA", "Enterprise Applications", "Design Patterns"},
			Experience: domain.ExperienceSenior,
			Salary:     "$100,000 - $130,000",
		},
		{
			Title:      "Android Developer",
			Company:    "Cloud Solutions",
			Location:   "Remote",
			Skills:     []string{"Java", "Kotlin", "Android SDK", "Mobile Development"},
			Experience: domain.ExperienceMid,
			Salary:     "$85,000 - $110,000",
		},
	}
}
