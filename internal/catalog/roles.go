package catalog

import "go-careerpath-backend/internal/domain"

// roleProfiles builds the static role requirement table and its declaration
// order. The order matters: missing-skill suggestions follow the required
// list order, and the role picker lists titles this way.
func roleProfiles() (map[string]domain.RoleProfile, []string) {
	profiles := []domain.RoleProfile{
		{
			Title:           "Python Developer",
			RequiredSkills:  []string{"Python", "Django", "MySQL", "Git", "REST API"},
			PreferredSkills: []string{"Docker", "AWS", "Redis", "JavaScript"},
			Experience:      domain.ExperienceMid,
		},
		{
			Title:           "Full Stack Developer",
			RequiredSkills:  []string{"JavaScript", "React", "Node.js", "MongoDB", "HTML5", "CSS3"},
			PreferredSkills: []string{"TypeScript", "GraphQL", "Docker", "AWS"},
			Experience:      domain.ExperienceMid,
		},
		{
			Title:           "Data Scientist",
			RequiredSkills:  []string{"Python", "Machine Learning", "Data Analysis", "Pandas", "NumPy"},
			PreferredSkills: []string{"TensorFlow", "Deep Learning", "SQL", "R"},
			Experience:      domain.ExperienceSenior,
		},
		{
			Title:           "DevOps Engineer",
			RequiredSkills:  []string{"AWS", "Docker", "Kubernetes", "Linux", "CI/CD"},
			PreferredSkills: []string{"Terraform", "Ansible", "Jenkins", "Python"},
			Experience:      domain.ExperienceMid,
		},
		{
			Title:           "Frontend Developer",
			RequiredSkills:  []string{"JavaScript", "React", "HTML5", "CSS3"},
			PreferredSkills: []string{"Vue.js", "TypeScript", "Webpack", "SASS"},
			Experience:      domain.ExperienceEntry,
		},
		{
			Title:           "Backend Developer",
			RequiredSkills:  []string{"Python", "Node.js", "MySQL", "REST API", "Git"},
			PreferredSkills: []string{"Redis", "MongoDB", "Docker", "Microservices"},
			Experience:      domain.ExperienceMid,
		},
		{
			Title:           "Mobile App Developer",
			RequiredSkills:  []string{"Swift", "Kotlin", "React Native", "Mobile Development"},
			PreferredSkills: []string{"Flutter", "Firebase", "iOS", "Android"},
			Experience:      domain.ExperienceMid,
		},
		{
			Title:           "Machine Learning Engineer",
			RequiredSkills:  []string{"Python", "Machine Learning", "TensorFlow", "Data Science", "Deep Learning"},
			PreferredSkills: []string{"PyTorch", "MLOps", "Kubernetes", "AWS"},
			Experience:      domain.ExperienceSenior,
		},
		{
			Title:           "Cloud Architect",
			RequiredSkills:  []string{"AWS", "Azure", "Cloud Architecture", "Kubernetes", "Terraform"},
			PreferredSkills: []string{"Google Cloud", "Microservices", "Security", "DevOps"},
			Experience:      domain.ExperienceSenior,
		},
		{
			Title:           "Cybersecurity Analyst",
			RequiredSkills:  []string{"Cybersecurity", "Network Security", "Risk Assessment", "Incident Response"},
			PreferredSkills: []string{"Penetration Testing", "SIEM", "Compliance", "Forensics"},
			Experience:      domain.ExperienceMid,
		},
		{
			Title:           "UI/UX Designer",
			RequiredSkills:  []string{"UI/UX Design", "Figma", "User Research", "Prototyping"},
			PreferredSkills: []string{"Adobe XD", "Sketch", "User Testing", "Design Systems"},
			Experience:      domain.ExperienceMid,
		},
		{
			Title:           "Product Manager",
			RequiredSkills:  []string{"Product Management", "Agile", "User Research", "Strategic Planning"},
			PreferredSkills: []string{"Data Analysis", "A/B Testing", "Roadmapping", "Stakeholder Management"},
			Experience:      domain.ExperienceSenior,
		},
		{
			Title:           "QA Engineer",
			RequiredSkills:  []string{"Testing", "Automation Testing", "Selenium", "Bug Tracking"},
			PreferredSkills: []string{"API Testing", "Performance Testing", "CI/CD", "Python"},
			Experience:      domain.ExperienceMid,
		},
		{
			Title:           "Database Administrator",
			RequiredSkills:  []string{"MySQL", "PostgreSQL", "Database Design", "SQL", "Backup & Recovery"},
			PreferredSkills: []string{"MongoDB", "Oracle", "Performance Tuning", "Cloud Databases"},
			Experience:      domain.ExperienceMid,
		},
		{
			Title:           "Software Architect",
			RequiredSkills:  []string{"System Design", "Microservices", "Design Patterns", "Architecture"},
			PreferredSkills: []string{"Cloud Architecture", "Scalability", "Security", "Performance"},
			Experience:      domain.ExperienceSenior,
		},
		{
			Title:           "Game Developer",
			RequiredSkills:  []string{"Unity", "C#", "Game Development", "3D Graphics"},
			PreferredSkills: []string{"Unreal Engine", "C++", "Animation", "Physics"},
			Experience:      domain.ExperienceMid,
		},
		{
			Title:           "Blockchain Developer",
			RequiredSkills:  []string{"Blockchain", "Solidity", "Smart Contracts", "Ethereum"},
			PreferredSkills: []string{"Web3", "DeFi", "NFT", "Cryptocurrency"},
			Experience:      domain.ExperienceSenior,
		},
		{
			Title:           "AI Research Scientist",
			RequiredSkills:  []string{"Deep Learning", "Neural Networks", "Research", "Python", "Mathematics"},
			PreferredSkills: []string{"Computer Vision", "NLP", "Reinforcement Learning", "Publications"},
			Experience:      domain.ExperienceSenior,
		},
		{
			Title:           "Site Reliability Engineer",
			RequiredSkills:  []string{"Linux", "Monitoring", "Automation", "Incident Management", "Scripting"},
			PreferredSkills: []string{"Kubernetes", "Prometheus", "Grafana", "Cloud Platforms"},
			Experience:      domain.ExperienceSenior,
		},
		{
			Title:           "Business Analyst",
			RequiredSkills:  []string{"Business Analysis", "Requirements Gathering", "Process Improvement", "Documentation"},
			PreferredSkills: []string{"SQL", "Data Visualization", "Project Management", "Stakeholder Management"},
			Experience:      domain.ExperienceMid,
		},
		{
			Title:           "Java Developer",
			RequiredSkills:  []string{"Java", "Spring Boot", "MySQL", "Maven", "Git"},
			PreferredSkills: []string{"Spring Framework", "Hibernate", "REST API", "JUnit"},
			Experience:      domain.ExperienceMid,
		},
		{
			Title:           "Java Full Stack Developer",
			RequiredSkills:  []string{"Java", "Spring Boot", "JavaScript", "React", "MySQL"},
			PreferredSkills: []string{"Angular", "Microservices", "Docker", "AWS"},
			Experience:      domain.ExperienceMid,
		},
		{
			Title:           "Enterprise Java Developer",
			RequiredSkills:  []string{"Java", "Spring Framework", "JPA", "Enterprise Applications", "Design Patterns"},
			PreferredSkills: []string{"Spring Security", "Apache Kafka", "Redis", "Microservices"},
			Experience:      domain.ExperienceSenior,
		},
		{
			Title:           "Android Developer",
			RequiredSkills:  []string{"Java", "Kotlin", "Android SDK", "Mobile Development"},
			PreferredSkills: []string{"Jetpack Compose", "Firebase", "Room Database", "MVVM"},
			Experience:      domain.ExperienceMid,
		},
	}

	table := make(map[string]domain.RoleProfile, len(profiles))
	titles := make([]string, 0, len(profiles))
	for _, p := range profiles {
		table[p.Title] = p
		titles = append(titles, p.Title)
	}
	return table, titles
}
