package services

// roleSkills maps known job titles to their curated key-skill lists,
// surfaced alongside the stored description in the job detail endpoint.
// Unknown titles get an empty list.
var roleSkills = map[string][]string{
	"Software Engineer": {
		"Python", "Java", "C++", "JavaScript", "SQL", "Git", "Data Structures",
		"Algorithms", "Software Architecture", "System Design", "Web Development",
		"API Development", "Testing", "Debugging", "Problem Solving",
		"Object-Oriented Programming", "Microservices", "DevOps",
		"Cloud Platforms", "Agile Development",
	},
	"Data Scientist": {
		"Python", "R", "SQL", "Machine Learning", "Deep Learning",
		"Statistical Analysis", "Data Visualization", "Pandas", "NumPy",
		"Scikit-learn", "TensorFlow", "Data Mining", "Feature Engineering",
		"A/B Testing", "Regression Analysis", "Time Series Analysis", "NLP",
	},
	"Product Manager": {
		"Product Strategy", "Market Research", "User Experience",
		"Agile Methodologies", "Stakeholder Management", "Business Analysis",
		"Data Analytics", "Product Roadmapping", "Competitive Analysis",
		"User Stories", "Feature Prioritization", "Product Metrics",
	},
	"Cloud Engineer": {
		"AWS", "Azure", "Google Cloud", "Kubernetes", "Docker", "Terraform",
		"Infrastructure as Code", "Cloud Security", "CI/CD", "Microservices",
		"Load Balancing", "Auto Scaling", "Serverless Computing",
		"Disaster Recovery", "Cloud Migration", "Container Orchestration",
	},
	"Cybersecurity Analyst": {
		"Network Security", "SIEM", "Penetration Testing",
		"Vulnerability Assessment", "Incident Response", "Risk Analysis",
		"Firewall Management", "Encryption", "Threat Detection",
		"Malware Analysis", "Digital Forensics", "Ethical Hacking",
	},
	"DevOps Engineer": {
		"Docker", "Kubernetes", "Jenkins", "Git", "Terraform", "Ansible",
		"CI/CD Pipelines", "Linux Systems", "Shell Scripting",
		"Infrastructure as Code", "Configuration Management",
		"Monitoring Tools", "Cloud Architecture", "DevSecOps",
	},
	"Full Stack Developer": {
		"JavaScript", "TypeScript", "React", "Node.js", "HTML5", "CSS3",
		"RESTful APIs", "Git", "Web Security", "Testing Frameworks",
		"State Management", "API Integration", "Responsive Design",
		"Cloud Deployment", "Microservices", "Docker", "CI/CD",
	},
	"Database Administrator": {
		"SQL", "Database Management", "MySQL", "PostgreSQL", "Oracle",
		"MongoDB", "Database Security", "Backup & Recovery",
		"Performance Tuning", "Database Design", "Query Optimization",
		"High Availability", "Replication", "Stored Procedures",
	},
}

// RoleSkills returns the curated skill list for a job title, or an empty
// list when the title is unknown.
func RoleSkills(jobTitle string) []string {
	if skills, ok := roleSkills[jobTitle]; ok {
		return skills
	}
	return []string{}
}

// roleContent holds the role-specific paragraph of the invitation email.
var roleContent = map[string]string{
	"Software Engineer": "We are particularly impressed with your technical background and software development experience.\n" +
		"During the interview, we'll explore your programming skills, system design knowledge, and problem-solving abilities.",
	"Data Scientist": "We are excited to discuss your experience in data analysis, machine learning, and statistical modeling.\n" +
		"The interview will include discussions about your analytical projects, technical skills, and methodologies.",
	"Product Manager": "We look forward to discussing your experience in product strategy, market analysis, and user-centric development.\n" +
		"The interview will focus on your leadership approach, product vision, and stakeholder management skills.",
	"Cloud Engineer": "We're eager to explore your experience with cloud platforms, infrastructure design, and DevOps practices.\n" +
		"The interview will cover cloud architecture, automation, and security implementation strategies.",
	"Cybersecurity Analyst": "We're keen to discuss your experience in cybersecurity, threat detection, and risk management.\n" +
		"The interview will focus on your technical expertise, incident response strategies, and security best practices.",
	"DevOps Engineer": "We're excited to explore your experience with CI/CD, infrastructure automation, and cloud technologies.\n" +
		"The interview will cover your expertise in DevOps practices, tool implementations, and automation strategies.",
	"Full Stack Developer": "We're looking forward to discussing your full-stack development experience and technical versatility.\n" +
		"The interview will explore your frontend and backend expertise, architecture decisions, and development approaches.",
	"Database Administrator": "We're keen to discuss your database management experience and administration skills.\n" +
		"The interview will focus on your expertise in database optimization, security, and maintenance strategies.",
}

const genericRoleContent = "We are impressed with your qualifications and would like to discuss your experience in more detail.\n" +
	"The interview will help us better understand your skills and how they align with our requirements."

// roleEmailContent returns the role-specific invitation paragraph, falling
// back to a generic one for unknown titles.
func roleEmailContent(jobTitle string) string {
	if content, ok := roleContent[jobTitle]; ok {
		return content
	}
	return genericRoleContent
}
