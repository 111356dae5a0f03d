package catalog

import "skillpath_backend/internal/model"

// Default returns a fresh copy of the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		QuestionBanks:    defaultQuestionBanks(),
		DefaultBank:      defaultBank(),
		Skills:           defaultSkills(),
		Agents:           defaultAgents(),
		Paths:            defaultPaths(),
		Resources:        defaultResources(),
		RoleGroups:       defaultRoleGroups(),
		Schedules:        defaultSchedules(),
		RoadmapPhases:    defaultRoadmapPhases(),
		RoadmapResources: []string{"Official documentation", "Recommended courses", "Practice projects", "Community forums"},
	}
}

func defaultQuestionBanks() map[string][]BankEntry {
	return map[string][]BankEntry{
		"javascript": {
			{
				Text:          "What is the difference between let and var?",
				Type:          model.QuestionMultipleChoice,
				Options:       []string{"Scope and hoisting", "Performance", "Browser support", "None"},
				CorrectAnswer: "Scope and hoisting",
				Difficulty:    model.DifficultyMedium,
			},
			{
				Text:          "Explain closure in JavaScript",
				Type:          model.QuestionShortAnswer,
				CorrectAnswer: "A function that has access to variables from its outer scope",
				Difficulty:    model.DifficultyMedium,
			},
			{
				Text:          "What are Promises and async/await?",
				Type:          model.QuestionMultipleChoice,
				Options:       []string{"Error handling", "Asynchronous operations", "Callbacks", "All of the above"},
				CorrectAnswer: "Asynchronous operations",
				Difficulty:    model.DifficultyMedium,
			},
		},
		"react": {
			{
				Text:          "What is the purpose of the useEffect hook?",
				Type:          model.QuestionMultipleChoice,
				Options:       []string{"Render components", "Handle side effects", "Manage state", "Create context"},
				CorrectAnswer: "Handle side effects",
				Difficulty:    model.DifficultyEasy,
			},
			{
				Text:          "Explain React functional components vs class components",
				Type:          model.QuestionShortAnswer,
				CorrectAnswer: "Functional components use hooks, class components use lifecycle methods",
				Difficulty:    model.DifficultyMedium,
			},
		},
		"python": {
			{
				Text:          "What is a Python decorator?",
				Type:          model.QuestionMultipleChoice,
				Options:       []string{"A design pattern", "A function modifier", "A class inheritance", "An import statement"},
				CorrectAnswer: "A function modifier",
				Difficulty:    model.DifficultyMedium,
			},
			{
				Text:          "Difference between list and tuple?",
				Type:          model.QuestionMultipleChoice,
				Options:       []string{"Lists are mutable, tuples are immutable", "Tuples are mutable", "No difference", "Lists are immutable"},
				CorrectAnswer: "Lists are mutable, tuples are immutable",
				Difficulty:    model.DifficultyEasy,
			},
		},
		"sql": {
			{
				Text:          "What is a JOIN in SQL?",
				Type:          model.QuestionMultipleChoice,
				Options:       []string{"Combine rows from different tables", "Delete records", "Update data", "Create indexes"},
				CorrectAnswer: "Combine rows from different tables",
				Difficulty:    model.DifficultyEasy,
			},
			{
				Text:          "Difference between INNER, LEFT, and FULL JOIN?",
				Type:          model.QuestionShortAnswer,
				CorrectAnswer: "INNER returns matching rows, LEFT keeps all left table rows, FULL keeps all rows",
				Difficulty:    model.DifficultyMedium,
			},
		},
	}
}

func defaultBank() []BankEntry {
	options := []string{"Option A", "Option B", "Option C", "Option D"}
	return []BankEntry{
		{
			Text:          "What is the basic concept of " + TopicPlaceholder + "?",
			Type:          model.QuestionMultipleChoice,
			Options:       options,
			CorrectAnswer: "Option A",
			Difficulty:    model.DifficultyEasy,
		},
		{
			Text:          "Advanced topic in " + TopicPlaceholder + "?",
			Type:          model.QuestionMultipleChoice,
			Options:       options,
			CorrectAnswer: "Option B",
			Difficulty:    model.DifficultyMedium,
		},
		{
			Text:          "Expert level question about " + TopicPlaceholder + "?",
			Type:          model.QuestionShortAnswer,
			CorrectAnswer: "Expert answer",
			Difficulty:    model.DifficultyHard,
		},
	}
}

const (
	TrackFrontend  model.Track = 1
	TrackBackend   model.Track = 2
	TrackLanguages model.Track = 3
	TrackDataAI    model.Track = 4
	TrackCloud     model.Track = 5
	TrackDatabases model.Track = 6
	TrackMobile    model.Track = 7
)

func defaultAgents() []model.Agent {
	return []model.Agent{
		{ID: TrackFrontend, Name: "Frontend & UI/Design Specialist"},
		{ID: TrackBackend, Name: "Backend & API Development Specialist"},
		{ID: TrackLanguages, Name: "Languages & Core Programming Specialist"},
		{ID: TrackDataAI, Name: "Data, AI & Machine Learning Specialist"},
		{ID: TrackCloud, Name: "Cloud, DevOps & Infrastructure Specialist"},
		{ID: TrackDatabases, Name: "Databases & Architecture Specialist"},
		{ID: TrackMobile, Name: "Mobile, Blockchain & Specialized Roles Specialist"},
	}
}

func defaultSkills() map[string]model.SkillInfo {
	skills := make(map[string]model.SkillInfo)
	add := func(track model.Track, category string, names ...string) {
		for _, n := range names {
			skills[n] = model.SkillInfo{Track: track, Category: category}
		}
	}

	add(TrackFrontend, "Frontend", "html", "css", "javascript", "typescript", "react", "nextjs", "vue", "angular", "ux-design")
	add(TrackBackend, "Backend", "nodejs", "graphql", "spring-boot", "aspnet-core", "php", "api-design")
	add(TrackLanguages, "Languages", "python", "java", "go", "rust", "cpp", "kotlin")
	add(TrackDataAI, "Data/AI", "machine-learning", "deep-learning", "mlops", "data-science", "prompt-engineering")
	add(TrackCloud, "Cloud", "aws", "docker", "kubernetes", "terraform", "system-design")
	add(TrackDatabases, "Databases", "postgresql", "sql", "mongodb", "redis")
	add(TrackMobile, "Mobile", "ios", "android", "flutter")
	add(TrackMobile, "Specialized", "blockchain", "game-dev")

	return skills
}

func defaultPaths() map[string]model.LearningPath {
	return map[string]model.LearningPath{
		"frontend-specialist": {
			Skills:   []string{"html", "css", "javascript", "typescript", "react"},
			Tracks:   []model.Track{TrackFrontend},
			Duration: "8-10 weeks",
			Level:    model.LevelIntermediate,
		},
		"backend-specialist": {
			Skills:   []string{"api-design", "nodejs", "databases", "system-design"},
			Tracks:   []model.Track{TrackBackend},
			Duration: "10-12 weeks",
			Level:    model.LevelIntermediate,
		},
		"full-stack": {
			Skills:   []string{"javascript", "react", "nodejs", "databases"},
			Tracks:   []model.Track{TrackFrontend, TrackBackend},
			Duration: "12-16 weeks",
			Level:    model.LevelAdvanced,
		},
		"devops-engineer": {
			Skills:   []string{"docker", "kubernetes", "aws", "system-design"},
			Tracks:   []model.Track{TrackCloud},
			Duration: "10-12 weeks",
			Level:    model.LevelIntermediate,
		},
		"ml-engineer": {
			Skills:   []string{"python", "machine-learning", "data-science", "mlops"},
			Tracks:   []model.Track{TrackLanguages, TrackDataAI},
			Duration: "12-16 weeks",
			Level:    model.LevelAdvanced,
		},
	}
}

func defaultResources() map[string][]model.Resource {
	return map[string][]model.Resource{
		"frontend-specialist": {
			{Title: "MDN Web Docs", URL: "https://developer.mozilla.org"},
			{Title: "React Official Docs", URL: "https://react.dev"},
			{Title: "Web.dev", URL: "https://web.dev"},
		},
		"backend-specialist": {
			{Title: "Node.js Docs", URL: "https://nodejs.org/docs"},
			{Title: "RESTful API Docs", URL: "https://restfulapi.net"},
			{Title: "System Design Primer", URL: "https://github.com/donnemartin/system-design-primer"},
		},
		"devops-engineer": {
			{Title: "Kubernetes Docs", URL: "https://kubernetes.io/docs"},
			{Title: "Docker Documentation", URL: "https://docs.docker.com"},
			{Title: "AWS Documentation", URL: "https://docs.aws.amazon.com"},
		},
		"ml-engineer": {
			{Title: "PyTorch Docs", URL: "https://pytorch.org/docs"},
			{Title: "TensorFlow Guide", URL: "https://www.tensorflow.org/guide"},
			{Title: "Fast.ai", URL: "https://fast.ai"},
		},
	}
}

func defaultRoleGroups() []model.RoleGroup {
	return []model.RoleGroup{
		{Name: "frontendRoles", Roles: []string{
			"html", "css", "javascript", "typescript", "react", "nextjs",
			"vue", "angular", "react-native", "ux-design", "design-systems",
		}},
		{Name: "backendRoles", Roles: []string{
			"nodejs", "graphql", "spring-boot", "aspnet-core", "php",
			"api-design", "backend", "backend-beginner",
		}},
		{Name: "languageRoles", Roles: []string{
			"python", "java", "go", "rust", "cpp", "kotlin", "bash",
			"computer-science", "data-structures-algorithms",
		}},
		{Name: "dataAiRoles", Roles: []string{
			"ai-engineer", "ai-data-scientist", "machine-learning", "mlops",
			"prompt-engineering", "ai-red-teaming", "ai-agents",
			"data-analyst", "bi-analyst", "data-engineer",
		}},
		{Name: "cloudDevopsRoles", Roles: []string{
			"aws", "cloudflare", "docker", "kubernetes", "terraform",
			"linux", "devops", "devops-beginner", "system-design",
		}},
		{Name: "databaseRoles", Roles: []string{
			"postgresql-dba", "sql", "redis", "mongodb",
			"software-design-architecture", "software-architect",
		}},
		{Name: "mobileSpecializedRoles", Roles: []string{
			"ios", "swift-ui", "android", "flutter", "git-github",
			"full-stack", "blockchain", "game-developer",
			"server-side-game-developer", "qa", "product-manager",
			"engineering-manager", "technical-writer", "devrel", "cyber-security",
		}},
	}
}

func defaultSchedules() map[string]model.WeeklySchedule {
	return map[string]model.WeeklySchedule{
		string(model.LevelBeginner): {
			HoursPerWeek: 20,
			TotalWeeks:   12,
			FocusAreas:   []string{"Fundamentals", "Core Concepts", "Basic Projects"},
		},
		string(model.LevelIntermediate): {
			HoursPerWeek: 15,
			TotalWeeks:   8,
			FocusAreas:   []string{"Advanced Concepts", "Complex Projects", "Best Practices"},
		},
		string(model.LevelAdvanced): {
			HoursPerWeek: 10,
			TotalWeeks:   6,
			FocusAreas:   []string{"Specialization", "Performance Tuning", "Architecture"},
		},
	}
}

func defaultRoadmapPhases() []model.RoadmapPhase {
	return []model.RoadmapPhase{
		{Phase: 1, Name: "Fundamentals", Duration: "1-2 weeks", Topics: []string{"Core concepts", "Basic tools", "Environment setup"}},
		{Phase: 2, Name: "Core Skills", Duration: "2-4 weeks", Topics: []string{"Intermediate concepts", "Practical projects", "Best practices"}},
		{Phase: 3, Name: "Advanced Topics", Duration: "2-4 weeks", Topics: []string{"Advanced patterns", "Performance optimization", "Production deployment"}},
		{Phase: 4, Name: "Specialization", Duration: "2-4 weeks", Topics: []string{"Advanced specialization", "Real-world projects", "Career development"}},
	}
}
