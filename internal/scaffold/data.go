package scaffold

import "folio.dev/internal/models"

var sampleProjects = []models.Project{
	{
		ID:          "terminal-mail",
		Title:       "Terminal Mail",
		Description: "A keyboard-driven email client for the terminal with fuzzy search across folders.",
		Image:       "static/img/terminal-mail.png",
		GitHubURL:   "https://github.com/example/terminal-mail",
		HasDetails:  true,
	},
	{
		ID:          "game-recs",
		Title:       "Game Recommender",
		Description: "Content-based game recommendations using TF-IDF vectors and cosine similarity.",
		Image:       "static/img/game-recs.png",
		GitHubURL:   "https://github.com/example/game-recs",
		HasDetails:  true,
	},
	{
		ID:          "dotfiles",
		Title:       "Dotfiles",
		Description: "Shell, editor and window manager configuration.",
		Image:       "static/img/dotfiles.png",
		GitHubURL:   "https://github.com/example/dotfiles",
	},
}

var sampleDetails = map[string]models.ProjectDetail{
	"terminal-mail": {
		Title:     "Terminal Mail",
		MainImage: "static/img/terminal-mail-wide.png",
		LongDescription: []string{
			"Terminal Mail talks IMAP directly and keeps a local index so searching a mailbox stays instant.",
			"Every action has a key binding; the mouse is optional.",
		},
		Technologies: []string{"Go", "IMAP", "Bubble Tea"},
		Gallery: []models.GalleryItem{
			{Image: "static/img/terminal-mail-inbox.png", Caption: "Inbox", Description: "Threads grouped by conversation."},
			{Image: "static/img/terminal-mail-compose.png", Caption: "Compose"},
		},
	},
	"game-recs": {
		Title:     "Game Recommender",
		MainImage: "static/img/game-recs-wide.png",
		LongDescription: []string{
			"Descriptions and tags are vectorised once at startup; queries are answered by cosine similarity.",
		},
		Technologies: []string{"Python", "scikit-learn", "Flask"},
	},
}

var sampleEducation = []models.EducationEntry{
	{
		Year:   "2019 - 2023",
		School: "State University",
		Link:   "https://example.edu",
		Image:  "static/img/university.png",
		Items: []models.Subject{
			{Subject: "Data Structures", Grade: "A"},
			{Subject: "Operating Systems", Grade: "A-"},
		},
	},
	{
		Year:   "2022",
		School: "Project Management Certificate",
		Link:   "https://example.org/certificates",
		Image:  "static/img/certificate.png",
		Items:  []models.Subject{},
	},
}

var sampleExperience = []models.ExperienceEntry{
	{
		Year:        "2023 - Present",
		Place:       "Retail Operations",
		Link:        "https://example.com",
		Image:       "static/img/retail.png",
		Description: "Ran **300+** merchandising transitions on tight timelines.\n\nStreamlined backroom inventory between floor and logistics teams.",
	},
	{
		Year:        "2016 - 2023",
		Place:       "Catered Events",
		Link:        "https://example.net",
		Image:       "static/img/catering.png",
		Description: "Coordinated menus and event technology for private clients.",
	},
}
