// internal/defaults/baseline.go
package defaults

import "huntersite/internal/models"

// BaselineProfile is the compiled-in profile used whenever the remote
// defaults document cannot be fetched or fails validation. It mirrors
// the shipped profile.json so a cold start without the asset server
// still renders a complete profile page.
func BaselineProfile() models.Profile {
	return models.Profile{
		BasicInfo: models.BasicInfo{
			Name:      "Alex Morgan",
			Title:     "Frontend Developer",
			Location:  "San Francisco, CA",
			Email:     "alex.morgan@example.com",
			Phone:     "+1 (555) 012-3456",
			Avatar:    "assets/images/avatar-default.png",
			Online:    true,
			JobStatus: "Actively looking",
			Views:     0,
		},
		Resume: models.Resume{
			FileName: "alex-morgan-resume.pdf",
			URL:      "assets/files/alex-morgan-resume.pdf",
		},
		Skills: models.Skills{
			Technical: []models.SkillLevel{
				{Name: "JavaScript", Level: 90},
				{Name: "HTML/CSS", Level: 85},
				{Name: "React", Level: 75},
				{Name: "Node.js", Level: 60},
			},
			Soft: []string{"Communication", "Teamwork", "Problem Solving"},
			Tools: []models.ToolSkill{
				{Name: "Git", Level: "Advanced"},
				{Name: "Figma", Level: "Intermediate"},
				{Name: "Docker", Level: "Beginner"},
			},
		},
		Experience: []models.Experience{
			{
				Title:    "Frontend Developer",
				Company:  "Bright Apps Inc.",
				Duration: "2022 - Present",
				Location: "San Francisco, CA",
				Responsibilities: []string{
					"Built and maintained customer-facing web applications",
					"Collaborated with designers on component libraries",
				},
			},
			{
				Title:    "Junior Web Developer",
				Company:  "Startup Lab",
				Duration: "2020 - 2022",
				Location: "Remote",
				Responsibilities: []string{
					"Implemented responsive landing pages",
					"Wrote unit tests for shared utilities",
				},
			},
		},
		Education: []models.Education{
			{
				Degree:       "B.S. Computer Science",
				School:       "State University",
				Graduation:   "2020",
				GPA:          "3.7",
				Description:  "Focus on web technologies and human-computer interaction.",
				CoursesLabel: "Relevant courses",
				Courses:      []string{"Data Structures", "Web Development", "Databases"},
			},
		},
		Todo: models.Todo{
			Items: map[string]bool{
				"basicInfo":  true,
				"resume":     true,
				"skills":     true,
				"experience": true,
				"education":  true,
				"photo":      false,
			},
			Summary: models.TodoSummary{Total: 6, Done: 5, Pct: 83},
		},
	}
}

// BaselineCatalog is the compiled-in copy of the shipped jobs.json. The
// seed tool materializes it into the dev asset tree so a fresh checkout
// has the documents the provider fetches.
func BaselineCatalog() models.Catalog {
	return models.Catalog{
		Categories: []models.Category{
			{ID: "engineering", Name: "Engineering", Icon: "code"},
			{ID: "design", Name: "Design", Icon: "brush"},
			{ID: "marketing", Name: "Marketing", Icon: "megaphone"},
		},
		Jobs: []models.JobListing{
			{
				ID:          "static-001",
				Title:       "Senior Frontend Engineer",
				Company:     "Nimbus Software",
				Location:    "Remote",
				Type:        "Full-time",
				Salary:      "$140k - $170k",
				Description: "Own the component library and design system.",
				Category:    "engineering",
				PostedDate:  "2026-08-01T09:00:00Z",
				Featured:    true,
				Source:      models.SourceStatic,
			},
			{
				ID:          "static-002",
				Title:       "Product Designer",
				Company:     "Nimbus Software",
				Location:    "New York, NY",
				Type:        "Full-time",
				Salary:      "$110k - $135k",
				Description: "Design flows for the hiring pipeline.",
				Category:    "design",
				PostedDate:  "2026-08-05T09:00:00Z",
				Source:      models.SourceStatic,
			},
		},
	}
}
