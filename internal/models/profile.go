// internal/models/profile.go
package models

// Profile is the per-role profile record. Field names mirror the persisted
// JSON layout so overrides written by older clients still parse.
type Profile struct {
	BasicInfo  BasicInfo    `json:"basicInfo"`
	Resume     Resume       `json:"resume"`
	Skills     Skills       `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Todo       Todo         `json:"todo"`
}

type BasicInfo struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Location  string `json:"location"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Avatar    string `json:"avatar"`
	Online    bool   `json:"online"`
	JobStatus string `json:"jobStatus"`
	Views     int    `json:"views"`
}

type Resume struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
}

type Skills struct {
	Technical []SkillLevel `json:"technical"`
	Soft      []string     `json:"soft"`
	Tools     []ToolSkill  `json:"tools"`
}

// SkillLevel rates a technical skill 0-100.
type SkillLevel struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// ToolSkill rates tooling proficiency with a label instead of a number.
type ToolSkill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Location         string   `json:"location"`
	Responsibilities []string `json:"responsibilities"`
}

type Education struct {
	Degree       string   `json:"degree"`
	School       string   `json:"school"`
	Graduation   string   `json:"graduation"`
	GPA          string   `json:"gpa"`
	Description  string   `json:"description"`
	CoursesLabel string   `json:"coursesLabel"`
	Courses      []string `json:"courses"`
}

// Todo tracks profile-completion checklist state.
type Todo struct {
	Items   map[string]bool `json:"items"`
	Summary TodoSummary     `json:"summary"`
}

type TodoSummary struct {
	Total int `json:"total"`
	Done  int `json:"done"`
	Pct   int `json:"pct"`
}

// ProfileMetadata is the stamp written next to every profile override so
// readers can tell where the record came from and when.
type ProfileMetadata struct {
	LastUpdated string `json:"lastUpdated"` // RFC3339
	Source      string `json:"source"`      // "json_load" or "user_edit"
	Version     string `json:"version"`
	Role        Role   `json:"userType"`
}

const (
	// MetadataSourceLoad marks a profile cached from the static defaults.
	MetadataSourceLoad = "json_load"
	// MetadataSourceEdit marks a profile written by the user.
	MetadataSourceEdit = "user_edit"
)
