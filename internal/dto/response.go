package dto

// MediaResponse is returned by the upload pipelines.
type MediaResponse struct {
	ID               string `json:"id"`
	URL              string `json:"url"`
	AltText          string `json:"altText"`
	StorageRemaining int64  `json:"storageRemaining"`
}

// MediaRef is a media record embedded in project documents.
type MediaRef struct {
	ID      string `json:"id"`
	URL     string `json:"link"`
	AltText string `json:"caption"`
}

type ContributorRef struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

type LinkRef struct {
	ID        uint64 `json:"id"`
	URL       string `json:"link"`
	CoverText string `json:"coverText"`
}

type QuestionRef struct {
	ID       uint64 `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// OwnerTransferResponse describes a project after an ownership change.
type OwnerTransferResponse struct {
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Contributors []ContributorRef `json:"contributors"`
}

// ProjectDetail is the full project document served to the edit and
// view pages.
type ProjectDetail struct {
	ProjectID        uint64           `json:"project_id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Visibility       string           `json:"visibility"`
	OwnerName        string           `json:"owner_name"`
	OwnerEmail       string           `json:"owner_email"`
	Contributors     []ContributorRef `json:"contributors"`
	Thumbnail        *MediaRef        `json:"thumbnail"`
	Images           []MediaRef       `json:"images"`
	Links            []LinkRef        `json:"links"`
	SkillTags        []string         `json:"skill_tags"`
	Questions        []QuestionRef    `json:"questions"`
	StorageRemaining int64            `json:"storage_remaining"`
}

// ProjectSummary is one search result row.
type ProjectSummary struct {
	ProjectID    uint64    `json:"project_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Thumbnail    *MediaRef `json:"thumbnail"`
	Contributors []string  `json:"contributors"`
	SkillTags    []string  `json:"skillTags"`
}

// ProjectSearchResponse is a page of public projects.
type ProjectSearchResponse struct {
	PaginationToken string           `json:"paginationToken,omitempty"`
	Projects        []ProjectSummary `json:"projects"`
}
