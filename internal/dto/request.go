package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email         string `json:"email" binding:"required"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	FirstPassword string `json:"first-password" binding:"required"`
	LastPassword  string `json:"second-password" binding:"required"`
	Role          string `json:"role"`
}

// ExternalMediaRequest is the JSON branch of a media upload: an
// external image URL plus an optional caption.
type ExternalMediaRequest struct {
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

type MediaAltRequest struct {
	Alt string `json:"alt" binding:"required"`
}

type ProjectTitleRequest struct {
	Title string `json:"title" binding:"required"`
}

type ProjectDescriptionRequest struct {
	Description string `json:"description"`
}

type ProjectVisibilityRequest struct {
	Visibility string `json:"visibility" binding:"required"`
}

type ContributorUpdateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ProjectLinkRequest struct {
	Link      string `json:"link" binding:"required"`
	CoverText string `json:"coverText"`
}

type QuestionUpdateRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer"`
}

// OwnerTransferRequest names the account that takes over a project.
type OwnerTransferRequest struct {
	Email string `json:"email" binding:"required"`
}

type SkillTagRequest struct {
	Name string `json:"name" binding:"required"`
}

type ProjectSearchRequest struct {
	Keywords []string `form:"-"`
	Skills   []string `form:"-"`
	Limit    int      `form:"limit"`
	Token    string   `form:"token"`
}
