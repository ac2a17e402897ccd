package dto

import "time"

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ============ Категории (Categories) ============

type CategoryResponse struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	AllowedRoles string `json:"allowed_roles,omitempty"`
	ContentCount int64  `json:"content_count"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

type CreateCategoryRequest struct {
	Slug         string `json:"slug" binding:"required,min=2,max=100"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	AllowedRoles string `json:"allowed_roles"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	AllowedRoles *string `json:"allowed_roles"`
}

// ============ Материалы (Content) ============

type ContentResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CategorySlug string    `json:"category"`
	Type         string    `json:"type"`
	Duration     string    `json:"duration,omitempty"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
	VideoURL     string    `json:"video_url,omitempty"`
	Body         string    `json:"body,omitempty"`
	Views        int       `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
}

type ContentListResponse struct {
	Content []ContentResponse `json:"content"`
	Total   int               `json:"total"`
}

type CreateContentRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	CategorySlug string `json:"category" binding:"required"`
	Type         string `json:"type" binding:"required,oneof=video article instruction"`
	Duration     string `json:"duration"`
	VideoURL     string `json:"video_url"`
	Body         string `json:"body"`
}

type UpdateContentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type" binding:"omitempty,oneof=video article instruction"`
	Duration    *string `json:"duration"`
	VideoURL    *string `json:"video_url"`
	Body        *string `json:"body"`
}

// ============ Бизнес-процессы (Processes) ============

type StepRequest struct {
	// step_number принимается для совместимости с формой, но игнорируется:
	// каноничный порядок задаёт позиция шага в массиве
	StepNumber        int      `json:"step_number"`
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description"`
	Responsible       string   `json:"responsible"`
	Duration          string   `json:"duration"`
	RelatedContentIDs []string `json:"related_content_ids"`
}

type CreateProcessRequest struct {
	Name         string        `json:"name" binding:"required"`
	Description  string        `json:"description"`
	Departments  []string      `json:"departments"`
	AllowedRoles string        `json:"allowed_roles"`
	Steps        []StepRequest `json:"steps" binding:"dive"`
}

type UpdateProcessRequest struct {
	Name         string        `json:"name" binding:"required"`
	Description  string        `json:"description"`
	Departments  []string      `json:"departments"`
	AllowedRoles *string       `json:"allowed_roles"`
	Steps        []StepRequest `json:"steps" binding:"dive"`
}
