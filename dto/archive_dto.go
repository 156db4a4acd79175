package dto

type CreateArchiveInput struct {
	Filename  string  `json:"filename" binding:"required,max=255"`
	PrintName *string `json:"print_name" binding:"omitempty,max=255"`
	ProjectID *uint   `json:"project_id"`
	Status    string  `json:"status" binding:"omitempty,archivestatus"`
}
