package institute

type CreateInstituteDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateInstituteDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
