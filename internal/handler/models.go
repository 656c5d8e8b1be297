package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateTeamRequest struct {
	Name       string `json:"name"`
	BirthDay   int    `json:"birth_day"`
	BirthMonth int    `json:"birth_month"`
	BirthYear  int    `json:"birth_year"`
}

type TeamResponse struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	BirthDay   int      `json:"birth_day"`
	BirthMonth int      `json:"birth_month"`
	BirthYear  int      `json:"birth_year"`
	Pokemon    []string `json:"pokemon"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  *string  `json:"updated_at,omitempty"`
}

type CreateTeamResponse struct {
	Team TeamResponse `json:"team"`
}

type GetTeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

// Нулевые значения числовых полей и пустое имя означают «не менять»
type UpdateTeamRequest struct {
	ID       int    `json:"id"`
	NewName  string `json:"new_name,omitempty"`
	NewDay   int    `json:"new_day,omitempty"`
	NewMonth int    `json:"new_month,omitempty"`
	NewYear  int    `json:"new_year,omitempty"`
}

type UpdateTeamResponse struct {
	Team TeamResponse `json:"team"`
}
