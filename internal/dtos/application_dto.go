package dtos

type ApplyRequest struct {
	EmployeeID  *uint  `json:"employee_id"` // must match the token when sent
	CoverLetter string `json:"cover_letter"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
