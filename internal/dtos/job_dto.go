package dtos

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional Fields
	EmployerID *uint    `json:"employer_id"` // must match the token when sent
	Salary     *float64 `json:"salary"`
	JobType    string   `json:"job_type"` // Defaults to "Part-time" if empty
	TimeSlot   string   `json:"time_slot"`
	Latitude   *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude  *float64 `json:"longitude" binding:"omitempty,longitude"`
}

// JobUpdateRequest changes only the fields that are present.
type JobUpdateRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1"`
	Description *string  `json:"description" binding:"omitempty,min=1"`
	Salary      *float64 `json:"salary"`
	JobType     *string  `json:"job_type" binding:"omitempty,min=1"`
	TimeSlot    *string  `json:"time_slot"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,longitude"`
	Status      *string  `json:"status" binding:"omitempty,oneof=open closed"`
}

type JobDeletionRequest struct {
	EmployerID *uint `json:"employer_id"`
}

func (r JobUpdateRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Salary == nil && r.JobType == nil &&
		r.TimeSlot == nil && r.Latitude == nil && r.Longitude == nil && r.Status == nil
}
