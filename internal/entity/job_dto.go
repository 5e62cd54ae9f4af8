package entity

type CreateJobRequest struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Location string `json:"location"`
	Salary   string `json:"salary"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

type UpdateJobRequest struct {
	Company  *string `json:"company,omitempty"`
	Position *string `json:"position,omitempty"`
	Location *string `json:"location,omitempty"`
	Salary   *string `json:"salary,omitempty"`
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}
