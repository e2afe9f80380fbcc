package models

type ErrorResponse struct {
	Message string `json:"message" example:"Employee with ID 507f1f77bcf86cd799439011 not found."`
}

type HealthResponse struct {
	Message string `json:"message" example:"Employee Management System API is running"`
	Status  string `json:"status" example:"running"`
	Docs    string `json:"docs" example:"/docs/index.html"`
}
