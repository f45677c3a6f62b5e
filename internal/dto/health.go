package dto

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type DBStatusResponse struct {
	DBStatus string `json:"db_status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
