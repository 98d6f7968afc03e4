package handler

import "time"

// ErrorResponse is the standard error envelope returned on all 4xx/5xx responses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type meResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// --- Students ---

type studentRequest struct {
	Name       string   `json:"name"        validate:"required"`
	RollNumber string   `json:"roll_number" validate:"required"`
	Department string   `json:"department"  validate:"required"`
	CGPA       *float64 `json:"cgpa"        validate:"required,gte=0,lte=10"`
	Email      string   `json:"email"       validate:"required"`
	Phone      string   `json:"phone"       validate:"required"`
}

type studentResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	RollNumber string    `json:"roll_number"`
	Department string    `json:"department"`
	CGPA       float64   `json:"cgpa"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
}

// --- Companies ---

type companyRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Domain   string   `json:"domain"   validate:"required"`
	Package  *float64 `json:"package"  validate:"required,gte=0"`
	Location string   `json:"location" validate:"required"`
	Website  *string  `json:"website"`
}

type companyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain"`
	Package   float64   `json:"package"`
	Location  string    `json:"location"`
	Website   *string   `json:"website"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Drives ---

type driveRequest struct {
	CompanyID           string   `json:"company_id"           validate:"required"`
	Date                string   `json:"date"                 validate:"required,datetime=2006-01-02"`
	EligibleDepartments []string `json:"eligible_departments" validate:"required"`
	Role                string   `json:"role"                 validate:"required"`
	Description         *string  `json:"description"`
}

type driveResponse struct {
	ID                  string    `json:"id"`
	CompanyID           string    `json:"company_id"`
	CompanyName         string    `json:"company_name"`
	Date                string    `json:"date"`
	EligibleDepartments []string  `json:"eligible_departments"`
	Role                string    `json:"role"`
	Description         *string   `json:"description"`
	CreatedAt           time.Time `json:"created_at"`
}

// --- Offers ---

type offerRequest struct {
	StudentID string   `json:"student_id" validate:"required"`
	CompanyID string   `json:"company_id" validate:"required"`
	Package   *float64 `json:"package"    validate:"required,gte=0"`
	Role      string   `json:"role"       validate:"required"`
	Date      string   `json:"date"       validate:"required,datetime=2006-01-02"`
}

type offerResponse struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	CompanyID   string    `json:"company_id"`
	CompanyName string    `json:"company_name"`
	Package     float64   `json:"package"`
	Role        string    `json:"role"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// --- Seed ---

// seedResponse carries counts only when data was written.
type seedResponse struct {
	Message   string `json:"message"`
	Students  int    `json:"students,omitempty"`
	Companies int    `json:"companies,omitempty"`
	Drives    int    `json:"drives,omitempty"`
	Offers    int    `json:"offers,omitempty"`
}

// --- Health ---

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}
