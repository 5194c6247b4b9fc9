package apperrors

import "net/http"

// Factories for wrapping repository errors.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// Predefined errors for the frequent, static cases.

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Auth & user status ---

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrInvalidEmail = New(
	CodeValidationFailed,
	"validation",
	"Invalid email address",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

var ErrUserBanned = New(
	CodeForbidden,
	"auth",
	"Your account has been banned",
	http.StatusForbidden,
)

var ErrUserNotVerified = New(
	CodeForbidden,
	"auth",
	"Please verify your email address",
	http.StatusForbidden,
)

// --- Jobs & applications ---

var ErrJobNotOpen = New(
	CodeInvalidStatus,
	"job",
	"Job is not open for applications",
	http.StatusConflict,
)

var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"Only the job's recruiter may perform this operation",
	http.StatusForbidden,
)

var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Invalid application status",
	http.StatusBadRequest,
)

// --- Job requests ---

var ErrRecruiterReassignment = New(
	CodeConflict,
	"job_request",
	"Assigned recruiter cannot be changed",
	http.StatusConflict,
)

var ErrNotAssignedRecruiter = New(
	CodeForbidden,
	"job_request",
	"Only the assigned recruiter may update this request",
	http.StatusForbidden,
)

var ErrInvalidRequestStatus = New(
	CodeInvalidStatus,
	"job_request",
	"Invalid job request status",
	http.StatusBadRequest,
)

// --- Tasks ---

var ErrNotARecruiter = New(
	CodeForbidden,
	"task",
	"A recruiter profile is required for this operation",
	http.StatusForbidden,
)

var ErrInvalidTaskStatus = New(
	CodeInvalidStatus,
	"task",
	"Invalid task status",
	http.StatusBadRequest,
)

// --- Profiles ---

var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)
