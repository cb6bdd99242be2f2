package models

// Request and response payloads of the HTTP API. Each operation has an
// explicit struct so that inputs are validated at the transport boundary
// before reaching the service layer.

// SignupRequest is the payload of POST /api/users/signup.
type SignupRequest struct {
	// Name is the display name of the new account. Required.
	Name string `json:"name"`

	// DateOfBirth is the profile date of birth in "2006-01-02" form. Required.
	DateOfBirth string `json:"dob"`

	// Email is the address the signup passcode is sent to. Required.
	Email string `json:"email"`
}

// SigninRequest is the payload of POST /api/users/signin.
type SigninRequest struct {
	// Email is the address of an existing account. Required.
	Email string `json:"email"`
}

// VerifyOTPRequest is the payload of POST /api/users/verify-otp.
type VerifyOTPRequest struct {
	// Email is the address the passcode was issued for. Required.
	Email string `json:"email"`

	// OTP is the submitted 6-digit passcode. Required.
	OTP string `json:"otp"`
}

// CreateNoteRequest is the payload of POST /api/notes.
type CreateNoteRequest struct {
	// Title is the note title. Must be non-empty after trimming.
	Title string `json:"title"`

	// Content is the note body. Must be non-empty after trimming.
	Content string `json:"content"`
}

// MessageResponse is the generic acknowledgement body returned by
// operations that have no payload, and by every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// VerifyOTPResponse is the success body of POST /api/users/verify-otp:
// the signed session token plus the public profile of the verified user.
type VerifyOTPResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// CreateNoteResponse is the success body of POST /api/notes.
type CreateNoteResponse struct {
	Message string `json:"message"`
	Note    Note   `json:"note"`
}
