package services

import "errors"

// Domain errors surfaced to the HTTP layer. Controllers map these to status
// codes; anything else is treated as an internal error.
var (
	ErrNotFound                = errors.New("record not found")
	ErrAlreadyEnrolled         = errors.New("participant already enrolled in this course")
	ErrCourseUnavailable       = errors.New("course is not available for enrollment")
	ErrNotEligible             = errors.New("enrollment is not eligible for a certificate")
	ErrDuplicateCertificate    = errors.New("an issued certificate already exists for this participant and course")
	ErrCodeGenerationExhausted = errors.New("could not generate a unique verification code")
	ErrCertificateEmitted      = errors.New("an issued certificate cannot be deleted")
	ErrInvalidTransition       = errors.New("invalid enrollment status transition")
)
