package advising

import (
	"errors"
	"fmt"
)

var (
	ErrQuestionRequired    = errors.New("question is required")
	ErrAPIKeyNotConfigured = errors.New("google API key is not configured")
	ErrAIRequestFailed     = errors.New("failed to process AI request")
)

// AdvisingError carrega o código de API e o ID da consulta; a causa original fica só no log
type AdvisingError struct {
	Err       error
	Code      string
	InquiryID string
}

func (e *AdvisingError) Error() string {
	if e.InquiryID != "" {
		return fmt.Sprintf("%s (inquiry %s)", e.Err.Error(), e.InquiryID)
	}
	return e.Err.Error()
}

func (e *AdvisingError) Unwrap() error {
	return e.Err
}

func NewAdvisingError(err error, code string, inquiryID string) *AdvisingError {
	return &AdvisingError{
		Err:       err,
		Code:      code,
		InquiryID: inquiryID,
	}
}
