// Package dto holds the JSON shapes served by the HTTP API.
package dto

import "time"

// Team is the wire form of a team. Users is never null.
type Team struct {
	ID           int64     `json:"id"`
	Hash         string    `json:"hash"`
	CreationDate time.Time `json:"creationDate"`
	Users        []User    `json:"users"`
}

// User is a team member without its team back-references.
type User struct {
	ID   int64  `json:"id"`
	Hash string `json:"hash"`
}

// ErrorCode classifies failures in ErrorResponse.
type ErrorCode string

// Defines values for ErrorCode.
const (
	INTERNAL ErrorCode = "INTERNAL"
)

// ErrorBody carries the error code and a client-safe message.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse wraps ErrorBody under the "error" key.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
