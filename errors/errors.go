/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrConfiguration is returned when a model declaration is malformed
	ErrConfiguration = errors.New("invalid model configuration")

	// ErrInvalidField is returned when a query names a field unknown to the model
	ErrInvalidField = errors.New("invalid field")

	// ErrDoesNotExist is returned when a get matches no members
	ErrDoesNotExist = errors.New("member does not exist")

	// ErrMultipleReturned is returned when a get matches more than one member
	ErrMultipleReturned = errors.New("multiple members returned")
)

// ConfigurationError represents a malformed model declaration
type ConfigurationError struct {
	Model   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("model %q: %s", e.Model, e.Message)
	}
	return fmt.Sprintf("model configuration: %s", e.Message)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// InvalidFieldError represents a query against a field no member of the model declares
type InvalidFieldError struct {
	Model string
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("model %q has no field %q", e.Model, e.Field)
}

func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// DoesNotExistError represents a get that matched no members
type DoesNotExistError struct {
	Model    string
	Criteria string
}

func (e *DoesNotExistError) Error() string {
	return fmt.Sprintf("%s.members.get(%s) yielded no members", e.Model, e.Criteria)
}

func (e *DoesNotExistError) Is(target error) bool {
	return target == ErrDoesNotExist
}

// MultipleReturnedError represents a get that matched more than one member
type MultipleReturnedError struct {
	Model    string
	Criteria string
	Count    int
}

func (e *MultipleReturnedError) Error() string {
	return fmt.Sprintf("%s.members.get(%s) yielded %d members", e.Model, e.Criteria, e.Count)
}

func (e *MultipleReturnedError) Is(target error) bool {
	return target == ErrMultipleReturned
}

// Helper functions for creating errors

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(model, message string) error {
	return &ConfigurationError{Model: model, Message: message}
}

// NewInvalidFieldError creates a new InvalidFieldError
func NewInvalidFieldError(model, field string) error {
	return &InvalidFieldError{Model: model, Field: field}
}

// NewDoesNotExistError creates a new DoesNotExistError
func NewDoesNotExistError(model, criteria string) error {
	return &DoesNotExistError{Model: model, Criteria: criteria}
}

// NewMultipleReturnedError creates a new MultipleReturnedError
func NewMultipleReturnedError(model, criteria string, count int) error {
	return &MultipleReturnedError{Model: model, Criteria: criteria, Count: count}
}

// IsConfiguration checks if an error is a configuration error
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsInvalidField checks if an error is an invalid field error
func IsInvalidField(err error) bool {
	return errors.Is(err, ErrInvalidField)
}

// IsDoesNotExist checks if an error is a does not exist error
func IsDoesNotExist(err error) bool {
	return errors.Is(err, ErrDoesNotExist)
}

// IsMultipleReturned checks if an error is a multiple returned error
func IsMultipleReturned(err error) bool {
	return errors.Is(err, ErrMultipleReturned)
}
