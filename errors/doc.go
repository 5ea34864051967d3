/*
Package errors provides semantic error types for the staticmodel library.

The package defines the failure vocabulary of model declaration and member
queries with specific types that can be checked using the standard errors.Is()
function or the provided helper functions.

Common Errors:

	var (
	    ErrConfiguration    = errors.New("invalid model configuration")
	    ErrInvalidField     = errors.New("invalid field")
	    ErrDoesNotExist     = errors.New("member does not exist")
	    ErrMultipleReturned = errors.New("multiple members returned")
	)

Usage:

	// Check error type
	member, err := color.Members().Get(staticmodel.Fields{"pk": 99})
	if err != nil {
	    if errors.IsDoesNotExist(err) {
	        // Translate into the caller's validation vocabulary
	        return nil, fmt.Errorf("no such color: %v", 99)
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewDoesNotExistError("Color", "pk=99")
	err := errors.NewInvalidFieldError("Color", "shade")
	err := errors.NewConfigurationError("Color", "duplicate primary key 1")

All four kinds are raised synchronously at the call that detects them:
ConfigurationError at Build time, the other three at query time. The library
never catches or retries them internally; there are no transient failure
modes because there is no I/O.
*/
package errors
