// Package errs holds the error kinds shared by every layer of the workshop.
//
// Each kind is a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) plus a
// struct carrying the parameter name and, optionally, a cause. The structs
// unwrap to their sentinel, so callers classify with errors.Is and read the
// details with errors.As:
//
//	var notFound *errs.ObjectNotFoundError
//	if errors.As(err, &notFound) {
//	    log.Printf("%s %v is missing", notFound.ParamName, notFound.ID)
//	}
//
// Messages never contain newlines.
package errs
