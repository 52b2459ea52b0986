package invoices

// ActionResult reports the outcome of a form action. A redirect target
// signals success; otherwise Message and Errors carry validation or
// persistence feedback for re-rendering the form. Redirects are explicit
// result values so they are never confused with failures.
type ActionResult struct {
	RedirectTo string
	Message    string
	Errors     FieldErrors
}

// Redirected builds a successful result that navigates to path.
func Redirected(path string) ActionResult {
	return ActionResult{RedirectTo: path}
}

// Failed builds a failure result with a top-level message and optional
// field-scoped errors.
func Failed(message string, errs FieldErrors) ActionResult {
	return ActionResult{Message: message, Errors: errs}
}

// Redirects reports whether the action succeeded with a redirect.
func (r ActionResult) Redirects() bool {
	return r.RedirectTo != ""
}
