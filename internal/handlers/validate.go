package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for post fields.
const (
	maxTitleLen = 200
	maxBodyLen  = 10_000
)

// postInput is the result of validating a submitted post form: the ordered
// list of rule violations (empty means valid) plus the trimmed field
// values ready for persistence.
type postInput struct {
	Errors []string
	Title  string
	Body   string
}

// Valid reports whether no rule fired.
func (in postInput) Valid() bool {
	return len(in.Errors) == 0
}

// validateNewPost checks the create-form inputs. Every rule runs; errors
// accumulate in rule order rather than short-circuiting, so the user sees
// all problems at once.
func validateNewPost(title, body string) postInput {
	in := validatePost(title, body)
	if utf8.RuneCountInString(in.Body) > maxBodyLen {
		in.Errors = append(in.Errors, "Body is too long.")
	}
	return in
}

// validateUpdatePost checks the edit-form inputs. Unlike the create path it
// does not cap the body length. Longstanding quirk; kept until someone
// decides the two paths should agree.
func validateUpdatePost(title, body string) postInput {
	return validatePost(title, body)
}

// validatePost applies the rules shared by both paths.
func validatePost(title, body string) postInput {
	in := postInput{
		Title: strings.TrimSpace(title),
		Body:  strings.TrimSpace(body),
	}

	if in.Title == "" {
		in.Errors = append(in.Errors, "Title is required.")
	}
	if in.Body == "" {
		in.Errors = append(in.Errors, "Body is required.")
	}
	if utf8.RuneCountInString(in.Title) > maxTitleLen {
		in.Errors = append(in.Errors, "Title must be 200 characters or fewer.")
	}

	return in
}
