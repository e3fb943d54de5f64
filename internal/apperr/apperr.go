package apperr

import "errors"

// Kind is the closed set of failure categories the HTTP boundary knows how
// to translate. Anything outside the set is treated as an internal error.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindNotFound
	KindUnauthorized
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Invalid marks a client input error (missing field, bad identifier, bad enum value).
func Invalid(msg string) error {
	return &Error{Kind: KindInvalid, Msg: msg}
}

// NotFound marks a missing resource.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Unauthorized marks a failed authentication. The message must not reveal
// whether the email or the password was wrong.
func Unauthorized(msg string) error {
	return &Error{Kind: KindUnauthorized, Msg: msg}
}

// KindOf extracts the category of err, KindInternal if it carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
