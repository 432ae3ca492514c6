package domainerrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives: code preservation
// through wrapping, errors.Is matching by code, and the HTTP status mapping.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeNotFound, Message: "level not found"}
		s.Equal("level not found", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeNotFound}
		s.Equal("not_found", err.Error())
	})
}

func (s *DomainErrorsSuite) TestUnwrap() {
	inner := errors.New("store unreachable")
	err := &Error{Code: CodeInternal, Message: "service error", Err: inner}
	s.Equal(inner, errors.Unwrap(err))

	bare := &Error{Code: CodeNotFound}
	s.Nil(errors.Unwrap(bare))
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeUnauthorized, Message: "Invalid email or password."}
		err2 := &Error{Code: CodeUnauthorized, Message: "Unauthorized"}
		s.True(errors.Is(err1, err2))
	})

	s.Run("does not match different codes", func() {
		err1 := &Error{Code: CodeNotFound}
		err2 := &Error{Code: CodeInternal}
		s.False(errors.Is(err1, err2))
	})
}

func (s *DomainErrorsSuite) TestWrapPreservesCode() {
	inner := New(CodeConflict, "email already exists")
	wrapped := Wrap(inner, CodeInternal, "seeding failed")

	s.True(HasCode(wrapped, CodeConflict))
	s.Equal("seeding failed", wrapped.Error())
}

func (s *DomainErrorsSuite) TestHasCode() {
	err := New(CodeValidation, "email is required")
	s.True(HasCode(err, CodeValidation))
	s.False(HasCode(err, CodeUnauthorized))
	s.False(HasCode(errors.New("plain"), CodeValidation))
}

func (s *DomainErrorsSuite) TestToHTTPStatus() {
	cases := map[Code]int{
		CodeBadRequest:   http.StatusBadRequest,
		CodeValidation:   http.StatusBadRequest,
		CodeUnauthorized: http.StatusUnauthorized,
		CodeNotFound:     http.StatusNotFound,
		CodeConflict:     http.StatusConflict,
		CodeInternal:     http.StatusInternalServerError,
		Code("unknown"):  http.StatusInternalServerError,
	}
	for code, want := range cases {
		s.Equal(want, ToHTTPStatus(code))
	}
}
