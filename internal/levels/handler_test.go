package levels

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
)

type HandlerSuite struct {
	suite.Suite
	router *chi.Mux
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewService(NewMemory(), s.T().TempDir(), logger)
	s.router = chi.NewRouter()
	NewHandler(service, logger).Register(s.router)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}
	r := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, r)
	return rec
}

func (s *HandlerSuite) TestListEmpty() {
	rec := s.do(http.MethodGet, "/levels", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"levels":[]}`, rec.Body.String())
}

func (s *HandlerSuite) TestCreateThenGet() {
	rec := s.do(http.MethodPost, "/levels", validPayload(3))
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created LevelResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Equal(3, created.Level.Number)

	rec = s.do(http.MethodGet, "/levels/3", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerSuite) TestCreateDuplicateConflict() {
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/levels", validPayload(3)).Code)
	s.Equal(http.StatusConflict, s.do(http.MethodPost, "/levels", validPayload(3)).Code)
}

func (s *HandlerSuite) TestInvalidLevelParam() {
	for _, path := range []string{"/levels/abc", "/levels/0", "/levels/11"} {
		rec := s.do(http.MethodGet, path, nil)
		s.Equal(http.StatusBadRequest, rec.Code, path)
		s.JSONEq(`{"message":"Invalid level."}`, rec.Body.String())
	}
}

func (s *HandlerSuite) TestGetMissing() {
	rec := s.do(http.MethodGet, "/levels/4", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"message":"Level not found."}`, rec.Body.String())
}

func (s *HandlerSuite) TestUpdateMissingField() {
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/levels", validPayload(5)).Code)

	payload := validPayload(5)
	payload.Dot2Color = ""
	rec := s.do(http.MethodPut, "/levels/5", payload)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"message":"Field dot2Color is required."}`, rec.Body.String())
}

func (s *HandlerSuite) TestUpdateAndDelete() {
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/levels", validPayload(5)).Code)

	payload := validPayload(5)
	payload.BackgroundColor = "#222222"
	rec := s.do(http.MethodPut, "/levels/5", payload)
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated LevelResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Equal("#222222", updated.Level.BackgroundColor)

	rec = s.do(http.MethodDelete, "/levels/5", nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/levels/5", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerSuite) TestCreateInvalidJSON() {
	r := httptest.NewRequest(http.MethodPost, "/levels", bytes.NewReader([]byte("{oops")))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, r)
	s.Equal(http.StatusBadRequest, rec.Code)
}
