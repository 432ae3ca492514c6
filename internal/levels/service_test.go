package levels

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "dotback/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	store     *MemoryStore
	uploadDir string
	service   *Service
}

func (s *ServiceSuite) SetupTest() {
	s.store = NewMemory()
	s.uploadDir = s.T().TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewService(s.store, s.uploadDir, logger)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func validPayload(number int) *ConfigPayload {
	return &ConfigPayload{
		Number:          number,
		BackgroundColor: "#101010",
		Dot1Color:       "#ff0000",
		Dot2Color:       "#00ff00",
		Dot3Color:       "#0000ff",
		Dot4Color:       "#ffff00",
		Dot5Color:       "#ff00ff",
	}
}

func (s *ServiceSuite) writeLogo(name string) string {
	path := filepath.Join(s.uploadDir, name)
	s.Require().NoError(os.WriteFile(path, []byte("png"), 0o644))
	return "/uploads/" + name
}

func (s *ServiceSuite) TestCreateAndList() {
	_, err := s.service.Create(context.Background(), validPayload(2))
	s.Require().NoError(err)
	_, err = s.service.Create(context.Background(), validPayload(1))
	s.Require().NoError(err)

	out, err := s.service.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(out, 2)
	s.Equal(1, out[0].Number)
	s.Equal(2, out[1].Number)
}

func (s *ServiceSuite) TestCreateValidation() {
	_, err := s.service.Create(context.Background(), validPayload(0))
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = s.service.Create(context.Background(), validPayload(11))
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	payload := validPayload(3)
	payload.Dot4Color = ""
	_, err = s.service.Create(context.Background(), payload)
	s.Require().Error(err)
	s.Equal("Field dot4Color is required.", err.Error())
}

func (s *ServiceSuite) TestCreateDuplicate() {
	_, err := s.service.Create(context.Background(), validPayload(5))
	s.Require().NoError(err)

	_, err = s.service.Create(context.Background(), validPayload(5))
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *ServiceSuite) TestGetMissing() {
	_, err := s.service.Get(context.Background(), 7)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestUpdateReplacesFieldsAndCleansLogo() {
	logoURL := s.writeLogo("old-logo.png")

	payload := validPayload(4)
	payload.LogoURL = logoURL
	_, err := s.service.Create(context.Background(), payload)
	s.Require().NoError(err)

	update := validPayload(4)
	update.BackgroundColor = "#ffffff"
	update.LogoURL = ""

	updated, err := s.service.Update(context.Background(), 4, update)
	s.Require().NoError(err)
	s.Equal("#ffffff", updated.BackgroundColor)
	s.Empty(updated.LogoURL)

	_, statErr := os.Stat(filepath.Join(s.uploadDir, "old-logo.png"))
	s.True(os.IsNotExist(statErr))
}

func (s *ServiceSuite) TestUpdateKeepsUnchangedLogo() {
	logoURL := s.writeLogo("kept-logo.png")

	payload := validPayload(4)
	payload.LogoURL = logoURL
	_, err := s.service.Create(context.Background(), payload)
	s.Require().NoError(err)

	update := validPayload(4)
	update.LogoURL = logoURL
	_, err = s.service.Update(context.Background(), 4, update)
	s.Require().NoError(err)

	_, statErr := os.Stat(filepath.Join(s.uploadDir, "kept-logo.png"))
	s.NoError(statErr)
}

func (s *ServiceSuite) TestUpdateMissingLevel() {
	_, err := s.service.Update(context.Background(), 9, validPayload(9))
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestUpdateValidatesColors() {
	_, err := s.service.Create(context.Background(), validPayload(6))
	s.Require().NoError(err)

	update := validPayload(6)
	update.BackgroundColor = ""
	_, err = s.service.Update(context.Background(), 6, update)
	s.Require().Error(err)
	s.Equal("Field backgroundColor is required.", err.Error())
}

func (s *ServiceSuite) TestDeleteRemovesLogoFile() {
	logoURL := s.writeLogo("doomed-logo.png")

	payload := validPayload(8)
	payload.LogoURL = logoURL
	_, err := s.service.Create(context.Background(), payload)
	s.Require().NoError(err)

	deleted, err := s.service.Delete(context.Background(), 8)
	s.Require().NoError(err)
	s.Equal(8, deleted.Number)

	_, statErr := os.Stat(filepath.Join(s.uploadDir, "doomed-logo.png"))
	s.True(os.IsNotExist(statErr))

	_, err = s.service.Get(context.Background(), 8)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestDeleteMissingLevel() {
	_, err := s.service.Delete(context.Background(), 10)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestDeleteLeavesExternalLogoAlone() {
	payload := validPayload(2)
	payload.LogoURL = "https://cdn.example.com/logo.png"
	_, err := s.service.Create(context.Background(), payload)
	s.Require().NoError(err)

	_, err = s.service.Delete(context.Background(), 2)
	s.Require().NoError(err)
}
