package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"mlcourse_backend/internal/config"
	"mlcourse_backend/internal/repository"
	"mlcourse_backend/internal/util"
	"mlcourse_backend/pkg/logger"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// Certificate page geometry, in pixels. The name is drawn centered on
// the template background.
const (
	certWidth  = 800
	certHeight = 550
	certNameX  = 400
	certNameY  = 275
)

type CertificateService struct {
	UserRepo repository.UserRepository
	Storage  *StorageService
	Cfg      *config.Config
}

func NewCertificateService(userRepo repository.UserRepository, storage *StorageService, cfg *config.Config) *CertificateService {
	return &CertificateService{UserRepo: userRepo, Storage: storage, Cfg: cfg}
}

// Generate renders the completion certificate for a learner as a PDF.
// Only learners with full course progress are eligible.
func (s *CertificateService) Generate(ctx context.Context, userID string) ([]byte, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Progress.Total != 100 {
		return nil, util.ErrNotEligible
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: certWidth, Ht: certHeight},
	})
	pdf.AddPage()

	if tmpl := s.templateImage(ctx); tmpl != nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("certificate-template", opts, bytes.NewReader(tmpl))
		pdf.ImageOptions("certificate-template", 0, 0, certWidth, certHeight, false, opts, 0, "")
	}

	pdf.SetFont("Times", "I", 32)
	nameWidth := pdf.GetStringWidth(user.Name)
	pdf.Text(certNameX-nameWidth/2, certNameY, user.Name)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	logger.Log.Info("certificate generated", zap.String("userId", userID), zap.String("name", user.Name))
	return buf.Bytes(), nil
}

// UploadTemplate replaces the certificate background image. The file
// is stored under the configured template name, so the next Generate
// call picks it up without a restart.
func (s *CertificateService) UploadTemplate(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	name := s.Cfg.Storage.CertificateTmpl
	if name == "" {
		return "", fmt.Errorf("certificate template name is not configured")
	}

	url, err := s.Storage.Upload(ctx, name, reader, size, contentType)
	if err != nil {
		return "", err
	}

	logger.Log.Info("certificate template uploaded", zap.String("name", name))
	return url, nil
}

// RemoveTemplate deletes the stored background image. Certificates
// generated afterwards render on a plain page.
func (s *CertificateService) RemoveTemplate(ctx context.Context) error {
	name := s.Cfg.Storage.CertificateTmpl
	if name == "" {
		return fmt.Errorf("certificate template name is not configured")
	}
	return s.Storage.Delete(ctx, name)
}

// TemplateURL returns where the current background image is served
// from, or "" when no template name is configured.
func (s *CertificateService) TemplateURL() string {
	name := s.Cfg.Storage.CertificateTmpl
	if name == "" {
		return ""
	}
	return s.Storage.GetURL(name)
}

// templateImage loads the certificate background from storage. A
// missing template is not fatal; the certificate renders on a plain
// page.
func (s *CertificateService) templateImage(ctx context.Context) []byte {
	name := s.Cfg.Storage.CertificateTmpl
	if name == "" {
		return nil
	}

	reader, err := s.Storage.Fetch(ctx, name)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Warn("certificate template unavailable", zap.Error(err))
		}
		return nil
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		logger.Log.Warn("certificate template read failed", zap.Error(err))
		return nil
	}
	return data
}
