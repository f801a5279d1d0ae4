package controller

import (
	"errors"
	"net/http"

	"mlcourse_backend/internal/service"
	"mlcourse_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
}

func NewCertificateController(certService *service.CertificateService) *CertificateController {
	return &CertificateController{CertificateService: certService}
}

// Download godoc
// @Summary Download the completion certificate
// @Description Renders the learner's certificate as a PDF. Requires 100% course progress.
// @Tags certificate
// @Produce  application/pdf
// @Security ApiKeyAuth
// @Success 200 {file} file "certificate.pdf"
// @Failure 403 {object} util.Response "Course not completed"
// @Failure 404 {object} util.Response "Unknown user"
// @Failure 500 {object} util.Response "Internal error"
// @Router /certificate [get]
func (c *CertificateController) Download(ctx *gin.Context) {
	pdf, err := c.CertificateService.Generate(ctx.Request.Context(), util.GetUserID(ctx))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNotEligible):
			util.Fail(ctx, http.StatusForbidden, "Please complete all tests in the Quiz section to get your certificate.")
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found!")
		default:
			util.InternalError(ctx, "Unable to generate the certificate", err)
		}
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="certificate.pdf"`)
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}

// UploadTemplate godoc
// @Summary Replace the certificate background image
// @Tags certificate
// @Accept  mpfd
// @Produce  json
// @Security ApiKeyAuth
// @Param   template formData file true "Background image (PNG)"
// @Success 201 {object} util.Response{data=string} "URL of the stored template"
// @Failure 400 {object} util.Response "Missing file"
// @Failure 500 {object} util.Response "Internal error"
// @Router /certificate/template [post]
func (c *CertificateController) UploadTemplate(ctx *gin.Context) {
	file, err := ctx.FormFile("template")
	if err != nil {
		util.BadRequest(ctx, "Please attach the template file.")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.InternalError(ctx, "Unable to read the template file", err)
		return
	}
	defer src.Close()

	url, err := c.CertificateService.UploadTemplate(ctx.Request.Context(), src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		util.InternalError(ctx, "Unable to store the certificate template", err)
		return
	}

	util.Created(ctx, "Certificate template uploaded.", url)
}

// GetTemplate godoc
// @Summary Get the certificate template location
// @Tags certificate
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=string} "URL of the stored template"
// @Failure 404 {object} util.Response "No template configured"
// @Router /certificate/template [get]
func (c *CertificateController) GetTemplate(ctx *gin.Context) {
	url := c.CertificateService.TemplateURL()
	if url == "" {
		util.NotFound(ctx, "Certificate template not configured")
		return
	}

	util.Success(ctx, "Successfully retrieved the certificate template", url)
}

// DeleteTemplate godoc
// @Summary Delete the certificate background image
// @Tags certificate
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "Deleted"
// @Failure 500 {object} util.Response "Internal error"
// @Router /certificate/template [delete]
func (c *CertificateController) DeleteTemplate(ctx *gin.Context) {
	if err := c.CertificateService.RemoveTemplate(ctx.Request.Context()); err != nil {
		util.InternalError(ctx, "Unable to delete the certificate template", err)
		return
	}

	util.Success(ctx, "Certificate template deleted.", nil)
}
