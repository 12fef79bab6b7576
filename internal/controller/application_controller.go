package controller

import (
	"strconv"

	"github.com/jobmanagement/job-service/internal/domain"
	"github.com/jobmanagement/job-service/internal/dto"
	appmiddleware "github.com/jobmanagement/job-service/internal/middleware"
	"github.com/jobmanagement/job-service/internal/service"
	"github.com/jobmanagement/job-service/pkg/errs"
	"github.com/jobmanagement/job-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ApplicationController struct {
	service service.ApplicationService
}

func CreateApplicationController(e *echo.Group, service service.ApplicationService, authn echo.MiddlewareFunc) {
	ac := ApplicationController{
		service: service,
	}
	staffOnly := appmiddleware.RequireRoles(domain.RoleHR, domain.RoleAdmin)

	e.POST("/jobapplications/submit", ac.Submit)
	e.GET("/jobapplications/job/:jobId", ac.GetByJob, authn, staffOnly)
	e.GET("/jobapplications/applicant/:applicantId", ac.GetByApplicant, authn, staffOnly)
	e.GET("/jobapplications/pending", ac.GetPending, authn, staffOnly)
	e.PUT("/jobapplications/:id/review", ac.Review, authn)
}

func (c *ApplicationController) Submit(e echo.Context) error {
	payload := dto.ApplicationSubmissionRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Submit").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.SubmitApplication(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp.Message, resp)
}

func (c *ApplicationController) Review(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload := dto.ApplicationReviewRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Review").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.ApplicationID = id
	err = c.service.ReviewApplication(e.Request().Context(), payload, appmiddleware.CallerID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *ApplicationController) GetByJob(e echo.Context) error {
	jobID, err := strconv.ParseInt(e.Param("jobId"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.GetApplicationsByJob(e.Request().Context(), jobID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ApplicationController) GetByApplicant(e echo.Context) error {
	applicantID, err := strconv.ParseInt(e.Param("applicantId"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.GetApplicationsByApplicant(e.Request().Context(), applicantID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ApplicationController) GetPending(e echo.Context) error {
	resp, err := c.service.GetPendingApplications(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
