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

type JobController struct {
	service service.JobService
}

func CreateJobController(e *echo.Group, service service.JobService, authn echo.MiddlewareFunc) {
	jc := JobController{
		service: service,
	}
	staffOnly := appmiddleware.RequireRoles(domain.RoleHR, domain.RoleAdmin)

	e.GET("/jobs", jc.GetAllJobs, authn, staffOnly)
	e.GET("/jobs/active", jc.GetActiveJobs)
	e.GET("/jobs/status/:status", jc.GetJobsByStatus, authn, staffOnly)
	e.GET("/jobs/:id", jc.GetJob, authn, staffOnly)
	e.POST("/jobs", jc.CreateJob, authn)
	e.PUT("/jobs/:id", jc.UpdateJob, authn)
	e.PUT("/jobs/:id/publish", jc.PublishJob, authn)
	e.DELETE("/jobs/:id", jc.DeleteJob, authn)
}

func (c *JobController) CreateJob(e echo.Context) error {
	payload := dto.JobRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "CreateJob").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.CreateJob(e.Request().Context(), payload, appmiddleware.CallerID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *JobController) PublishJob(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	err = c.service.PublishJob(e.Request().Context(), id, appmiddleware.CallerID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *JobController) UpdateJob(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload := dto.JobRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateJob").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.ID = id
	err = c.service.UpdateJob(e.Request().Context(), payload, appmiddleware.CallerID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *JobController) DeleteJob(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	err = c.service.DeleteJob(e.Request().Context(), id, appmiddleware.CallerID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *JobController) GetJob(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.GetJob(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *JobController) GetAllJobs(e echo.Context) error {
	resp, err := c.service.GetAllJobs(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *JobController) GetActiveJobs(e echo.Context) error {
	resp, err := c.service.GetActiveJobs(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *JobController) GetJobsByStatus(e echo.Context) error {
	resp, err := c.service.GetJobsByStatus(e.Request().Context(), e.Param("status"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
