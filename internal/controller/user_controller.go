package controller

import (
	"strconv"

	"github.com/jobmanagement/job-service/internal/domain"
	"github.com/jobmanagement/job-service/internal/dto"
	appmiddleware "github.com/jobmanagement/job-service/internal/middleware"
	"github.com/jobmanagement/job-service/internal/service"
	pkgdto "github.com/jobmanagement/job-service/pkg/dto"
	"github.com/jobmanagement/job-service/pkg/errs"
	"github.com/jobmanagement/job-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService, authn echo.MiddlewareFunc) {
	uc := UserController{
		service: service,
	}
	e.POST("/users/register", uc.Register)
	e.POST("/users/login", uc.Login)
	e.GET("/users", uc.GetUsers, authn, appmiddleware.RequireRoles(domain.RoleAdmin))
	e.GET("/users/:id", uc.GetUser, authn)
	e.PUT("/users/:id", uc.UpdateUser, authn)
	e.DELETE("/users/:id", uc.DeleteUser, authn, appmiddleware.RequireRoles(domain.RoleAdmin))
}

func (c *UserController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp.Message, resp)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) GetUser(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	// Profiles are visible to staff and to the owner.
	callerRole := appmiddleware.CallerRole(e)
	if !callerRole.CanManageJobs() && appmiddleware.CallerID(e) != id {
		return response.WriteErrorResponse(e, errs.ErrForbidden, nil)
	}

	resp, err := c.service.GetUser(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) GetUsers(e echo.Context) error {
	payload := pkgdto.Filter{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
	}

	resp, err := c.service.GetUsers(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) UpdateUser(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if appmiddleware.CallerRole(e) != domain.RoleAdmin && appmiddleware.CallerID(e) != id {
		return response.WriteErrorResponse(e, errs.ErrForbidden, nil)
	}

	payload := dto.UpdateUserRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUser").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.ID = id
	err = c.service.UpdateUser(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *UserController) DeleteUser(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	err = c.service.DeleteUser(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
