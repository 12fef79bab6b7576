package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jobmanagement/job-service/config"
	"github.com/jobmanagement/job-service/internal/domain"
	"github.com/jobmanagement/job-service/internal/dto"
	"github.com/jobmanagement/job-service/internal/infrastructure/verification"
	"github.com/jobmanagement/job-service/internal/repository"
	pkgdto "github.com/jobmanagement/job-service/pkg/dto"
	"github.com/jobmanagement/job-service/pkg/errs"
	"github.com/jobmanagement/job-service/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/gomail.v2"
)

// PersonalNumberVerifier checks a personal number against the civil registry.
type PersonalNumberVerifier interface {
	Verify(ctx context.Context, personalNumber string) (verification.PersonalNumberResult, error)
}

// PhoneValidator checks a phone number against the phone validation collaborator.
type PhoneValidator interface {
	Validate(ctx context.Context, phoneNumber string) (verification.PhoneResult, error)
}

type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (resp dto.RegistrationResponse, err error)
	Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error)
	GetUser(ctx context.Context, id int64) (resp dto.UserResponse, err error)
	GetUsers(ctx context.Context, filter pkgdto.Filter) (resp pkgdto.PaginationResponse, err error)
	UpdateUser(ctx context.Context, req dto.UpdateUserRequest) (err error)
	DeleteUser(ctx context.Context, id int64) (err error)
}

type UserServiceImpl struct {
	repo                   repository.UserRepository
	config                 config.Config
	personalNumberVerifier PersonalNumberVerifier
	phoneValidator         PhoneValidator
}

func CreateNewUserService(repo repository.UserRepository, config config.Config, personalNumberVerifier PersonalNumberVerifier, phoneValidator PhoneValidator) UserService {
	return &UserServiceImpl{
		repo:                   repo,
		config:                 config,
		personalNumberVerifier: personalNumberVerifier,
		phoneValidator:         phoneValidator,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (resp dto.RegistrationResponse, err error) {
	role := domain.Role(req.Role)
	if req.Email == "" || req.Password == "" || !role.Valid() {
		return resp, errs.ErrClient
	}

	existing, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return
	}
	if existing.ID != 0 {
		return resp, errs.ErrEmailAlreadyUsed
	}

	personalNumberTaken, err := s.repo.PersonalNumberExists(ctx, req.PersonalNumber)
	if err != nil {
		return
	}
	if personalNumberTaken {
		return resp, errs.ErrPersonalNumberAlreadyUsed
	}

	phoneTaken, err := s.repo.PhoneNumberExists(ctx, req.PhoneNumber)
	if err != nil {
		return
	}
	if phoneTaken {
		return resp, errs.ErrPhoneNumberAlreadyUsed
	}

	user := domain.User{
		ExternalID:     ulid.Make().String(),
		PersonalNumber: req.PersonalNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Role:           role,
	}

	if s.personalNumberVerifier != nil {
		result, verifyErr := s.personalNumberVerifier.Verify(ctx, req.PersonalNumber)
		if verifyErr != nil {
			return resp, verifyErr
		}
		if !result.Valid {
			return resp, errs.ErrVerificationRejected
		}
		verifiedAt := time.Now().UnixMilli()
		user.PersonalNumberVerified = true
		user.PersonalNumberVerifiedAt = &verifiedAt
	}

	if s.phoneValidator != nil {
		result, validateErr := s.phoneValidator.Validate(ctx, req.PhoneNumber)
		if validateErr != nil {
			return resp, validateErr
		}
		if !result.Valid {
			return resp, errs.ErrVerificationRejected
		}
		resp.PhoneNumberVerified = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
		return resp, errs.ErrInternalServer
	}
	user.HashedPassword = string(hash)

	id, err := s.repo.AddUser(ctx, user)
	if err != nil {
		return resp, err
	}

	s.sendRegistrationEmail(user)

	resp.UserID = id
	resp.Message = "User created successfully"

	return resp, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return
	}

	// Fail closed without revealing whether the account exists.
	if user.ID == 0 {
		return resp, errs.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password))
	if err != nil {
		log.Warn().Str("component", "Login").Str("email", req.Email).Msg("failed login attempt")
		return resp, errs.ErrInvalidCredentials
	}

	token, err := utils.CreateJWTToken(user.ID, user.Email, string(user.Role), s.config.JWTConfig)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInternalServer
	}

	resp.Token = token
	resp.UserID = user.ID
	resp.Email = user.Email
	resp.FirstName = user.FirstName
	resp.LastName = user.LastName
	resp.Role = string(user.Role)

	return
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id int64) (resp dto.UserResponse, err error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return
	}
	if user.ID == 0 {
		return resp, errs.ErrUserNotFound
	}

	return convertUserToResponse(user), nil
}

func (s *UserServiceImpl) GetUsers(ctx context.Context, filter pkgdto.Filter) (resp pkgdto.PaginationResponse, err error) {
	users, err := s.repo.GetUsers(ctx, filter)
	if err != nil {
		return
	}

	count, err := s.repo.CountUsers(ctx, filter)
	if err != nil {
		return
	}

	records := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		records = append(records, convertUserToResponse(user))
	}

	resp.Metadata = pkgdto.PaginationMetadata{
		TotalCount: count,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	resp.Records = records

	return
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, req dto.UpdateUserRequest) (err error) {
	user, err := s.repo.GetUserByID(ctx, req.ID)
	if err != nil {
		return
	}
	if user.ID == 0 {
		return errs.ErrUserNotFound
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.PhoneNumber != "" && req.PhoneNumber != user.PhoneNumber {
		phoneTaken, existsErr := s.repo.PhoneNumberExists(ctx, req.PhoneNumber)
		if existsErr != nil {
			return existsErr
		}
		if phoneTaken {
			return errs.ErrPhoneNumberAlreadyUsed
		}
		user.PhoneNumber = req.PhoneNumber
	}

	return s.repo.UpdateUser(ctx, user)
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id int64) (err error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return
	}
	if user.ID == 0 {
		return errs.ErrUserNotFound
	}

	return s.repo.SoftDeleteUser(ctx, id)
}

// sendRegistrationEmail is best effort; registration never fails on SMTP trouble.
func (s *UserServiceImpl) sendRegistrationEmail(user domain.User) {
	if s.config.SMTPConfig.Host == "" {
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.config.SMTPConfig.Sender)
	message.SetHeader("To", user.Email)
	message.SetHeader("Subject", "Welcome to the job board")
	message.SetBody("text/plain", fmt.Sprintf("Hi %s, your account has been created.", user.FirstName))

	if err := utils.SendEmail(message, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Host, s.config.SMTPConfig.Port); err != nil {
		log.Error().Err(err).Str("component", "sendRegistrationEmail").Msg("")
	}
}

func convertUserToResponse(user domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                     user.ID,
		ExternalID:             user.ExternalID,
		PersonalNumber:         user.PersonalNumber,
		FirstName:              user.FirstName,
		LastName:               user.LastName,
		Email:                  user.Email,
		PhoneNumber:            user.PhoneNumber,
		Role:                   string(user.Role),
		PersonalNumberVerified: user.PersonalNumberVerified,
		EmailVerified:          user.EmailVerified,
		CreatedAt:              user.CreatedAt,
	}
}
