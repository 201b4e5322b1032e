package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/sriteja123gujjari/RentalManagement/internal/auth"
	"github.com/sriteja123gujjari/RentalManagement/internal/middleware"
	"github.com/sriteja123gujjari/RentalManagement/internal/models"
	api "github.com/sriteja123gujjari/RentalManagement/pkg/api"
	"github.com/sriteja123gujjari/RentalManagement/pkg/api/apiconnect"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	apiconnect.UnimplementedAuthServiceHandler
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Login authenticates an owner and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	s.logger.Info("Login request", "owner", req.Msg.Owner)

	if req.Msg.Owner == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	owner := models.Owner(req.Msg.Owner)
	if err := s.authenticator.Authenticate(ctx, owner, req.Msg.Password); err != nil {
		s.logger.Warn("Login failed", "owner", owner, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, expiresAt, err := s.jwtManager.Generate(owner)
	if err != nil {
		s.logger.Error("Failed to generate token", "owner", owner, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Owner logged in successfully", "owner", owner)
	return connect.NewResponse(&api.LoginResponse{
		Owner:     string(owner),
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}), nil
}

// GetCurrentOwner returns the owner of the request's token.
func (s *AuthService) GetCurrentOwner(ctx context.Context, req *connect.Request[api.GetCurrentOwnerRequest]) (*connect.Response[api.GetCurrentOwnerResponse], error) {
	owner := middleware.GetOwner(ctx)
	if owner == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	s.logger.Info("GetCurrentOwner request", "owner", owner)
	return connect.NewResponse(&api.GetCurrentOwnerResponse{Owner: string(owner)}), nil
}
