package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	api "github.com/sriteja123gujjari/RentalManagement/pkg/api"
)

// AuthServiceName is the fully-qualified name of the AuthService service.
const AuthServiceName = "rental.v1.AuthService"

// Procedure names, the HTTP paths the methods are served on.
const (
	AuthServiceLoginProcedure           = "/rental.v1.AuthService/Login"
	AuthServiceGetCurrentOwnerProcedure = "/rental.v1.AuthService/GetCurrentOwner"
)

// AuthServiceClient is a client for the rental.v1.AuthService service.
type AuthServiceClient interface {
	// Login exchanges an owner's password for a token.
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetCurrentOwner(context.Context, *connect.Request[api.GetCurrentOwnerRequest]) (*connect.Response[api.GetCurrentOwnerResponse], error)
}

// NewAuthServiceClient constructs a client for the rental.v1.AuthService service. baseURL is
// the server's root, e.g. http://localhost:8080. The JSON codec is applied
// before opts.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &authServiceClient{
		login: connect.NewClient[api.LoginRequest, api.LoginResponse](
			httpClient,
			baseURL+AuthServiceLoginProcedure,
			opts...,
		),
		getCurrentOwner: connect.NewClient[api.GetCurrentOwnerRequest, api.GetCurrentOwnerResponse](
			httpClient,
			baseURL+AuthServiceGetCurrentOwnerProcedure,
			opts...,
		),
	}
}

type authServiceClient struct {
	login           *connect.Client[api.LoginRequest, api.LoginResponse]
	getCurrentOwner *connect.Client[api.GetCurrentOwnerRequest, api.GetCurrentOwnerResponse]
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) GetCurrentOwner(ctx context.Context, req *connect.Request[api.GetCurrentOwnerRequest]) (*connect.Response[api.GetCurrentOwnerResponse], error) {
	return c.getCurrentOwner.CallUnary(ctx, req)
}

// AuthServiceHandler is implemented by servers of the rental.v1.AuthService service.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetCurrentOwner(context.Context, *connect.Request[api.GetCurrentOwnerRequest]) (*connect.Response[api.GetCurrentOwnerResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	loginHandler := connect.NewUnaryHandler(
		AuthServiceLoginProcedure,
		svc.Login,
		opts...,
	)
	getCurrentOwnerHandler := connect.NewUnaryHandler(
		AuthServiceGetCurrentOwnerProcedure,
		svc.GetCurrentOwner,
		opts...,
	)
	return "/rental.v1.AuthService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AuthServiceLoginProcedure:
			loginHandler.ServeHTTP(w, r)
		case AuthServiceGetCurrentOwnerProcedure:
			getCurrentOwnerHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedAuthServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAuthServiceHandler struct{}

func (UnimplementedAuthServiceHandler) Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("rental.v1.AuthService.Login is not implemented"))
}

func (UnimplementedAuthServiceHandler) GetCurrentOwner(context.Context, *connect.Request[api.GetCurrentOwnerRequest]) (*connect.Response[api.GetCurrentOwnerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("rental.v1.AuthService.GetCurrentOwner is not implemented"))
}
