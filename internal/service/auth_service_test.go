package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/sriteja123gujjari/RentalManagement/internal/auth"
	"github.com/sriteja123gujjari/RentalManagement/internal/middleware"
	"github.com/sriteja123gujjari/RentalManagement/internal/storage/memory"
	api "github.com/sriteja123gujjari/RentalManagement/pkg/api"
	"github.com/sriteja123gujjari/RentalManagement/pkg/api/apiconnect"
)

// setupAuthTestServer wires both services with the real JWT interceptors.
func setupAuthTestServer(t *testing.T) (apiconnect.AuthServiceClient, apiconnect.RentalServiceClient) {
	t.Helper()

	store := memory.New()
	authenticator := auth.NewPasswordAuthenticator(store, testOwners).WithCost(bcrypt.MinCost)
	if err := authenticator.SetCredential(context.Background(), "B", "correct-horse"); err != nil {
		t.Fatalf("SetCredential failed: %v", err)
	}
	jwtManager := auth.NewJWTManager("test-secret-key-that-is-long-enough", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authSvc := NewAuthService(authenticator, jwtManager, logger)
	rentalSvc := NewRentalService(store, testOwners, "INR", nil, nil)

	authPath, authHandler := apiconnect.NewAuthServiceHandler(authSvc,
		connect.WithInterceptors(middleware.OptionalAuth(jwtManager)))
	rentalPath, rentalHandler := apiconnect.NewRentalServiceHandler(rentalSvc,
		connect.WithInterceptors(middleware.RequireAuth(jwtManager, testOwners)))

	mux := http.NewServeMux()
	mux.Handle(authPath, authHandler)
	mux.Handle(rentalPath, rentalHandler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		apiconnect.NewRentalServiceClient(http.DefaultClient, server.URL)
}

func TestLogin(t *testing.T) {
	authClient, _ := setupAuthTestServer(t)
	ctx := context.Background()

	resp, err := authClient.Login(ctx, connect.NewRequest(&api.LoginRequest{Owner: "B", Password: "correct-horse"}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Msg.Token == "" || resp.Msg.Owner != "B" {
		t.Errorf("unexpected login response %+v", resp.Msg)
	}
	if resp.Msg.ExpiresAt <= time.Now().Unix() {
		t.Error("expected token expiry in the future")
	}

	tests := []struct {
		name string
		req  *api.LoginRequest
		code connect.Code
	}{
		{"wrong password", &api.LoginRequest{Owner: "B", Password: "nope-nope"}, connect.CodeUnauthenticated},
		{"no credential set", &api.LoginRequest{Owner: "A", Password: "correct-horse"}, connect.CodeUnauthenticated},
		{"not an owner", &api.LoginRequest{Owner: "Z", Password: "correct-horse"}, connect.CodeUnauthenticated},
		{"missing password", &api.LoginRequest{Owner: "B"}, connect.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authClient.Login(ctx, connect.NewRequest(tt.req))
			requireCode(t, err, tt.code)
		})
	}
}

func TestAuthenticatedCalls(t *testing.T) {
	authClient, rentalClient := setupAuthTestServer(t)
	ctx := context.Background()

	_, err := rentalClient.ListOwners(ctx, connect.NewRequest(&api.ListOwnersRequest{}))
	requireCode(t, err, connect.CodeUnauthenticated)

	bad := connect.NewRequest(&api.ListOwnersRequest{})
	bad.Header().Set("Authorization", "Bearer not-a-token")
	_, err = rentalClient.ListOwners(ctx, bad)
	requireCode(t, err, connect.CodeUnauthenticated)

	_, err = authClient.GetCurrentOwner(ctx, connect.NewRequest(&api.GetCurrentOwnerRequest{}))
	requireCode(t, err, connect.CodeUnauthenticated)

	login, err := authClient.Login(ctx, connect.NewRequest(&api.LoginRequest{Owner: "B", Password: "correct-horse"}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	bearer := "Bearer " + login.Msg.Token

	req := connect.NewRequest(&api.ListOwnersRequest{})
	req.Header().Set("Authorization", bearer)
	if _, err := rentalClient.ListOwners(ctx, req); err != nil {
		t.Fatalf("ListOwners with token failed: %v", err)
	}

	me := connect.NewRequest(&api.GetCurrentOwnerRequest{})
	me.Header().Set("Authorization", bearer)
	resp, err := authClient.GetCurrentOwner(ctx, me)
	if err != nil {
		t.Fatalf("GetCurrentOwner failed: %v", err)
	}
	if resp.Msg.Owner != "B" {
		t.Errorf("Owner = %q, want B", resp.Msg.Owner)
	}
}
