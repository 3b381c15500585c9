// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"
	"testing"

	"ecowave/internal/domain/entity"
	"ecowave/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock wired to the test lifecycle.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(user *entity.User) (string, error) {
	args := m.Called(user)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockOAuthService is a testify mock of service.OAuthService.
type MockOAuthService struct {
	mock.Mock
}

// NewMockOAuthService creates a mock wired to the test lifecycle.
func NewMockOAuthService(t *testing.T) *MockOAuthService {
	m := &MockOAuthService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOAuthService) BuildAuthorizationURL(state string) string {
	args := m.Called(state)

	return args.String(0)
}

func (m *MockOAuthService) GenerateState() string {
	args := m.Called()

	return args.String(0)
}

func (m *MockOAuthService) ValidateState(state string) bool {
	args := m.Called(state)

	return args.Bool(0)
}

func (m *MockOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)

	return args.String(0), args.Error(1)
}

func (m *MockOAuthService) GetUserInfo(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	args := m.Called(ctx, accessToken)
	if oauthUser, ok := args.Get(0).(*service.OAuthUser); ok {
		return oauthUser, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOAuthService) GetProvider() entity.ProviderType {
	args := m.Called()

	return args.Get(0).(entity.ProviderType)
}

// MockMailService is a testify mock of service.MailService.
type MockMailService struct {
	mock.Mock
}

// NewMockMailService creates a mock wired to the test lifecycle.
func NewMockMailService(t *testing.T) *MockMailService {
	m := &MockMailService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMailService) SendInquiryNotice(ctx context.Context, inquiry *entity.Inquiry) bool {
	args := m.Called(ctx, inquiry)

	return args.Bool(0)
}
