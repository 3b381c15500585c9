// Package usecase provides testify mocks for the usecase interfaces, for use
// in delivery tests.
package usecase

import (
	"context"
	"testing"

	"ecowave/internal/domain/entity"
	"ecowave/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a testify mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock wired to the test lifecycle.
func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) BeginGoogleLogin(ctx context.Context) (*usecase.BeginLoginOutput, error) {
	args := m.Called(ctx)
	if out, ok := args.Get(0).(*usecase.BeginLoginOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) CompleteGoogleLogin(ctx context.Context, input *usecase.CompleteLoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) VerifyCredential(ctx context.Context, tokenString string) (*entity.User, error) {
	args := m.Called(ctx, tokenString)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockProductUsecase is a testify mock of usecase.ProductUsecase.
type MockProductUsecase struct {
	mock.Mock
}

// NewMockProductUsecase creates a mock wired to the test lifecycle.
func NewMockProductUsecase(t *testing.T) *MockProductUsecase {
	m := &MockProductUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductUsecase) Search(ctx context.Context, input *usecase.SearchProductsInput) ([]*entity.Product, error) {
	args := m.Called(ctx, input)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductUsecase) Get(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductUsecase) Create(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	args := m.Called(ctx, input)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductUsecase) Update(ctx context.Context, id string, actorEmail string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	args := m.Called(ctx, id, actorEmail, input)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductUsecase) Delete(ctx context.Context, id string, actorEmail string) error {
	args := m.Called(ctx, id, actorEmail)

	return args.Error(0)
}

func (m *MockProductUsecase) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error) {
	args := m.Called(ctx, sellerEmail)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockSaleUsecase is a testify mock of usecase.SaleUsecase.
type MockSaleUsecase struct {
	mock.Mock
}

// NewMockSaleUsecase creates a mock wired to the test lifecycle.
func NewMockSaleUsecase(t *testing.T) *MockSaleUsecase {
	m := &MockSaleUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSaleUsecase) MarkSold(ctx context.Context, input *usecase.MarkSoldInput) (*usecase.MarkSoldOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.MarkSoldOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockInquiryUsecase is a testify mock of usecase.InquiryUsecase.
type MockInquiryUsecase struct {
	mock.Mock
}

// NewMockInquiryUsecase creates a mock wired to the test lifecycle.
func NewMockInquiryUsecase(t *testing.T) *MockInquiryUsecase {
	m := &MockInquiryUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockInquiryUsecase) SubmitInquiry(ctx context.Context, input *usecase.SubmitInquiryInput) (*usecase.SubmitInquiryOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.SubmitInquiryOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockUserUsecase is a testify mock of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock wired to the test lifecycle.
func NewMockUserUsecase(t *testing.T) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) GetImpact(ctx context.Context, email string) (*usecase.ImpactOutput, error) {
	args := m.Called(ctx, email)
	if out, ok := args.Get(0).(*usecase.ImpactOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}
