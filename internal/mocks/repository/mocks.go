// Package repository provides testify mocks for the domain repository
// interfaces, for use in usecase and delivery tests.
package repository

import (
	"context"
	"testing"

	"ecowave/internal/domain/entity"
	"ecowave/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock wired to the test lifecycle.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	args := m.Called(ctx, user)
	if stored, ok := args.Get(0).(*entity.User); ok {
		return stored, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) IncrementImpact(ctx context.Context, email string, impact entity.EcoImpact, asSeller bool) (bool, error) {
	args := m.Called(ctx, email, impact, asSeller)

	return args.Bool(0), args.Error(1)
}

// MockProductRepository is a testify mock of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a mock wired to the test lifecycle.
func NewMockProductRepository(t *testing.T) *MockProductRepository {
	m := &MockProductRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, filter)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) FindBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error) {
	args := m.Called(ctx, sellerEmail)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockProductRepository) MarkSold(ctx context.Context, id string, buyerEmail string) (bool, error) {
	args := m.Called(ctx, id, buyerEmail)

	return args.Bool(0), args.Error(1)
}

// MockInquiryRepository is a testify mock of repository.InquiryRepository.
type MockInquiryRepository struct {
	mock.Mock
}

// NewMockInquiryRepository creates a mock wired to the test lifecycle.
func NewMockInquiryRepository(t *testing.T) *MockInquiryRepository {
	m := &MockInquiryRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockInquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	args := m.Called(ctx, inquiry)

	return args.Error(0)
}

// StubRepositoryFactory hands out fixed repositories, letting a stub
// transaction manager reuse the same mocks inside and outside Execute.
type StubRepositoryFactory struct {
	Users     repository.UserRepository
	Products  repository.ProductRepository
	Inquiries repository.InquiryRepository
}

func (f *StubRepositoryFactory) UserRepo() repository.UserRepository {
	return f.Users
}

func (f *StubRepositoryFactory) ProductRepo() repository.ProductRepository {
	return f.Products
}

func (f *StubRepositoryFactory) InquiryRepo() repository.InquiryRepository {
	return f.Inquiries
}

// StubTransactionManager runs the unit of work immediately against the given
// factory, without any real transaction semantics.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (s *StubTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(s.Factory)
}
