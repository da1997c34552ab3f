package fairytest

import (
	"github.com/fadedpez/gamefairy/pkg/gateway"
	"github.com/fadedpez/gamefairy/pkg/oracle"
	"github.com/stretchr/testify/mock"
)

var (
	_ oracle.Oracle   = (*MockOracle)(nil)
	_ gateway.Gateway = (*MockGateway)(nil)
)

// MockOracle implements oracle.Oracle for testing
type MockOracle struct {
	mock.Mock
}

// NewMockOracle creates a mock oracle reporting failures to t
func NewMockOracle(t mock.TestingT) *MockOracle {
	m := &MockOracle{}
	m.Test(t)
	return m
}

func (m *MockOracle) Proclamation() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

// MockGateway implements gateway.Gateway for testing
type MockGateway struct {
	mock.Mock
}

// NewMockGateway creates a mock gateway reporting failures to t
func NewMockGateway(t mock.TestingT) *MockGateway {
	m := &MockGateway{}
	m.Test(t)
	return m
}

func (m *MockGateway) GetOracle() oracle.Oracle {
	args := m.Called()
	if o, ok := args.Get(0).(oracle.Oracle); ok {
		return o
	}
	return nil
}
