// Package mocks provides mock implementations for testing the service layer.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// our port interfaces. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockAPI := mocks.NewMockClient(ctrl)
//	mockAPI.EXPECT().Login(gomock.Any(), gomock.Any()).Return(resp, nil)
package mocks

// Generate mock for the Client interface from internal/ports.
// This creates MockClient with methods for all Client interface methods.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=api_client_mock.go github.com/linkly/linkly-ui/internal/ports Client
