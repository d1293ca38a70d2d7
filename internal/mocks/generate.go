// Package mocks provides gomock implementations of the gateway ports.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	store := mocks.NewMockSessionStore(ctrl)
//	store.EXPECT().Get(gomock.Any(), "sess-1").Return(domainauth.Session{}, domainauth.ErrSessionNotFound)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=credential_directory_mock.go github.com/emomoto/auto-recruiter/internal/ports CredentialDirectory
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=password_hasher_mock.go github.com/emomoto/auto-recruiter/internal/ports PasswordHasher
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/emomoto/auto-recruiter/internal/ports SessionStore
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_signer_mock.go github.com/emomoto/auto-recruiter/internal/ports SessionSigner
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=settings_store_mock.go github.com/emomoto/auto-recruiter/internal/ports SettingsStore
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=activity_broadcaster_mock.go github.com/emomoto/auto-recruiter/internal/ports ActivityBroadcaster
