// Package testutil provides shared test helpers for speechbench.
//
// It contains two groups of helpers:
//
//  1. Mock services (mock_services.go): testify mocks for every API service
//     interface, used by the handler tests.
//  2. Catalog fixtures (fixtures.go): small hand-built providers, a catalog
//     constructor that fails the test on invalid data, and a helper that
//     writes a catalog YAML file into a temp dir.
//
// # Usage
//
//	ms := testutil.NewMockServices(t)
//	ms.LeaderboardService.On("GetLeaderboard", mock.Anything, mock.Anything).
//		Return(&dto.LeaderboardResponse{}, nil)
//
//	c := testutil.NewTestCatalog(t, testutil.TestProvider("alpha", catalog.ModalityTTS))
//	path := testutil.WriteCatalogFile(t, c)
package testutil
