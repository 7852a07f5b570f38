package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/sqlchat-io/sqlchat-engine/pkg/adapters/datasource"
	"github.com/sqlchat-io/sqlchat-engine/pkg/audit"
	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
	"github.com/sqlchat-io/sqlchat-engine/pkg/services"
)

func testAuditor() *audit.SecurityAuditor {
	return audit.NewSecurityAuditor(zap.NewNop())
}

// mockSchemaService implements services.SchemaService for handler tests.
type mockSchemaService struct {
	schema string
	err    error
	descs  []models.ConnectionDescriptor
}

func (m *mockSchemaService) FetchSchema(_ context.Context, desc models.ConnectionDescriptor) (string, error) {
	m.descs = append(m.descs, desc)
	return m.schema, m.err
}

var _ services.SchemaService = (*mockSchemaService)(nil)

// mockQueryService implements services.QueryService for handler tests.
type mockQueryService struct {
	executed string
	result   *datasource.ResultSet
	err      error
	reqs     []models.QueryRequest
}

func (m *mockQueryService) Execute(_ context.Context, req models.QueryRequest) (string, *datasource.ResultSet, error) {
	m.reqs = append(m.reqs, req)
	if m.err != nil {
		return "", nil, m.err
	}
	return m.executed, m.result, nil
}

var _ services.QueryService = (*mockQueryService)(nil)

// mockGenerateService implements services.GenerateService for handler tests.
type mockGenerateService struct {
	result *services.GenerateResult
	err    error
	reqs   []models.QueryRequest
}

func (m *mockGenerateService) Generate(_ context.Context, req models.QueryRequest) (*services.GenerateResult, error) {
	m.reqs = append(m.reqs, req)
	return m.result, m.err
}

var _ services.GenerateService = (*mockGenerateService)(nil)
