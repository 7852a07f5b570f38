package services

import (
	"context"

	"github.com/sqlchat-io/sqlchat-engine/pkg/adapters/datasource"
	"github.com/sqlchat-io/sqlchat-engine/pkg/models"
)

// fakeExecutor is an in-memory datasource.QueryExecutor.
type fakeExecutor struct {
	result   *datasource.ResultSet
	err      error
	closed   bool
	queries  []string
	argCalls [][]any
}

func (f *fakeExecutor) ExecuteQuery(_ context.Context, sqlQuery string, args ...any) (*datasource.ResultSet, error) {
	f.queries = append(f.queries, sqlQuery)
	f.argCalls = append(f.argCalls, args)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeExecutor) Close() error {
	f.closed = true
	return nil
}

// fakeConnect returns a connect function handing out the executor and
// counting invocations.
func fakeConnect(executor *fakeExecutor, calls *int) datasource.ConnectFunc {
	return func(context.Context, models.ConnectionDescriptor) (datasource.QueryExecutor, error) {
		*calls++
		return executor, nil
	}
}

// fakeQueryService records the executed request and returns canned data.
type fakeQueryService struct {
	result *datasource.ResultSet
	err    error
	reqs   []models.QueryRequest
}

func (f *fakeQueryService) Execute(_ context.Context, req models.QueryRequest) (string, *datasource.ResultSet, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return "", nil, f.err
	}
	return req.Query, f.result, nil
}
