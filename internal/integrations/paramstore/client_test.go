package paramstore

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/require"

	"studio-site/internal/usecase"
)

// fakeAPI is a simple fake implementing ssmAPI for tests.
type fakeAPI struct {
	getOut  *ssm.GetParameterOutput
	getErr  error
	putErr  error
	lastGet *ssm.GetParameterInput
	lastPut *ssm.PutParameterInput
}

func (f *fakeAPI) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.lastGet = in
	return f.getOut, f.getErr
}

func (f *fakeAPI) PutParameter(_ context.Context, in *ssm.PutParameterInput, _ ...func(*ssm.Options)) (*ssm.PutParameterOutput, error) {
	f.lastPut = in
	return &ssm.PutParameterOutput{}, f.putErr
}

func strPtr(s string) *string { return &s }

func TestGetParameter_HappyPath(t *testing.T) {
	api := &fakeAPI{getOut: &ssm.GetParameterOutput{Parameter: &types.Parameter{
		Name: strPtr("p"), Value: strPtr(`{"token":"v"}`),
	}}}
	client, err := New(api)
	require.NoError(t, err)
	v, err := client.GetParameter(context.Background(), "p")
	require.NoError(t, err)
	require.Equal(t, `{"token":"v"}`, v)
	require.True(t, *api.lastGet.WithDecryption)
}

func TestGetParameter_MissingValue(t *testing.T) {
	api := &fakeAPI{getOut: &ssm.GetParameterOutput{Parameter: &types.Parameter{Name: strPtr("p"), Value: nil}}}
	client, err := New(api)
	require.NoError(t, err)
	_, err = client.GetParameter(context.Background(), "p")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing value")
}

func TestGetParameter_ApiError(t *testing.T) {
	api := &fakeAPI{getErr: errors.New("boom")}
	client, err := New(api)
	require.NoError(t, err)
	_, err = client.GetParameter(context.Background(), "p")
	require.Error(t, err)
	require.ErrorContains(t, err, "boom")
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestGetParameter_NotFound(t *testing.T) {
	api := &fakeAPI{getErr: &types.ParameterNotFound{}}
	client, err := New(api)
	require.NoError(t, err)
	_, err = client.GetSecret(context.Background(), "/site/chat/grok/api-key")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, err, usecase.ErrSecretNotFound)
}

func TestGetSecret_OtherErrorsAreNotMissing(t *testing.T) {
	api := &fakeAPI{getErr: errors.New("ThrottlingException: rate exceeded")}
	client, err := New(api)
	require.NoError(t, err)
	_, err = client.GetSecret(context.Background(), "/site/chat/grok/api-key")
	require.Error(t, err)
	require.NotErrorIs(t, err, usecase.ErrSecretNotFound)
}

func TestGetParameter_ClientNotInitialized(t *testing.T) {
	_, err := (&Client{}).GetParameter(context.Background(), "p")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not initialized")
}

func TestGetParameter_EmptyName(t *testing.T) {
	client, err := New(&fakeAPI{})
	require.NoError(t, err)
	_, err = client.GetParameter(context.Background(), "  ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "required")
}

func TestNew_NilAPI(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must not be nil")
}

// ---------------------------------------------------------------------------
// PutParameter / secrets
// ---------------------------------------------------------------------------

func TestPutSecret_WritesSecureString(t *testing.T) {
	api := &fakeAPI{}
	client, err := New(api)
	require.NoError(t, err)

	require.NoError(t, client.PutSecret(context.Background(), " /site/chat/chatgpt/api-key ", "sk-123"))
	require.NotNil(t, api.lastPut)
	require.Equal(t, "/site/chat/chatgpt/api-key", *api.lastPut.Name)
	require.Equal(t, "sk-123", *api.lastPut.Value)
	require.Equal(t, types.ParameterTypeSecureString, api.lastPut.Type)
	require.True(t, *api.lastPut.Overwrite)
}

func TestPutParameter_Validation(t *testing.T) {
	client, err := New(&fakeAPI{})
	require.NoError(t, err)

	require.ErrorContains(t, client.PutParameter(context.Background(), "", "v"), "name is required")
	require.ErrorContains(t, client.PutParameter(context.Background(), "p", ""), "value is required")
	require.ErrorContains(t, (&Client{}).PutParameter(context.Background(), "p", "v"), "not initialized")
}

func TestPutParameter_ApiError(t *testing.T) {
	client, err := New(&fakeAPI{putErr: errors.New("throttled")})
	require.NoError(t, err)
	err = client.PutParameter(context.Background(), "p", "v")
	require.ErrorContains(t, err, "throttled")
}
