package httpapi_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/sr"
)

func newSRClient(t *testing.T) *sr.Client {
	t.Helper()
	ts := setup(t)
	client, err := sr.NewClient(sr.URLs(ts.URL))
	require.NoError(t, err)
	return client
}

func requireResponseError(t *testing.T, err error, status, code int) {
	t.Helper()
	require.Error(t, err)
	var respErr *sr.ResponseError
	require.True(t, errors.As(err, &respErr), "expected *sr.ResponseError, got %T: %v", err, err)
	assert.Equal(t, status, respErr.StatusCode)
	assert.Equal(t, code, respErr.ErrorCode)
}

// schemaLogical differs from schemaA only by the logical type on id.
const schemaLogical = `{"type":"record","name":"Order","fields":[{"name":"id","type":{"type":"long","logicalType":"timestamp-millis"}}]}`

func TestFranzGoCreateAndFetch(t *testing.T) {
	ctx := context.Background()
	client := newSRClient(t)

	created, err := client.CreateSchema(ctx, "orders-value", sr.Schema{Schema: schemaA, Type: sr.TypeAvro})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, 1, created.Version)
	assert.Equal(t, "orders-value", created.Subject)

	again, err := client.CreateSchema(ctx, "orders-value", sr.Schema{Schema: schemaA, Type: sr.TypeAvro})
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, created.Version, again.Version)

	second, err := client.CreateSchema(ctx, "orders-value", sr.Schema{Schema: schemaB, Type: sr.TypeAvro})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 2, second.Version)

	byVersion, err := client.SchemaByVersion(ctx, "orders-value", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, byVersion.ID)
	assert.Equal(t, sr.TypeAvro, byVersion.Type)

	schemas, err := client.Schemas(ctx, "orders-value")
	require.NoError(t, err)
	require.Len(t, schemas, 2)
	assert.Equal(t, 2, schemas[len(schemas)-1].Version)

	byID, err := client.SchemaByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, second.Schema.Schema, byID.Schema)

	logical, err := client.CreateSchema(ctx, "orders-value", sr.Schema{Schema: schemaLogical, Type: sr.TypeAvro})
	require.NoError(t, err)
	assert.Equal(t, 3, logical.ID)
	assert.Equal(t, 3, logical.Version)

	logicalByID, err := client.SchemaByID(ctx, logical.ID)
	require.NoError(t, err)
	assert.Contains(t, logicalByID.Schema, `"logicalType":"timestamp-millis"`)

	subjects, err := client.Subjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"orders-value"}, subjects)
}

func TestFranzGoProtobufAndJSON(t *testing.T) {
	ctx := context.Background()
	client := newSRClient(t)

	proto, err := client.CreateSchema(ctx, "orders-proto", sr.Schema{
		Schema: "syntax = \"proto3\";\npackage shop;\nmessage Order { int64 id = 1; }\n",
		Type:   sr.TypeProtobuf,
	})
	require.NoError(t, err)
	assert.Equal(t, sr.TypeProtobuf, proto.Type)

	js, err := client.CreateSchema(ctx, "orders-json", sr.Schema{
		Schema: `{"type":"object","properties":{"id":{"type":"integer"}}}`,
		Type:   sr.TypeJSON,
	})
	require.NoError(t, err)
	assert.Equal(t, sr.TypeJSON, js.Type)
	assert.NotEqual(t, proto.ID, js.ID)

	fetched, err := client.SchemaByVersion(ctx, "orders-proto", 1)
	require.NoError(t, err)
	assert.Equal(t, sr.TypeProtobuf, fetched.Type)
}

func TestFranzGoDeleteAndErrors(t *testing.T) {
	ctx := context.Background()
	client := newSRClient(t)

	_, err := client.CreateSchema(ctx, "orders-value", sr.Schema{Schema: schemaA})
	require.NoError(t, err)
	_, err = client.CreateSchema(ctx, "orders-key", sr.Schema{Schema: schemaA})
	require.NoError(t, err)

	removed, err := client.DeleteSubject(ctx, "orders-value", sr.SoftDelete)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, removed)

	_, err = client.SchemaByVersion(ctx, "orders-value", 1)
	requireResponseError(t, err, http.StatusNotFound, 40401)

	_, err = client.SchemaByVersion(ctx, "orders-key", 9)
	requireResponseError(t, err, http.StatusNotFound, 40402)

	_, err = client.SchemaByID(ctx, 42)
	requireResponseError(t, err, http.StatusNotFound, 40403)

	_, err = client.CreateSchema(ctx, "orders-value", sr.Schema{Schema: `{"type":`})
	requireResponseError(t, err, http.StatusUnprocessableEntity, 42201)

	byID, err := client.SchemaByID(ctx, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, byID.Schema)
}

func TestFranzGoCompatibility(t *testing.T) {
	ctx := context.Background()
	client := newSRClient(t)

	results := client.SetCompatibility(ctx, sr.SetCompatibility{Level: sr.CompatFull}, "orders-value")
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	results = client.Compatibility(ctx, "orders-value")
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, sr.CompatFull, results[0].Level)

	global := client.Compatibility(ctx)
	require.Len(t, global, 1)
	require.NoError(t, global[0].Err)
	assert.Equal(t, sr.CompatBackward, global[0].Level)
}
