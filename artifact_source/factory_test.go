package artifact_source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turbot/owid-covid-dashboard/types"
)

func TestSourceFactory_NewSource(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "https", url: "https://covid.ourworldindata.org/data/owid-covid-data.csv", want: "http"},
		{name: "http", url: "http://localhost:8080/data.csv", want: "http"},
		{name: "file url", url: "file:///tmp/data.csv", want: "file_system"},
		{name: "bare path", url: "data/owid.csv", want: "file_system"},
		{name: "unknown", url: "ftp://example.com/data.csv", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := types.NewArtifactInfo(tt.url)
			require.NoError(t, err)

			source, err := Factory.NewSource(context.Background(), info, SourceOptions{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer source.Close()
			assert.Equal(t, tt.want, source.Identifier())
		})
	}
}

func TestAwsConnection_Validate(t *testing.T) {
	key := "AKIA"
	tests := []struct {
		name    string
		conn    AwsConnection
		wantErr bool
	}{
		{name: "empty", conn: AwsConnection{}},
		{name: "key without secret", conn: AwsConnection{AccessKey: &key}, wantErr: true},
		{name: "secret without key", conn: AwsConnection{SecretKey: &key}, wantErr: true},
		{name: "key and secret", conn: AwsConnection{AccessKey: &key, SecretKey: &key}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.conn.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPathOrContents(t *testing.T) {
	got, err := pathOrContents(`{"type":"service_account"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"service_account"}`, got)

	_, err = pathOrContents("/no/such/credentials.json")
	assert.Error(t, err)
}
