package handlers

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimdaga/gcp-hcp-cli/internal/hypershift"
	"github.com/jimdaga/gcp-hcp-cli/internal/wif"
)

func TestInfraCreate(t *testing.T) {
	fake := &fakeAPI{}
	withFakes(t, fake)
	tool := &fakeProvisioner{iamConfig: validIAMConfig()}
	withTool(t, tool)

	dir := t.TempDir()
	opts := InfraCreateOptions{
		InfraID:          "my-infra",
		OutputSigningKey: filepath.Join(dir, "my-infra-signing-key.pem"),
		OutputJWKS:       filepath.Join(dir, "my-infra-jwks.json"),
		OutputIAMConfig:  filepath.Join(dir, "my-infra-iam-config.json"),
	}

	err := InfraCreate(context.Background(), GlobalOptions{Quiet: true}, opts)
	require.NoError(t, err)

	assert.Equal(t, "my-infra", tool.gotIAM.InfraID)
	assert.Equal(t, "my-project", tool.gotIAM.ProjectID)

	// Signing key artifact is a private key, saved 0600.
	info, err := os.Stat(opts.OutputSigningKey)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	keyPEM, err := os.ReadFile(opts.OutputSigningKey)
	require.NoError(t, err)
	assert.Contains(t, string(keyPEM), "RSA PRIVATE KEY")

	jwks, err := os.ReadFile(opts.OutputJWKS)
	require.NoError(t, err)
	assert.Contains(t, string(jwks), `"keys"`)

	var saved hypershift.Config
	data, err := os.ReadFile(opts.OutputIAMConfig)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, "my-infra", saved.InfraID())
}

func TestInfraCreate_ExistingJWKSSkipsKeypair(t *testing.T) {
	fake := &fakeAPI{}
	withFakes(t, fake)
	tool := &fakeProvisioner{iamConfig: validIAMConfig()}
	withTool(t, tool)

	origKeypair := newKeypair
	t.Cleanup(func() { newKeypair = origKeypair })
	generated := false
	newKeypair = func() (*wif.Keypair, error) {
		generated = true
		return wif.GenerateKeypair()
	}

	dir := t.TempDir()
	jwksPath := filepath.Join(dir, "existing-jwks.json")
	require.NoError(t, os.WriteFile(jwksPath, []byte(`{"keys":[]}`), 0o644))

	err := InfraCreate(context.Background(), GlobalOptions{Quiet: true}, InfraCreateOptions{
		InfraID:         "my-infra",
		OIDCJWKSFile:    jwksPath,
		OutputIAMConfig: filepath.Join(dir, "iam.json"),
	})
	require.NoError(t, err)

	assert.False(t, generated, "existing JWKS must skip keypair generation")
	assert.Equal(t, jwksPath, tool.gotIAM.OIDCJWKSFile)
}

func TestInfraCreate_InvalidToolOutput(t *testing.T) {
	fake := &fakeAPI{}
	withFakes(t, fake)

	cfg := validIAMConfig()
	delete(cfg, "projectNumber")
	withTool(t, &fakeProvisioner{iamConfig: cfg})

	dir := t.TempDir()
	err := InfraCreate(context.Background(), GlobalOptions{Quiet: true}, InfraCreateOptions{
		InfraID:          "my-infra",
		OutputSigningKey: filepath.Join(dir, "key.pem"),
		OutputJWKS:       filepath.Join(dir, "jwks.json"),
		OutputIAMConfig:  filepath.Join(dir, "iam.json"),
	})
	require.Error(t, err)

	var valErr *hypershift.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "projectNumber", valErr.Missing)
	assert.NoFileExists(t, filepath.Join(dir, "iam.json"))
}

func TestInfraCreateNetwork(t *testing.T) {
	fake := &fakeAPI{}
	withFakes(t, fake)
	tool := &fakeProvisioner{infraConfig: hypershift.Config{
		"infraId": "my-infra",
		"network": "my-infra-net",
		"subnet":  "my-infra-subnet",
	}}
	withTool(t, tool)

	dir := t.TempDir()
	outPath := filepath.Join(dir, "my-infra-infra-config.json")

	err := InfraCreateNetwork(context.Background(), GlobalOptions{Quiet: true}, InfraCreateNetworkOptions{
		InfraID:           "my-infra",
		Region:            "us-central1",
		VPCCIDR:           "10.0.0.0/16",
		OutputInfraConfig: outPath,
	})
	require.NoError(t, err)

	assert.Equal(t, "my-infra", tool.gotInfra.InfraID)
	assert.Equal(t, "us-central1", tool.gotInfra.Region)
	assert.Equal(t, "10.0.0.0/16", tool.gotInfra.VPCCIDR)

	var saved hypershift.Config
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, "my-infra-net", saved["network"])
}
