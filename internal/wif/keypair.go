// Package wif sets up workload identity federation for hosted
// clusters: service account signing keypairs, the JWKS document the
// identity pool verifies tokens against, and the two setup workflows
// (automatic via the hypershift binary, manual from pre-generated
// files) that feed cluster creation.
package wif

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"math/big"
	"os"
)

// Keypair is an RSA service account signing keypair together with
// its derived JWKS document. The JWKS is also written to a temporary
// file so it can be handed to the provisioning binary; the file is
// owned by whoever generated the keypair and must be released via
// Cleanup on every exit path.
type Keypair struct {
	// PrivateKeyPEM is the PKCS#1 PEM encoding of the private key.
	PrivateKeyPEM []byte

	// Kid is the RFC 7638 thumbprint of the public key, used as the
	// JWK key ID.
	Kid string

	// JWKS is the JSON Web Key Set document for the public key.
	JWKS []byte

	// JWKSPath is the temporary file holding JWKS.
	JWKSPath string
}

// jwk is the single RSA signing key entry of the JWKS document.
type jwk struct {
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwks struct {
	Keys []jwk `json:"keys"`
}

// GenerateKeypair creates a new RSA-2048 keypair and writes its JWKS
// document to a temporary file. The caller owns the returned artifact
// and must call Cleanup.
func GenerateKeypair() (*Keypair, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA key: %w", err)
	}
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("generated key failed validation: %w", err)
	}

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	n := base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes())
	e := base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes())
	kid := thumbprint(n, e)

	doc, err := json.MarshalIndent(jwks{Keys: []jwk{{
		Kty: "RSA",
		Alg: "RS256",
		Use: "sig",
		Kid: kid,
		N:   n,
		E:   e,
	}}}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JWKS: %w", err)
	}

	tmpfile, err := os.CreateTemp("", "gcphcp-jwks-*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp JWKS file: %w", err)
	}
	if _, err := tmpfile.Write(doc); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil, fmt.Errorf("failed to write temp JWKS file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		_ = os.Remove(tmpfile.Name())
		return nil, fmt.Errorf("failed to close temp JWKS file: %w", err)
	}

	return &Keypair{
		PrivateKeyPEM: privPEM,
		Kid:           kid,
		JWKS:          doc,
		JWKSPath:      tmpfile.Name(),
	}, nil
}

// PrivateKeyBase64 returns the base64 encoding of the raw PEM text,
// as embedded in the cluster creation payload.
func (k *Keypair) PrivateKeyBase64() string {
	return base64.StdEncoding.EncodeToString(k.PrivateKeyPEM)
}

// Cleanup removes the temporary JWKS file. Safe to call more than
// once and on partially failed setups.
func (k *Keypair) Cleanup() error {
	if k == nil || k.JWKSPath == "" {
		return nil
	}
	err := os.Remove(k.JWKSPath)
	k.JWKSPath = ""
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// thumbprint computes the RFC 7638 JWK thumbprint for an RSA public
// key: SHA-256 over the canonical JSON with e, kty, n in
// lexicographic order.
func thumbprint(n, e string) string {
	canonical := fmt.Sprintf(`{"e":%q,"kty":"RSA","n":%q}`, e, n)
	sum := sha256.Sum256([]byte(canonical))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
