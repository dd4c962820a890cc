// bundle.go - Transaction bundle decoding for the CLI.
//
// A bundle is the JSON form of one transact call: the proof with its public
// signals, the minified extData pair, the encrypted note blobs and the named
// accounts. Byte fields are hex-encoded.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"zkcash/internal/account"
	"zkcash/internal/pool"
)

// Bundle mirrors pool.TransactParams in a file-friendly encoding.
type Bundle struct {
	Proof struct {
		A                 string    `json:"a"`
		B                 string    `json:"b"`
		C                 string    `json:"c"`
		Root              string    `json:"root"`
		PublicAmount      string    `json:"public_amount"`
		ExtDataHash       string    `json:"ext_data_hash"`
		InputNullifiers   [2]string `json:"input_nullifiers"`
		OutputCommitments [2]string `json:"output_commitments"`
	} `json:"proof"`
	ExtAmount        int64  `json:"ext_amount"`
	Fee              uint64 `json:"fee"`
	EncryptedOutput1 string `json:"encrypted_output1"`
	EncryptedOutput2 string `json:"encrypted_output2"`
	Recipient        string `json:"recipient"`
	FeeRecipient     string `json:"fee_recipient"`
	Signer           string `json:"signer"`
}

func hexBytes(field, s string, want int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid hex: %w", field, err)
	}
	if want > 0 && len(b) != want {
		return nil, fmt.Errorf("%s: got %d bytes, want %d", field, len(b), want)
	}
	return b, nil
}

func hex32(field, s string) ([32]byte, error) {
	var out [32]byte
	b, err := hexBytes(field, s, 32)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

// LoadBundle reads and decodes a bundle file into transact parameters. The
// asset is always the pinned native mint.
func LoadBundle(path string) (*pool.TransactParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse bundle: %w", err)
	}

	params := &pool.TransactParams{
		ExtAmount: b.ExtAmount,
		Fee:       b.Fee,
		Mint:      pool.NativeMint,
	}
	if params.EncryptedOutput1, err = hexBytes("encrypted_output1", b.EncryptedOutput1, 0); err != nil {
		return nil, err
	}
	if params.EncryptedOutput2, err = hexBytes("encrypted_output2", b.EncryptedOutput2, 0); err != nil {
		return nil, err
	}
	if params.Recipient, err = account.AddressFromHex(b.Recipient); err != nil {
		return nil, fmt.Errorf("recipient: %w", err)
	}
	if params.FeeRecipient, err = account.AddressFromHex(b.FeeRecipient); err != nil {
		return nil, fmt.Errorf("fee_recipient: %w", err)
	}
	if params.Signer, err = account.AddressFromHex(b.Signer); err != nil {
		return nil, fmt.Errorf("signer: %w", err)
	}

	a, err := hexBytes("proof.a", b.Proof.A, 64)
	if err != nil {
		return nil, err
	}
	copy(params.Proof.A[:], a)
	bb, err := hexBytes("proof.b", b.Proof.B, 128)
	if err != nil {
		return nil, err
	}
	copy(params.Proof.B[:], bb)
	c, err := hexBytes("proof.c", b.Proof.C, 64)
	if err != nil {
		return nil, err
	}
	copy(params.Proof.C[:], c)

	if params.Proof.Root, err = hex32("proof.root", b.Proof.Root); err != nil {
		return nil, err
	}
	if params.Proof.PublicAmount, err = hex32("proof.public_amount", b.Proof.PublicAmount); err != nil {
		return nil, err
	}
	if params.Proof.ExtDataHash, err = hex32("proof.ext_data_hash", b.Proof.ExtDataHash); err != nil {
		return nil, err
	}
	for i, s := range b.Proof.InputNullifiers {
		if params.Proof.InputNullifiers[i], err = hex32("proof.input_nullifiers", s); err != nil {
			return nil, err
		}
	}
	for i, s := range b.Proof.OutputCommitments {
		if params.Proof.OutputCommitments[i], err = hex32("proof.output_commitments", s); err != nil {
			return nil, err
		}
	}
	return params, nil
}
