// config.go - Global fee configuration account.

package pool

import (
	"encoding/binary"
	"errors"

	"zkcash/internal/account"
)

// Basis-point denominator for all fee rates.
const basisPoints = 10_000

// Defaults applied at pool initialization.
const (
	DefaultDepositFeeRate    = 0                 // free deposits
	DefaultWithdrawalFeeRate = 100               // 1%
	DefaultFeeErrorMargin    = 500               // 5%
	DefaultMaxDepositAmount  = 1_000_000_000_000 // 1000 whole tokens in minor units
)

// GlobalConfig is the authority-gated fee policy.
type GlobalConfig struct {
	Authority         account.Address
	DepositFeeRate    uint16
	WithdrawalFeeRate uint16
	FeeErrorMargin    uint16
	Bump              uint8
}

const configRecordSize = 32 + 2 + 2 + 2 + 1

var errBadConfigRecord = errors.New("pool: malformed config record")

// MarshalBinary encodes the config record.
func (c *GlobalConfig) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, configRecordSize)
	out = append(out, c.Authority[:]...)
	out = binary.LittleEndian.AppendUint16(out, c.DepositFeeRate)
	out = binary.LittleEndian.AppendUint16(out, c.WithdrawalFeeRate)
	out = binary.LittleEndian.AppendUint16(out, c.FeeErrorMargin)
	out = append(out, c.Bump)
	return out, nil
}

// UnmarshalBinary decodes a config record.
func (c *GlobalConfig) UnmarshalBinary(data []byte) error {
	if len(data) != configRecordSize {
		return errBadConfigRecord
	}
	copy(c.Authority[:], data[:32])
	c.DepositFeeRate = binary.LittleEndian.Uint16(data[32:34])
	c.WithdrawalFeeRate = binary.LittleEndian.Uint16(data[34:36])
	c.FeeErrorMargin = binary.LittleEndian.Uint16(data[36:38])
	c.Bump = data[38]
	return nil
}
