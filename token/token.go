package token

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Token is the custody interface the router consumes. Semantics follow
// standard fungible-token transfers with revert-style failures: any
// error from these calls is fatal to the in-flight request.
//
// The acting account is explicit (spender/from) because the router is
// an ordinary process, not an on-chain caller with an implicit sender.
type Token interface {
	// TransferFrom moves amount from `from` to `to`, consuming the
	// allowance `from` granted to `spender`.
	TransferFrom(spender, from, to common.Address, amount *big.Int) error
	// Transfer moves amount out of `from` directly.
	Transfer(from, to common.Address, amount *big.Int) error
	// Approve sets the allowance `owner` grants to `spender`.
	Approve(owner, spender common.Address, amount *big.Int) error
	BalanceOf(addr common.Address) *big.Int
	Allowance(owner, spender common.Address) *big.Int
}

var (
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrNegativeAmount        = errors.New("negative amount")
)

// Source resolves a token identity to its custody implementation.
type Source interface {
	Resolve(addr common.Address) (Token, bool)
}

// Book is a static Source over an address -> Token map.
type Book map[common.Address]Token

func (b Book) Resolve(addr common.Address) (Token, bool) {
	t, ok := b[addr]
	return t, ok
}
