package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Client executes contract interactions. Generated clients hold one Client
// per contract instance.
type Client interface {
	// CallView invokes a read-only function and returns its decoded value.
	// Multi-output functions return a []any in declaration order.
	CallView(ctx context.Context, method string, args ...any) (any, error)

	// SendTransaction submits a mutating call on behalf of sender, attaching
	// value (nil for non-payable calls). The flag reports transaction
	// success.
	SendTransaction(ctx context.Context, sender string, value *big.Int, method string, args ...any) (bool, error)
}

// Event is one emitted contract event as delivered by a Subscriber.
type Event struct {
	Contract       common.Address
	TxFrom         common.Address
	TxTo           common.Address
	Data           []byte
	BlockNumber    uint64
	BlockTimestamp uint64
}

// Subscriber delivers contract events to interested consumers. Its
// implementation lives with the Client implementation, outside this module.
type Subscriber interface {
	Subscribe(ctx context.Context, contract common.Address, events chan<- Event) error
}
