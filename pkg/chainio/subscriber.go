package chainio

import (
	"context"
	"math/big"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"

	"github.com/timeboost-labs/keymanager-contracts/pkg/events"
	"github.com/timeboost-labs/keymanager-contracts/pkg/logging"
)

type KeyManagerSubscriber interface {
	SubscribeCommitteeCreated(
		ctx context.Context,
		fromBlock *big.Int,
		sink chan<- *events.CommitteeCreated,
	) (event.Subscription, error)
}

// ChainSubscriber streams decoded KeyManager events over a websocket
// connection.
type ChainSubscriber struct {
	client         events.LogSubscriber
	keyManagerAddr gethcommon.Address
	logger         logging.Logger
}

var _ KeyManagerSubscriber = (*ChainSubscriber)(nil)

func NewChainSubscriber(
	client events.LogSubscriber,
	keyManagerAddr gethcommon.Address,
	logger logging.Logger,
) *ChainSubscriber {
	return &ChainSubscriber{
		client:         client,
		keyManagerAddr: keyManagerAddr,
		logger:         logger,
	}
}

func (s *ChainSubscriber) SubscribeCommitteeCreated(
	ctx context.Context,
	fromBlock *big.Int,
	sink chan<- *events.CommitteeCreated,
) (event.Subscription, error) {
	return events.SubscribeCommitteeCreated(ctx, s.client, s.keyManagerAddr, fromBlock, sink, s.logger)
}
