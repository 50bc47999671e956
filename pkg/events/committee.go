package events

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"

	"github.com/timeboost-labs/keymanager-contracts/pkg/bindings/contractKeyManager"
	"github.com/timeboost-labs/keymanager-contracts/pkg/logging"
)

// CommitteeCreated is the decoded KeyManager committee registration event.
type CommitteeCreated = contractKeyManager.KeyManagerCommitteeCreated

// SubscribeCommitteeCreated streams CommitteeCreated events emitted by the
// KeyManager proxy at keyManager into sink, starting from fromBlock (nil
// for latest). Malformed logs are dropped without ending the stream.
func SubscribeCommitteeCreated(ctx context.Context, client LogSubscriber, keyManager common.Address, fromBlock *big.Int, sink chan<- *CommitteeCreated, logger logging.Logger) (event.Subscription, error) {
	kmABI, err := contractKeyManager.KeyManagerMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return Watch(ctx, client, *kmABI, keyManager, "CommitteeCreated", fromBlock, nil, sink, logger)
}
