package events

import (
	"context"
	"fmt"
	"math/big"
	"reflect"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"

	"github.com/timeboost-labs/keymanager-contracts/pkg/logging"
)

// Watch subscribes to one event of one contract and streams decoded events
// into sink. Logs that fail to decode or validate are logged and dropped;
// the stream itself stays alive. The subscription ends when the caller
// unsubscribes or the underlying transport reports an error on Err.
//
// fromBlock may be nil to start at the latest block. validate may be nil.
func Watch[T any](ctx context.Context, client LogSubscriber, contractABI abi.ABI, contract common.Address, eventName string, fromBlock *big.Int, validate func(*T) error, sink chan<- *T, logger logging.Logger) (event.Subscription, error) {
	if logger == nil {
		logger = logging.NoopLogger{}
	}

	ev, ok := contractABI.Events[eventName]
	if !ok {
		return nil, fmt.Errorf("event %q not found in contract ABI", eventName)
	}

	query := ethereum.FilterQuery{
		Addresses: []common.Address{contract},
		Topics:    [][]common.Hash{{ev.ID}},
		FromBlock: fromBlock,
	}

	logs := make(chan types.Log, 128)
	sub, err := client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s logs: %w", eventName, err)
	}

	decoder := bind.NewBoundContract(contract, contractABI, nil, nil, nil)

	// Generated event structs carry the originating log in a Raw field.
	// Fill it when present so callers keep tx hash and block context.
	setRawLog := func(decoded *T, lg types.Log) {
		f := reflect.ValueOf(decoded).Elem().FieldByName("Raw")
		if f.IsValid() && f.CanSet() && f.Type() == reflect.TypeOf(types.Log{}) {
			f.Set(reflect.ValueOf(lg))
		}
	}

	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case lg := <-logs:
				if lg.Removed {
					continue
				}
				decoded := new(T)
				if err := decoder.UnpackLog(decoded, eventName, lg); err != nil {
					logger.Warn("Dropping undecodable log",
						"event", eventName,
						"txHash", lg.TxHash.Hex(),
						"block", lg.BlockNumber,
						"error", err,
					)
					continue
				}
				setRawLog(decoded, lg)
				if validate != nil {
					if err := validate(decoded); err != nil {
						logger.Warn("Dropping invalid event",
							"event", eventName,
							"txHash", lg.TxHash.Hex(),
							"block", lg.BlockNumber,
							"error", err,
						)
						continue
					}
				}
				select {
				case sink <- decoded:
				case err := <-sub.Err():
					return err
				case <-quit:
					return nil
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}), nil
}
