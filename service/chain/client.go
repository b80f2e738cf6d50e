package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/bidhaus/goapi/base/ctx"
	baseEthereum "github.com/bidhaus/goapi/base/ethereum"
	"github.com/bidhaus/goapi/base/log"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

type ClientCfg struct {
	RpcUrls map[int32]string
}

type Client interface {
	Call(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	Transact(bCtx.Ctx, int32, *ecdsa.PrivateKey, common.Address, *big.Int, abi.ABI, string, ...interface{}) (string, error)
	TransferValue(bCtx.Ctx, int32, *ecdsa.PrivateKey, common.Address, *big.Int) (string, error)
}

type clientImpl struct {
	clients map[int32]*ethclient.Client
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	clients := make(map[int32]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = client
	}
	return &clientImpl{
		clients: clients,
	}, anyerr
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId int32, key *ecdsa.PrivateKey, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (string, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return "", ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return "", err
	}

	from := baseEthereum.AddressOfKey(key)
	nonce, err := client.PendingNonceAt(ctx, from)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return "", err
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return "", err
	}
	gasLimit, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &addr,
		Value: value,
		Data:  data,
	})
	if err != nil {
		ctx.WithField("err", err).Error("client.EstimateGas failed")
		return "", err
	}

	tx := types.NewTransaction(nonce, addr, value, gasLimit, gasPrice, data)
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(int64(chainId))), key)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return "", err
	}
	if err := client.SendTransaction(ctx, signedTx); err != nil {
		ctx.WithField("err", err).Error("client.SendTransaction failed")
		return "", err
	}
	return signedTx.Hash().Hex(), nil
}

func (c *clientImpl) TransferValue(ctx bCtx.Ctx, chainId int32, key *ecdsa.PrivateKey, addr common.Address, value *big.Int) (string, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return "", ErrUnsupportedChain
	}

	from := baseEthereum.AddressOfKey(key)
	nonce, err := client.PendingNonceAt(ctx, from)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return "", err
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return "", err
	}

	// plain value transfer
	tx := types.NewTransaction(nonce, addr, value, 21000, gasPrice, nil)
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(int64(chainId))), key)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return "", err
	}
	if err := client.SendTransaction(ctx, signedTx); err != nil {
		ctx.WithField("err", err).Error("client.SendTransaction failed")
		return "", err
	}
	return signedTx.Hash().Hex(), nil
}
