package treasury

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	domainTreasury "github.com/bidhaus/goapi/domain/treasury"
	"github.com/bidhaus/goapi/service/chain"
)

type impl struct {
	client  chain.Client
	chainId domain.ChainId
	key     *ecdsa.PrivateKey
}

// New builds a treasury that pays out from the custody wallet with plain
// value transfers. Amounts are denominated in the native unit.
func New(client chain.Client, chainId domain.ChainId, key *ecdsa.PrivateKey) domainTreasury.Treasury {
	return &impl{
		client:  client,
		chainId: chainId,
		key:     key,
	}
}

func (im *impl) Transfer(c ctx.Ctx, to domain.Address, amount string) (string, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		c.WithField("err", err).Error("decimal.NewFromString failed")
		return "", domain.ErrInvalidNumberFormat
	}
	wei := d.Mul(decimal.New(1, 18)).BigInt()
	txRef, err := im.client.TransferValue(c, int32(im.chainId), im.key, common.HexToAddress(to.ToLowerStr()), wei)
	if err != nil {
		c.WithField("err", err).Error("client.TransferValue failed")
		return "", err
	}
	return txRef, nil
}
