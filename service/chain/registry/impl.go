package registry

import (
	"crypto/ecdsa"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/asset"
	"github.com/bidhaus/goapi/service/chain/contract"
)

type impl struct {
	erc721  contract.Erc721Contract
	key     *ecdsa.PrivateKey
	custody domain.Address
}

// New builds an asset registry backed by erc721 transfers. Listed assets
// are parked under the custody wallet until settlement.
func New(erc721 contract.Erc721Contract, key *ecdsa.PrivateKey, custody domain.Address) asset.Registry {
	return &impl{
		erc721:  erc721,
		key:     key,
		custody: custody,
	}
}

func (im *impl) EscrowAsset(c ctx.Ctx, chainId domain.ChainId, contractAddr domain.Address, tokenId domain.TokenId, from domain.Address) error {
	id, err := tokenId.ToBigInt()
	if err != nil {
		c.WithField("err", err).Error("tokenId.ToBigInt failed")
		return err
	}
	if _, err := im.erc721.TransferFrom(c, int32(chainId), contractAddr.ToLowerStr(), im.key, from.ToLowerStr(), im.custody.ToLowerStr(), id); err != nil {
		c.WithField("err", err).Error("erc721.TransferFrom failed")
		return err
	}
	return nil
}

func (im *impl) ReleaseAssetTo(c ctx.Ctx, chainId domain.ChainId, contractAddr domain.Address, tokenId domain.TokenId, to domain.Address) error {
	id, err := tokenId.ToBigInt()
	if err != nil {
		c.WithField("err", err).Error("tokenId.ToBigInt failed")
		return err
	}
	if _, err := im.erc721.TransferFrom(c, int32(chainId), contractAddr.ToLowerStr(), im.key, im.custody.ToLowerStr(), to.ToLowerStr(), id); err != nil {
		c.WithField("err", err).Error("erc721.TransferFrom failed")
		return err
	}
	return nil
}

func (im *impl) OwnerOf(c ctx.Ctx, chainId domain.ChainId, contractAddr domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		c.WithField("err", err).Error("tokenId.ToBigInt failed")
		return domain.EmptyAddress, err
	}
	owner, err := im.erc721.OwnerOf(c, int32(chainId), contractAddr.ToLowerStr(), id)
	if err != nil {
		c.WithField("err", err).Error("erc721.OwnerOf failed")
		return domain.EmptyAddress, err
	}
	return domain.Address(owner).ToLower(), nil
}
