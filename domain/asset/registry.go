package asset

import (
	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
)

// Registry is the external asset-ownership collaborator. The auction core
// moves assets into escrow at listing time and releases them at settlement;
// it never mints.
type Registry interface {
	EscrowAsset(c ctx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId, from domain.Address) error
	ReleaseAssetTo(c ctx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId, to domain.Address) error
	OwnerOf(c ctx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId) (domain.Address, error)
}
