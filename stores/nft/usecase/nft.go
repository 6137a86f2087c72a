package usecase

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/xerrors"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/log"
	pricefomatter "github.com/x-xyz/swipebid/base/price_fomatter"
	bValidator "github.com/x-xyz/swipebid/base/validator"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/file"
	"github.com/x-xyz/swipebid/domain/listing"
	"github.com/x-xyz/swipebid/domain/nft"
)

const (
	ipfsPrefix       = "ipfs://"
	defaultTxTimeout = 30 * time.Second
)

type NftUseCaseCfg struct {
	Repo      listing.Repository
	Contract  listing.Contract
	Wallet    domain.Wallet
	File      file.Usecase
	TxTimeout time.Duration
}

type nftUseCase struct {
	repo      listing.Repository
	contract  listing.Contract
	wallet    domain.Wallet
	file      file.Usecase
	validate  *validator.Validate
	txTimeout time.Duration
}

func NewNftUseCase(cfg *NftUseCaseCfg) nft.Usecase {
	if cfg.TxTimeout <= 0 {
		cfg.TxTimeout = defaultTxTimeout
	}
	return &nftUseCase{
		repo:      cfg.Repo,
		contract:  cfg.Contract,
		wallet:    cfg.Wallet,
		file:      cfg.File,
		validate:  bValidator.New(),
		txTimeout: cfg.TxTimeout,
	}
}

func (u *nftUseCase) Create(c ctx.Ctx, p nft.CreateParams) (*nft.Created, error) {
	if _, err := u.wallet.Address(); err != nil {
		return nil, err
	}

	p.Traits = nft.CleanTraits(p.Traits)
	if err := u.validate.Struct(p); err != nil {
		return nil, xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}
	price, err := pricefomatter.ParseEther(p.BasePrice)
	if err != nil {
		return nil, xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}

	c = ctx.WithValues(c, map[string]interface{}{
		"name":     p.Name,
		"fileName": p.FileName,
	})

	img, err := u.uploadImage(c, p)
	if err != nil {
		return nil, err
	}
	imageURI := ipfsPrefix + img.Hash

	meta := nft.Metadata{
		Name:        p.Name,
		Description: p.Description,
		Image:       imageURI,
		Attributes:  nft.AttributesFromTraits(p.Traits),
	}
	metaHash, err := u.file.UploadJson(c, meta, p.Name)
	if err != nil {
		c.WithField("err", err).Error("file.UploadJson failed")
		return nil, err
	}
	metadataURI := ipfsPrefix + metaHash

	hash, err := u.contract.CreateNFT(c, p.Name, p.Description, metadataURI, p.Traits, price)
	if err != nil {
		c.WithField("err", err).Error("contract.CreateNFT failed")
		return nil, err
	}

	tc, cancel := ctx.WithTimeout(c, u.txTimeout)
	defer cancel()
	if err := u.contract.WaitMined(tc, hash); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"txHash": hash,
		}).Warn("createNFT not confirmed")
		return nil, err
	}
	u.repo.Invalidate(c)

	c.WithField("txHash", hash).Info("nft created")
	return &nft.Created{
		TxHash:      hash,
		ImageURI:    imageURI,
		MetadataURI: metadataURI,
	}, nil
}

func (u *nftUseCase) uploadImage(c ctx.Ctx, p nft.CreateParams) (*file.Upload, error) {
	var (
		img *file.Upload
		err error
	)
	if len(p.Image) > 0 {
		img, err = u.file.UploadImage(c, p.Image, p.Name)
	} else {
		img, err = u.file.UploadDataUri(c, p.ImageData, p.Name)
	}
	if err != nil {
		c.WithField("err", err).Error("upload image failed")
		return nil, err
	}
	return img, nil
}
