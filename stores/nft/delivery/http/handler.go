package http

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/delivery"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/file"
	"github.com/x-xyz/swipebid/domain/nft"
)

type handler struct {
	nft nft.Usecase
}

func New(e *echo.Echo, nftUC nft.Usecase) {
	h := &handler{
		nft: nftUC,
	}

	g := e.Group("/nfts")
	g.POST("", h.create)
}

// create
//
//	@Summary		Create an NFT
//	@Description	Pins the image and its metadata to IPFS, then lists the token through createNFT.
//	@Description	Traits are "key:value" entries, repeated or comma separated.
//	@Tags			nfts
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"name, at least 3 characters"
//	@Param			description	formData	string	true	"description, at least 10 characters"
//	@Param			traits		formData	string	false	"traits"
//	@Param			basePrice	formData	string	true	"base price in ETH"
//	@Param			image		formData	file	false	"png, jpeg or gif up to 50MB"
//	@Param			imageData	formData	string	false	"data:image/...;base64, used without image"
//	@Success		201			{object}	object{data=nft.Created}
//	@Failure		400
//	@Failure		412
//	@Failure		422
//	@Router			/nfts [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := nft.CreateParams{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		BasePrice:   c.FormValue("basePrice"),
		ImageData:   c.FormValue("imageData"),
	}
	if form, err := c.MultipartForm(); err == nil {
		p.Traits = nft.ParseTraits(form.Value["traits"]...)
	} else {
		p.Traits = nft.ParseTraits(c.FormValue("traits"))
	}

	if fh, err := c.FormFile("image"); err == nil {
		data, err := readImage(fh)
		if err != nil {
			ctx.WithField("err", err).Warn("read image failed")
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		p.Image = data
		p.FileName = fh.Filename
	} else if err != http.ErrMissingFile && err != http.ErrNotMultipart {
		ctx.WithField("err", err).Warn("c.FormFile failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err))
	}

	created, err := h.nft.Create(ctx, p)
	if err != nil {
		ctx.WithField("err", err).Warn("nft.Create failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, created)
}

func readImage(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, file.MaxImageSize+1))
	if err != nil {
		return nil, xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}
	if len(data) > file.MaxImageSize {
		return nil, domain.ErrImageTooLarge
	}
	return data, nil
}
