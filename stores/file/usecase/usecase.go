package usecase

import (
	"bytes"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/file"
	"github.com/x-xyz/swipebid/service/pinata"
)

const imgDataHeaderPrefix = "data:image/"

var allowedImageTypes = []string{"image/png", "image/jpeg", "image/gif"}

type impl struct {
	pinata  pinata.Service
	dataUri domain.WebResourceReaderRepository
}

func New(pinata pinata.Service, dataUriReader domain.WebResourceReaderRepository) file.Usecase {
	return &impl{
		pinata:  pinata,
		dataUri: dataUriReader,
	}
}

func pinOptions(name string) []pinata.Options {
	return []pinata.Options{
		pinata.WithName(name),
		pinata.WithOptions(pinata.PinataOptions{CidVersion: pinata.CidVersion_1}),
	}
}

func (im *impl) UploadImage(c ctx.Ctx, data []byte, name string) (*file.Upload, error) {
	if len(data) == 0 {
		return nil, xerrors.Errorf("%w: empty image", domain.ErrBadParamInput)
	}
	if len(data) > file.MaxImageSize {
		return nil, domain.ErrImageTooLarge
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		c.WithField("mimeType", mtype.String()).Warn("unsupported image")
		return nil, xerrors.Errorf("%w: %s", domain.ErrUnsupportedImage, mtype.String())
	}

	hash, err := im.pinata.Pin(c, bytes.NewReader(data), name+mtype.Extension(), pinOptions(name)...)
	if err != nil {
		c.WithField("err", err).Error("pinata.Pin failed")
		return nil, err
	}
	c.WithField("hash", hash).Info("pinata.Pin success")
	return &file.Upload{
		Hash:      hash,
		MimeType:  mtype.String(),
		Extension: mtype.Extension(),
	}, nil
}

func (im *impl) UploadDataUri(c ctx.Ctx, imgData string, name string) (*file.Upload, error) {
	if !strings.HasPrefix(imgData, imgDataHeaderPrefix) {
		return nil, xerrors.Errorf("%w: image data has wrong prefix", domain.ErrUnsupportedImage)
	}
	data, err := im.dataUri.Get(c, imgData)
	if err != nil {
		c.WithField("err", err).Warn("dataUri.Get failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}
	return im.UploadImage(c, data, name)
}

func (im *impl) UploadJson(c ctx.Ctx, value interface{}, name string) (string, error) {
	hash, err := im.pinata.PinJson(c, value, pinOptions(name)...)
	if err != nil {
		c.WithField("err", err).Error("pinata.PinJson failed")
		return "", err
	}
	c.WithField("hash", hash).Info("pinata.PinJson success")
	return hash, nil
}
