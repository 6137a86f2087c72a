package file

import (
	"github.com/x-xyz/swipebid/base/ctx"
)

// MaxImageSize caps uploaded artwork
const MaxImageSize = 50 << 20

type Upload struct {
	Hash      string `json:"hash"`
	MimeType  string `json:"mimeType"`
	Extension string `json:"extension"`
}

type Usecase interface {
	// UploadImage checks the bytes are a png, jpeg or gif and pins them
	UploadImage(c ctx.Ctx, data []byte, name string) (*Upload, error)
	// UploadDataUri does the same for a data:image/...;base64, string
	UploadDataUri(c ctx.Ctx, imgData string, name string) (*Upload, error)
	UploadJson(c ctx.Ctx, value interface{}, name string) (hash string, err error)
}
