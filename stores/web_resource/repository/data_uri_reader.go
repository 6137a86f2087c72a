package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/domain"
)

const dataUriSchema = "data:"

type dataUriReaderRepo struct {
}

func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

// Get decodes data:[<mediatype>][;base64],<data>
func (r *dataUriReaderRepo) Get(_ bCtx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return nil, xerrors.Errorf("%w: not a data uri", domain.ErrUnsupportedSchema)
	}
	parts := strings.SplitN(strings.TrimPrefix(uri, dataUriSchema), ",", 2)
	if len(parts) < 2 || len(parts[1]) == 0 {
		return nil, xerrors.Errorf("%w: no data part provided", domain.ErrBadParamInput)
	}

	if strings.HasSuffix(parts[0], ";base64") {
		return base64.StdEncoding.DecodeString(parts[1])
	}
	text, err := url.PathUnescape(parts[1])
	if err != nil {
		// not percent-encoded, keep as is
		return []byte(parts[1]), nil
	}
	return []byte(text), nil
}
