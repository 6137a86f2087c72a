package pinata

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/log"
	"github.com/x-xyz/swipebid/base/metrics"
)

const (
	pinPath     = "/pinning/pinFileToIPFS"
	pinJsonPath = "/pinning/pinJSONToIPFS"
)

type pinataImpl struct {
	endpoint  string
	jwt       string
	apiKey    string
	apiSecret string
	client    *http.Client
	metrics   metrics.Service
}

func New(cfg Config) Service {
	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &pinataImpl{
		endpoint:  endpoint,
		jwt:       cfg.Jwt,
		apiKey:    cfg.ApiKey,
		apiSecret: cfg.ApiSecret,
		client:    client,
		metrics:   metrics.New("pinata"),
	}
}

func (im *pinataImpl) Pin(c ctx.Ctx, file io.Reader, filename string, optFns ...Options) (string, error) {
	opts, err := GetPinOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("GetPinOptions failed")
		return "", err
	}

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	if fw, err := w.CreateFormFile("file", filename); err != nil {
		c.WithField("err", err).Error("w.CreateFormFile failed")
		return "", err
	} else if _, err := io.Copy(fw, file); err != nil {
		c.WithField("err", err).Error("io.Copy failed")
		return "", err
	}
	if opts.Metadata != nil {
		if err := writeJsonField(w, "pinataMetadata", opts.Metadata); err != nil {
			c.WithField("err", err).Error("writeJsonField failed")
			return "", err
		}
	}
	if opts.Options != nil {
		if err := writeJsonField(w, "pinataOptions", opts.Options); err != nil {
			c.WithField("err", err).Error("writeJsonField failed")
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return im.post(c, pinPath, w.FormDataContentType(), &b)
}

func (im *pinataImpl) PinJson(c ctx.Ctx, value interface{}, optFns ...Options) (string, error) {
	opts, err := GetPinOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("GetPinOptions failed")
		return "", err
	}
	opts.PinataContent = value

	body, err := json.Marshal(opts)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}
	return im.post(c, pinJsonPath, "application/json", bytes.NewReader(body))
}

func writeJsonField(w *multipart.Writer, name string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return w.WriteField(name, string(b))
}

func (im *pinataImpl) authorize(req *http.Request) error {
	switch {
	case im.jwt != "":
		req.Header.Set("Authorization", "Bearer "+im.jwt)
	case im.apiKey != "" && im.apiSecret != "":
		req.Header.Set("pinata_api_key", im.apiKey)
		req.Header.Set("pinata_secret_api_key", im.apiSecret)
	default:
		return ErrNoCredentials
	}
	return nil
}

func (im *pinataImpl) post(c ctx.Ctx, path, contentType string, body io.Reader) (string, error) {
	defer im.metrics.BumpTime("pin.latency", "path", path).End()

	req, err := http.NewRequestWithContext(c, http.MethodPost, im.endpoint+path, body)
	if err != nil {
		c.WithField("err", err).Error("http.NewRequest failed")
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	if err := im.authorize(req); err != nil {
		c.WithField("err", err).Error("authorize failed")
		return "", err
	}

	resp, err := im.client.Do(req)
	if err != nil {
		c.WithField("err", err).Error("client.Do failed")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.WithFields(log.Fields{
			"status":    resp.StatusCode,
			"errorBody": string(errorBody),
			"path":      path,
		}).Error("Request failed")
		im.metrics.BumpSum("pin.err", 1, "path", path)
		return "", ErrRequestFailed
	}

	p := struct {
		IpfsHash string `json:"IpfsHash"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		c.WithField("err", err).Error("json.NewDecoder.Decode failed")
		return "", err
	}
	if p.IpfsHash == "" {
		c.WithField("path", path).Error("empty IpfsHash")
		return "", ErrRequestFailed
	}
	return p.IpfsHash, nil
}
