package pinata

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/x-xyz/swipebid/base/ctx"
)

var (
	ErrRequestFailed = errors.New("request failed")
	ErrNoCredentials = errors.New("pinata credentials missing")
)

const DefaultEndpoint = "https://api.pinata.cloud"

type Config struct {
	Endpoint string
	// Jwt takes precedence over the api key pair
	Jwt       string
	ApiKey    string
	ApiSecret string
	Timeout   time.Duration
	Client    *http.Client
}

type PinataMetadata struct {
	Name string `json:"name,omitempty"`
	// can only store string, bool, int
	KeyValues map[string]interface{} `json:"keyvalues,omitempty"`
}

type PinataOptions struct {
	CidVersion CidVersion `json:"cidVersion"`
}

type CidVersion uint8

const (
	CidVersion_0 CidVersion = 0
	CidVersion_1 CidVersion = 1
)

type PinOptions struct {
	Metadata      *PinataMetadata `json:"pinataMetadata,omitempty"`
	Options       *PinataOptions  `json:"pinataOptions,omitempty"`
	PinataContent interface{}     `json:"pinataContent"`
}

type Options func(*PinOptions) error

func GetPinOptions(opts ...Options) (*PinOptions, error) {
	res := &PinOptions{}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func WithName(name string) Options {
	return func(options *PinOptions) error {
		if options.Metadata == nil {
			options.Metadata = &PinataMetadata{}
		}
		options.Metadata.Name = name
		return nil
	}
}

func WithMetadata(metadata PinataMetadata) Options {
	return func(options *PinOptions) error {
		options.Metadata = &metadata
		return nil
	}
}

func WithOptions(pinataOptions PinataOptions) Options {
	return func(options *PinOptions) error {
		options.Options = &pinataOptions
		return nil
	}
}

// Service pins content and returns its IPFS hash
type Service interface {
	Pin(c ctx.Ctx, file io.Reader, filename string, opts ...Options) (string, error)
	PinJson(c ctx.Ctx, value interface{}, opts ...Options) (string, error)
}
